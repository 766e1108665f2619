package growth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lichtenberg/growth"
)

func TestDefaultConfig(t *testing.T) {
	cfg := growth.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1.0, cfg.StepDistance)
	assert.Equal(t, 1.4, cfg.MergeFactor)
	assert.Equal(t, 1.4, cfg.Threshold())
	assert.Equal(t, "0", cfg.Root)
	assert.Positive(t, cfg.MaxRetries)
}

func TestParseConfig(t *testing.T) {
	cfg, err := growth.ParseConfig([]byte("step_distance: 2\nseed: 11\n"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.StepDistance)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, growth.DefaultMergeFactor, cfg.MergeFactor, "omitted keys keep defaults")
	assert.InDelta(t, 2.8, cfg.Threshold(), 1e-15)

	cfg, err = growth.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, growth.DefaultConfig(), cfg)
}

func TestParseConfigRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key": "step_distanse: 2\n",
		"bad syntax":  "step_distance: [\n",
		"zero step":   "step_distance: 0\n",
		"negative":    "merge_factor: -1\n",
		"no retries":  "max_retries: 0\n",
		"empty root":  "root: \"\"\n",
		"wrong type":  "max_retries: lots\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := growth.ParseConfig([]byte(doc))
			require.Error(t, err)
		})
	}

	_, err := growth.ParseConfig([]byte("max_retries: 0\n"))
	require.ErrorIs(t, err, growth.ErrBadConfig)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := growth.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, growth.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "growth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: \"seed\"\nmax_retries: 8\n"), 0o600))
	cfg, err = growth.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "seed", cfg.Root)
	assert.Equal(t, 8, cfg.MaxRetries)

	_, err = growth.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
