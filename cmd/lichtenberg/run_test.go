package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lichtenberg/snapshot"
)

func testOptions(t *testing.T, args ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("lichtenberg", flag.ContinueOnError)
	o := registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return o
}

func TestRun_FramesAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "final.yaml")
	cfg := filepath.Join(dir, "growth.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("seed: 9\n"), 0o600))

	o := testOptions(t, "-config", cfg, "-n", "6", "-out", filepath.Join(dir, "frames"), "-snapshot", snap)
	require.NoError(t, run(context.Background(), o))

	for _, name := range []string{"iteration_000.gv", "iteration_005.gv"} {
		b, err := os.ReadFile(filepath.Join(dir, "frames", name))
		require.NoError(t, err, name)
		assert.Contains(t, string(b), "layout=fdp")
	}
	_, err := os.Stat(filepath.Join(dir, "frames", "iteration_006.gv"))
	assert.True(t, os.IsNotExist(err))

	f, err := os.Open(snap)
	require.NoError(t, err)
	defer f.Close()
	doc, err := snapshot.Read(f)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Run)
	assert.Equal(t, "0", doc.Root)
	assert.GreaterOrEqual(t, len(doc.Vertices), 2)
	assert.LessOrEqual(t, len(doc.Vertices), 8)
}

func TestRun_Resume(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")

	require.NoError(t, run(context.Background(),
		testOptions(t, "-n", "3", "-frames=false", "-seed-layout", "star", "-seed-size", "4", "-snapshot", first)))
	require.NoError(t, run(context.Background(),
		testOptions(t, "-n", "3", "-frames=false", "-resume", first, "-snapshot", second)))

	read := func(path string) snapshot.Document {
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		doc, err := snapshot.Read(f)
		require.NoError(t, err)
		return doc
	}
	a, b := read(first), read(second)
	assert.NotEqual(t, a.Run, b.Run)
	assert.GreaterOrEqual(t, len(b.Vertices), len(a.Vertices))
	for i, rec := range a.Vertices {
		assert.Equal(t, rec.ID, b.Vertices[i].ID, "resumed run keeps vertex order")
		assert.Equal(t, rec.X, b.Vertices[i].X)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	err := run(context.Background(), testOptions(t, "-frames=false", "-seed-layout", "spiral"))
	require.Error(t, err)

	err = run(context.Background(), testOptions(t, "-frames=false", "-resume", filepath.Join(dir, "missing.yaml")))
	require.ErrorIs(t, err, os.ErrNotExist)

	err = run(context.Background(), testOptions(t, "-n", "-1"))
	require.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	snap := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, run(ctx, testOptions(t, "-n", "10", "-frames=false", "-snapshot", snap)))
	_, err := os.Stat(snap)
	require.NoError(t, err, "snapshot is written after an interrupt")
}

func TestRun_QuietSkipsMemorySampling(t *testing.T) {
	stats := &usage{}
	usageFactory = func() *usage { return stats }
	t.Cleanup(func() { usageFactory = newUsage })

	require.NoError(t, run(context.Background(), testOptions(t, "-n", "4", "-frames=false")))
	assert.Zero(t, stats.reads, "memory is only sampled when V(2) logging is on")
}
