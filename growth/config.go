// Package growth - engine configuration.
//
// This file defines the YAML-mappable Config, its defaults and validation.
// A Config file only needs the keys it overrides:
//
//	step_distance: 1     # r, length of every growth step
//	merge_factor: 1.4    # proximity threshold is merge_factor·r (strict <)
//	max_retries: 64      # re-draw cap before a step force-merges
//	root: "0"            # destination of every reinforcement path
//	seed: 0              # 0 selects the fixed default seed
package growth

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration defaults.
const (
	DefaultStepDistance = 1.0
	DefaultMergeFactor  = 1.4
	DefaultMaxRetries   = 64
	DefaultRoot         = "0"
)

// Config holds the tunable parameters of an Engine.
type Config struct {
	// StepDistance is the fixed growth step r.
	StepDistance float64 `yaml:"step_distance"`

	// MergeFactor scales r into the proximity-merge threshold.
	MergeFactor float64 `yaml:"merge_factor"`

	// MaxRetries bounds the number of attempts in one GrowOnce.
	MaxRetries int `yaml:"max_retries"`

	// Root is the vertex every reinforcement path ends at.
	Root string `yaml:"root"`

	// Seed feeds the default sampler; 0 selects defaultRNGSeed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		StepDistance: DefaultStepDistance,
		MergeFactor:  DefaultMergeFactor,
		MaxRetries:   DefaultMaxRetries,
		Root:         DefaultRoot,
		Seed:         0,
	}
}

// Threshold returns the proximity-merge distance MergeFactor·StepDistance.
func (c Config) Threshold() float64 {
	return c.MergeFactor * c.StepDistance
}

// Validate reports the first invalid field wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case !(c.StepDistance > 0) || math.IsInf(c.StepDistance, 0):
		return fmt.Errorf("%w: step_distance=%g must be positive and finite", ErrBadConfig, c.StepDistance)
	case !(c.MergeFactor >= 0) || math.IsInf(c.MergeFactor, 0):
		return fmt.Errorf("%w: merge_factor=%g must be non-negative and finite", ErrBadConfig, c.MergeFactor)
	case c.MaxRetries < 1:
		return fmt.Errorf("%w: max_retries=%d must be at least 1", ErrBadConfig, c.MaxRetries)
	case c.Root == "":
		return fmt.Errorf("%w: root must not be empty", ErrBadConfig)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
// An empty document yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("growth: YAML syntax error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
// An empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("growth: could not read configuration file '%s': %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("growth: %s: %w", path, err)
	}

	return cfg, nil
}
