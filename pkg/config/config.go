// Package config loads and validates the parameters that drive one
// workbench run: graph size, arboricity bound, operation-stream shape,
// trial count, and the baseline-specific knobs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidVertexCount  = errors.New("vertex count must be at least 2")
	ErrInvalidAlpha        = errors.New("arboricity bound must be at least 1")
	ErrInvalidDensity      = errors.New("edge density must be in (0, 1)")
	ErrInvalidPurge        = errors.New("purge probability must be in [0, 1)")
	ErrInvalidLength       = errors.New("sequence length must be at least 1")
	ErrInvalidTrials       = errors.New("trial count must be at least 1")
	ErrInvalidCheckpoint   = errors.New("checkpoint frequency must be at least 1")
	ErrInvalidOutdegBound  = errors.New("brodal out-degree bound must be greater than 1")
	ErrInvalidSamplerName  = errors.New("sampler must be \"uniform\" or \"geometric\"")
	ErrInvalidGeometricQ   = errors.New("geometric sampler success probability must be in (0, 1)")
)

// Sampler names accepted by the "sampler" configuration key.
const (
	SamplerUniform   = "uniform"
	SamplerGeometric = "geometric"
)

// Default configuration values.
const (
	defaultVertexCount     = 64
	defaultAlpha           = 1
	defaultDensity         = 0.5
	defaultPurge           = 0.05
	defaultSequenceLength  = 2000
	defaultTrials          = 100
	defaultCheckpoint      = 10
	defaultOutdegBound     = 4
	defaultSampler         = SamplerUniform
	defaultGeometricQ      = 0.3
)

// Config holds every parameter a trial orchestrator needs.
type Config struct {
	Graph    GraphConfig    `mapstructure:"graph"`
	Sequence SequenceConfig `mapstructure:"sequence"`
	Run      RunConfig      `mapstructure:"run"`
	Baseline BaselineConfig `mapstructure:"baseline"`
}

// GraphConfig describes the bounded-arboricity graph a trial generates
// instances over.
type GraphConfig struct {
	VertexCount int `mapstructure:"vertex_count"`
	Alpha       int `mapstructure:"alpha"`
}

// SequenceConfig describes the stochastic Insert/Delete stream.
type SequenceConfig struct {
	Length      int     `mapstructure:"length"`
	Density     float64 `mapstructure:"density"`
	Purge       float64 `mapstructure:"purge"`
	Sampler     string  `mapstructure:"sampler"`
	GeometricQ  float64 `mapstructure:"geometric_q"`
}

// RunConfig describes how many trials the driver executes and how often
// it reports a running-average checkpoint.
type RunConfig struct {
	Trials           int    `mapstructure:"trials"`
	CheckpointEvery  int    `mapstructure:"checkpoint_every"`
	Seed             uint64 `mapstructure:"seed"`
	FixedSeed        bool   `mapstructure:"fixed_seed"`
}

// BaselineConfig holds the parameters specific to the Brodal–Fagerberg
// baseline.
type BaselineConfig struct {
	OutdegBound int `mapstructure:"outdeg_bound"`
}

// Load reads configuration from an optional YAML file, then environment
// variables prefixed NOFLIPTESTER_, layered over built-in defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("nofliptester")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("NOFLIPTESTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.vertex_count", defaultVertexCount)
	v.SetDefault("graph.alpha", defaultAlpha)

	v.SetDefault("sequence.length", defaultSequenceLength)
	v.SetDefault("sequence.density", defaultDensity)
	v.SetDefault("sequence.purge", defaultPurge)
	v.SetDefault("sequence.sampler", defaultSampler)
	v.SetDefault("sequence.geometric_q", defaultGeometricQ)

	v.SetDefault("run.trials", defaultTrials)
	v.SetDefault("run.checkpoint_every", defaultCheckpoint)
	v.SetDefault("run.fixed_seed", false)

	v.SetDefault("baseline.outdeg_bound", defaultOutdegBound)
}

func validate(cfg *Config) error {
	if cfg.Graph.VertexCount < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidVertexCount, cfg.Graph.VertexCount)
	}

	if cfg.Graph.Alpha < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidAlpha, cfg.Graph.Alpha)
	}

	if cfg.Sequence.Density <= 0 || cfg.Sequence.Density >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, cfg.Sequence.Density)
	}

	if cfg.Sequence.Purge < 0 || cfg.Sequence.Purge >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidPurge, cfg.Sequence.Purge)
	}

	if cfg.Sequence.Length < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, cfg.Sequence.Length)
	}

	switch cfg.Sequence.Sampler {
	case SamplerUniform:
	case SamplerGeometric:
		if cfg.Sequence.GeometricQ <= 0 || cfg.Sequence.GeometricQ >= 1 {
			return fmt.Errorf("%w: %v", ErrInvalidGeometricQ, cfg.Sequence.GeometricQ)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSamplerName, cfg.Sequence.Sampler)
	}

	if cfg.Run.Trials < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTrials, cfg.Run.Trials)
	}

	if cfg.Run.CheckpointEvery < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCheckpoint, cfg.Run.CheckpointEvery)
	}

	if cfg.Baseline.OutdegBound <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOutdegBound, cfg.Baseline.OutdegBound)
	}

	return nil
}
