// SPDX-License-Identifier: MIT

// Package config loads an annealing run description from a YAML file and
// overlays ISING_* environment variables.
//
// Precedence, lowest first: Default(), the YAML file, the environment
// (optionally seeded from .env files through LoadDotEnv).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/internal/logging"
	"github.com/katalvlaran/ising/schedule"
	"github.com/katalvlaran/ising/system"
)

// Sentinel errors.
var (
	// ErrInvalidConfig indicates a field value outside its allowed set.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownModel indicates an unsupported model kind.
	ErrUnknownModel = errors.New("config: unknown model kind")

	// ErrUnknownSchedule indicates an unsupported schedule kind.
	ErrUnknownSchedule = errors.New("config: unknown schedule kind")
)

// Model kinds.
const (
	ModelChain    = "chain"
	ModelSquare   = "square"
	ModelComplete = "complete"
	ModelGlass    = "glass"
	ModelBonds    = "bonds"
)

// Schedule kinds.
const (
	ScheduleLinear    = "linear"
	ScheduleGeometric = "geometric"
	SchedulePoints    = "points"
)

// Sweep names.
const (
	SweepRandom      = "random"
	SweepPermutation = "permutation"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed      = "ISING_SEED"
	EnvReplicas  = "ISING_REPLICAS"
	EnvWorkers   = "ISING_WORKERS"
	EnvAlgorithm = "ISING_ALGORITHM"
	EnvSweep     = "ISING_SWEEP"
	EnvLogLevel  = "ISING_LOG_LEVEL"
)

// Model describes the interaction model.
type Model struct {
	Kind     string       `yaml:"kind"`
	Size     int          `yaml:"size"` // chain, complete, glass, bonds
	Rows     int          `yaml:"rows"` // square
	Cols     int          `yaml:"cols"` // square
	Coupling float64      `yaml:"coupling"`
	Field    float64      `yaml:"field"`    // uniform field for lattice kinds
	Periodic bool         `yaml:"periodic"` // chain, square
	Density  float64      `yaml:"density"`  // glass bond probability
	Seed     uint64       `yaml:"seed"`     // glass couplings
	Bonds    []graph.Bond `yaml:"bonds"`    // bonds kind
	Fields   []float64    `yaml:"fields"`   // bonds kind; empty means zero
}

// Schedule describes the temperature schedule.
type Schedule struct {
	Kind          string           `yaml:"kind"`
	BetaMin       float64          `yaml:"beta_min"`
	BetaMax       float64          `yaml:"beta_max"`
	StepsPerPoint int              `yaml:"steps_per_point"`
	NumPoints     int              `yaml:"num_points"`
	Points        []schedule.Point `yaml:"points"` // points kind
}

// Config is one annealing run.
type Config struct {
	Model     Model    `yaml:"model"`
	Schedule  Schedule `yaml:"schedule"`
	Algorithm string   `yaml:"algorithm"`
	Sweep     string   `yaml:"sweep"`
	Seed      uint64   `yaml:"seed"`
	Replicas  int      `yaml:"replicas"`
	Workers   int      `yaml:"workers"`
	LogLevel  string   `yaml:"log_level"`
}

// Default returns a 16x16 periodic ferromagnet annealed geometrically with
// Metropolis by one replica.
func Default() Config {
	return Config{
		Model: Model{
			Kind:     ModelSquare,
			Rows:     16,
			Cols:     16,
			Coupling: -1,
			Periodic: true,
			Density:  0.5,
		},
		Schedule: Schedule{
			Kind:          ScheduleGeometric,
			BetaMin:       0.1,
			BetaMax:       3,
			StepsPerPoint: 100,
			NumPoints:     30,
		},
		Algorithm: system.NameSingleSpinFlip,
		Sweep:     SweepRandom,
		Seed:      1,
		Replicas:  1,
		LogLevel:  "info",
	}
}

// Parse decodes YAML over Default(). Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Load reads path (Default() when path is empty), overlays the process
// environment and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: dotenv %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from ISING_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvReplicas); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvReplicas, v, ErrInvalidConfig)
		}
		c.Replicas = n
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvWorkers, v, ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvAlgorithm); ok {
		c.Algorithm = v
	}
	if v, ok := lookup(EnvSweep); ok {
		c.Sweep = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}

	return nil
}

// Validate checks every enumerated field and count. Model and schedule
// numerics are left to the graph and schedule constructors.
func (c Config) Validate() error {
	switch c.Model.Kind {
	case ModelChain, ModelSquare, ModelComplete, ModelGlass, ModelBonds:
	default:
		return fmt.Errorf("config: model.kind=%q: %w", c.Model.Kind, ErrUnknownModel)
	}
	switch c.Schedule.Kind {
	case ScheduleLinear, ScheduleGeometric, SchedulePoints:
	default:
		return fmt.Errorf("config: schedule.kind=%q: %w", c.Schedule.Kind, ErrUnknownSchedule)
	}
	if _, err := system.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("config: algorithm: %w", err)
	}
	if _, err := c.SweepOrder(); err != nil {
		return err
	}
	if c.Replicas < 1 {
		return fmt.Errorf("config: replicas=%d: %w", c.Replicas, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers=%d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}

	return nil
}

// SweepOrder maps Sweep to the engine's order; empty is random.
func (c Config) SweepOrder() (system.SweepOrder, error) {
	switch c.Sweep {
	case "", SweepRandom:
		return system.SweepRandom, nil
	case SweepPermutation:
		return system.SweepPermutation, nil
	default:
		return 0, fmt.Errorf("config: sweep=%q: %w", c.Sweep, ErrInvalidConfig)
	}
}
