package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/discflight/internal/core/observability/log"
	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/rangefinder"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
)

// launchClearance lifts the sweep's release point just above hand height so
// the first catchable step is never the release itself.
const launchClearance = 0.01

// Config is the whole runtime configuration. Absent YAML fields keep the
// values from Default.
type Config struct {
	Log         LogConfig          `json:"log" yaml:"log"`
	Physics     disc.Params        `json:"physics" yaml:"physics"`
	Simulation  SimulationConfig   `json:"simulation" yaml:"simulation"`
	RangeFinder rangefinder.Config `json:"range_finder" yaml:"range_finder"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

type SimulationConfig struct {
	MaxSteps int `json:"max_steps" yaml:"max_steps"`
	// Seed makes random throw selection reproducible. Zero seeds from the
	// runtime.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

func Default() *Config {
	rf := rangefinder.DefaultConfig()
	// Zero derives the release height from the arm height.
	rf.LaunchHeight = 0

	return &Config{
		Log:         LogConfig{Level: log.LevelInfo.String()},
		Physics:     disc.DefaultParams(),
		Simulation:  SimulationConfig{MaxSteps: trajectory.DefaultMaxSteps},
		RangeFinder: rf,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	if c.Simulation.MaxSteps <= 0 {
		return fmt.Errorf("simulation: max_steps must be positive, got %d", c.Simulation.MaxSteps)
	}
	if err := c.Sweep().Validate(); err != nil {
		return fmt.Errorf("range_finder: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, Info when it cannot be parsed.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

// Sweep returns the range finder settings with derived values filled in.
func (c *Config) Sweep() rangefinder.Config {
	rf := c.RangeFinder
	if rf.LaunchHeight == 0 {
		rf.LaunchHeight = c.Physics.ArmHeight + launchClearance
	}
	return rf
}

// Simulator builds a trajectory simulator from the physics and step cap.
func (c *Config) Simulator() *trajectory.Simulator {
	return trajectory.New(c.Physics, trajectory.WithMaxSteps(c.Simulation.MaxSteps))
}
