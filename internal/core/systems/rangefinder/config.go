package rangefinder

import (
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

var ErrInvalidConfig = errors.New("invalid range finder configuration")

// Key identifies a table in the factory cache.
type Key struct {
	MaxSpeed  float64 `json:"max_speed" yaml:"max_speed"`
	SpeedStep float64 `json:"speed_step" yaml:"speed_step"`
	AngleStep float64 `json:"angle_step" yaml:"angle_step"`
}

func (k Key) String() string {
	return fmt.Sprintf("maxSpeed=%g,speedStep=%g,angleStep=%g", k.MaxSpeed, k.SpeedStep, k.AngleStep)
}

// Hash is a stable fingerprint of the key.
func (k Key) Hash() uint64 { return xxhash.Sum64String(k.String()) }

// Range is an inclusive sweep interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Config describes one parameter sweep. The fields outside Key are shared by
// every table a factory builds.
type Config struct {
	Key `yaml:",inline"`

	MinSpeed      float64 `json:"min_speed" yaml:"min_speed"`
	LaunchAngle   Range   `json:"launch_angle" yaml:"launch_angle"`
	AngleOfAttack Range   `json:"angle_of_attack" yaml:"angle_of_attack"`
	Tilt          Range   `json:"tilt" yaml:"tilt"`

	// MinRange drops throws landing at or closer than this distance.
	MinRange float64 `json:"min_range" yaml:"min_range"`
	// RangeTolerance widens the distance window used by BestThrow.
	RangeTolerance float64 `json:"range_tolerance" yaml:"range_tolerance"`
	// LaunchHeight is the release height of every simulated throw.
	LaunchHeight float64 `json:"launch_height" yaml:"launch_height"`

	Workers     int  `json:"workers,omitempty" yaml:"workers,omitempty"`
	RecordPaths bool `json:"record_paths" yaml:"record_paths"`
	// SmallTableWarning logs a warning when a table has fewer samples.
	SmallTableWarning int `json:"small_table_warning" yaml:"small_table_warning"`
}

// DefaultConfig is the production sweep.
func DefaultConfig() Config {
	return Config{
		Key: Key{
			MaxSpeed:  1.8,
			SpeedStep: 0.1,
			AngleStep: 0.1,
		},
		MinSpeed:          0.3,
		LaunchAngle:       Range{Min: -1.0, Max: 1.5},
		AngleOfAttack:     Range{Min: -0.5, Max: 1.5},
		Tilt:              Range{Min: 0, Max: 0},
		MinRange:          3,
		RangeTolerance:    1,
		LaunchHeight:      2.01,
		RecordPaths:       true,
		SmallTableWarning: 16,
	}
}

// WithKey returns c sweeping with the given key.
func (c Config) WithKey(k Key) Config {
	c.Key = k
	return c
}

// Validate validates the sweep configuration
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"max_speed", c.MaxSpeed},
		{"speed_step", c.SpeedStep},
		{"angle_step", c.AngleStep},
		{"min_speed", c.MinSpeed},
		{"launch_angle.min", c.LaunchAngle.Min},
		{"launch_angle.max", c.LaunchAngle.Max},
		{"angle_of_attack.min", c.AngleOfAttack.Min},
		{"angle_of_attack.max", c.AngleOfAttack.Max},
		{"tilt.min", c.Tilt.Min},
		{"tilt.max", c.Tilt.Max},
		{"min_range", c.MinRange},
		{"range_tolerance", c.RangeTolerance},
		{"launch_height", c.LaunchHeight},
	} {
		if !physics.Finite(f.value) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}

	if c.SpeedStep <= 0 || c.AngleStep <= 0 {
		return fmt.Errorf("%w: steps must be positive", ErrInvalidConfig)
	}
	if c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("%w: speed range [%g, %g]", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	}
	for name, r := range map[string]Range{
		"launch_angle":    c.LaunchAngle,
		"angle_of_attack": c.AngleOfAttack,
		"tilt":            c.Tilt,
	} {
		if r.Max < r.Min {
			return fmt.Errorf("%w: %s range [%g, %g]", ErrInvalidConfig, name, r.Min, r.Max)
		}
	}
	if c.AngleOfAttack.Min <= -math.Pi/2 || c.AngleOfAttack.Max >= math.Pi/2 {
		return fmt.Errorf("%w: angle of attack must stay within (-π/2, π/2)", ErrInvalidConfig)
	}
	if c.LaunchHeight <= 0 {
		return fmt.Errorf("%w: launch height must be above ground", ErrInvalidConfig)
	}
	if c.MinRange < 0 || c.RangeTolerance < 0 {
		return fmt.Errorf("%w: min range and tolerance must not be negative", ErrInvalidConfig)
	}

	return nil
}

// grid returns min, min+step, ... up to and including max.
func grid(r Range, step float64) []float64 {
	n := int(math.Floor((r.Max-r.Min)/step+1e-9)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = r.Min + float64(i)*step
	}
	return values
}
