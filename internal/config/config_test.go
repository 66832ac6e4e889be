package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/discflight/internal/core/observability/log"
	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, disc.DefaultParams(), c.Physics)
	require.Equal(t, trajectory.DefaultMaxSteps, c.Simulation.MaxSteps)
	require.Equal(t, log.LevelInfo, c.LogLevel())
	require.InDelta(t, 2.01, c.Sweep().LaunchHeight, 1e-12)
	require.Equal(t, trajectory.DefaultMaxSteps, c.Simulator().MaxSteps())
}

func TestLoadYAML(t *testing.T) {
	t.Run("partial_override", func(t *testing.T) {
		c, err := LoadYAML(strings.NewReader(`
log:
  level: debug
physics:
  arm_height: 2.5
simulation:
  max_steps: 500
range_finder:
  max_speed: 1.2
  tilt: { min: -0.2, max: 0.2 }
`))
		require.NoError(t, err)
		require.Equal(t, log.LevelDebug, c.LogLevel())
		require.Equal(t, 2.5, c.Physics.ArmHeight)
		require.Equal(t, 0.05, c.Physics.Gravity)
		require.Equal(t, 500, c.Simulator().MaxSteps())
		require.Equal(t, 1.2, c.RangeFinder.MaxSpeed)
		require.Equal(t, 0.1, c.RangeFinder.SpeedStep)
		require.Equal(t, -0.2, c.RangeFinder.Tilt.Min)
		require.InDelta(t, 2.51, c.Sweep().LaunchHeight, 1e-12)
	})

	t.Run("explicit_launch_height", func(t *testing.T) {
		c, err := LoadYAML(strings.NewReader("range_finder:\n  launch_height: 3\n"))
		require.NoError(t, err)
		require.Equal(t, 3.0, c.Sweep().LaunchHeight)
	})

	t.Run("empty", func(t *testing.T) {
		c, err := LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	tests := map[string]string{
		"unknown_field":  "physics:\n  mass: 3\n",
		"bad_level":      "log:\n  level: loud\n",
		"bad_gravity":    "physics:\n  gravity: -1\n",
		"bad_max_steps":  "simulation:\n  max_steps: 0\n",
		"bad_speed_step": "range_finder:\n  speed_step: 0\n",
		"malformed":      "physics: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "configs", "discsim.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "discsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  max_steps: 42\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 42, c.Simulation.MaxSteps)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
