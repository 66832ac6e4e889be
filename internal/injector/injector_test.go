package injector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/discflight/internal/config"
)

func TestInitializeApp(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "silent"
	cfg.Simulation.MaxSteps = 2000
	cfg.Simulation.Seed = 9

	app := InitializeApp(cfg)
	require.Same(t, cfg, app.Config)
	require.NotNil(t, app.Logger)
	require.Equal(t, 2000, app.Simulator.MaxSteps())
	require.Equal(t, cfg.Sweep(), app.Factory.Base())
	require.Zero(t, app.Factory.Len())
}
