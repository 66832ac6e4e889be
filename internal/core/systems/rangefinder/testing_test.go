package rangefinder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
)

// smallConfig is a coarse sweep that builds in milliseconds.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Key = Key{MaxSpeed: 1.0, SpeedStep: 0.35, AngleStep: 0.5}
	return cfg
}

func tiltedConfig() Config {
	cfg := smallConfig()
	cfg.Tilt = Range{Min: -0.5, Max: 0.5}
	return cfg
}

func newSimulator() *trajectory.Simulator {
	return trajectory.New(disc.DefaultParams())
}

func buildTable(t testing.TB, cfg Config) *Table {
	t.Helper()
	table, err := Build(context.Background(), newSimulator(), cfg)
	require.NoError(t, err)
	require.NotZero(t, table.Len())
	return table
}

// regularSample returns a sample whose catchable point lies before its
// landing point, so its own landing distance is inside its catch window.
func regularSample(t testing.TB, table *Table) Sample {
	t.Helper()
	for i := table.Len() / 2; i < table.Len(); i++ {
		if s := table.At(i); s.Catchable.Distance() <= s.Grounded.Distance() {
			return s
		}
	}
	t.Fatal("no forward sample in table")
	return Sample{}
}
