package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/discflight/internal/config"
	"github.com/zeusync/discflight/internal/core/observability/log"
	"github.com/zeusync/discflight/internal/core/systems/rangefinder"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
)

// App bundles the long-lived services a command needs.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	Simulator *trajectory.Simulator
	Factory   *rangefinder.Factory
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideSimulator,
	ProvideFactory,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.LogLevel())
}

func ProvideSimulator(cfg *config.Config) *trajectory.Simulator {
	return cfg.Simulator()
}

func ProvideFactory(cfg *config.Config, sim *trajectory.Simulator, logger *log.Logger) *rangefinder.Factory {
	opts := []rangefinder.Option{rangefinder.WithLogger(logger.With(log.String("component", "range_finder")))}
	if cfg.Simulation.Seed != 0 {
		opts = append(opts, rangefinder.WithSeed(cfg.Simulation.Seed))
	}
	return rangefinder.NewFactory(cfg.Sweep(), sim, opts...)
}
