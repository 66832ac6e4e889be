package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/urfave/cli"

	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/physics"
	"github.com/zeusync/discflight/internal/core/systems/rangefinder"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
	"github.com/zeusync/discflight/internal/injector"
)

func buildAction(c *cli.Context) error {
	app, err := loadApp(c)
	if err != nil {
		return err
	}
	defer app.Logger.Sync()

	finder, err := createFinder(c, app)
	if err != nil {
		return err
	}
	return printJSON(finder.Table().Stats())
}

func throwAction(c *cli.Context) error {
	app, err := loadApp(c)
	if err != nil {
		return err
	}
	defer app.Logger.Sync()

	finder, err := createFinder(c, app)
	if err != nil {
		return err
	}

	target := physics.Vec2{c.Float64("dx"), c.Float64("dy")}
	minTime := c.Int("min-time")

	var (
		throw rangefinder.Throw
		ok    = true
	)
	switch mode := c.String("mode"); mode {
	case "random":
		throw, ok, err = finder.RandomThrow(target, minTime)
	case "floatiest":
		throw, ok, err = finder.FloatiestThrow(target, minTime)
	case "best":
		throw, ok, err = finder.BestThrow(target, minTime)
	case "longest":
		throw, err = finder.LongestThrow(target)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no throw reaches %.2f (table covers %.2f to %.2f)",
			target.Len(), finder.Table().MinDistance(), finder.Table().MaxDistance())
	}

	return printJSON(struct {
		rangefinder.Throw
		Up physics.Vec3 `json:"up"`
	}{throw, throw.UpVector()})
}

func simulateAction(c *cli.Context) error {
	app, err := loadApp(c)
	if err != nil {
		return err
	}
	defer app.Logger.Sync()

	start, err := launchState(c, app)
	if err != nil {
		return err
	}
	res, err := app.Simulator.UntilGrounded(start, c.Bool("path"))
	if err != nil {
		return err
	}
	return printJSON(struct {
		FinalPosition physics.Vec3           `json:"final_position"`
		FinalTime     int                    `json:"final_time"`
		PeakHeight    float64                `json:"peak_height"`
		Path          []trajectory.PathPoint `json:"path,omitempty"`
	}{res.FinalPosition, res.FinalTime, res.PeakHeight, res.Path})
}

func interceptAction(c *cli.Context) error {
	app, err := loadApp(c)
	if err != nil {
		return err
	}
	defer app.Logger.Sync()

	start, err := launchState(c, app)
	if err != nil {
		return err
	}
	defenders, err := parseDefenders(c.StringSlice("defender"))
	if err != nil {
		return err
	}

	res, err := trajectory.Intercept(app.Simulator, start, defenders)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Intercepted bool `json:"intercepted"`
		Defender    int  `json:"defender"`
		Time        int  `json:"time"`
	}{res.Intercepted, res.Index, res.Time})
}

// createFinder builds the table for the key flags, falling back to the
// configured key. Ctrl-C aborts the sweep.
func createFinder(c *cli.Context, app *injector.App) (*rangefinder.Finder, error) {
	key := app.Factory.Base().Key
	if c.IsSet("max-speed") {
		key.MaxSpeed = c.Float64("max-speed")
	}
	if c.IsSet("speed-step") {
		key.SpeedStep = c.Float64("speed-step")
	}
	if c.IsSet("angle-step") {
		key.AngleStep = c.Float64("angle-step")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return app.Factory.CreateKey(ctx, key)
}

func launchState(c *cli.Context, app *injector.App) (disc.State, error) {
	z := c.Float64("z")
	if z < 0 {
		z = app.Config.Physics.ArmHeight
	}
	velocity := physics.Vec3{c.Float64("vx"), c.Float64("vy"), c.Float64("vz")}
	up := disc.CreateUpVector(velocity, c.Float64("aoa"), c.Float64("tilt"))
	return disc.NewState(physics.Vec3{c.Float64("x"), c.Float64("y"), z}, velocity, up)
}

func parseDefenders(raw []string) ([]physics.Point, error) {
	defenders := make([]physics.Point, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("defender %q: want x,y", s)
		}
		coords := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("defender %q: %w", s, err)
			}
			coords[i] = v
		}
		pos, err := physics.Vec2From(coords)
		if err != nil {
			return nil, fmt.Errorf("defender %q: %w", s, err)
		}
		defenders = append(defenders, physics.Point(pos))
	}
	return defenders, nil
}
