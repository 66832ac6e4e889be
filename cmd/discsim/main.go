package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/zeusync/discflight/internal/config"
	"github.com/zeusync/discflight/internal/core/observability/log"
	"github.com/zeusync/discflight/internal/injector"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "discsim:", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "discsim"
	app.Usage = "Flying disc trajectories and throw lookup"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "YAML configuration file"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
	}

	app.Commands = []cli.Command{
		{
			Name:   "build",
			Usage:  "Build a throw table and print its summary",
			Flags:  keyFlags(),
			Action: buildAction,
		},
		{
			Name:  "throw",
			Usage: "Find launch parameters reaching a target",
			Flags: append(keyFlags(),
				cli.Float64Flag{Name: "dx", Usage: "Target offset along x; required"},
				cli.Float64Flag{Name: "dy", Usage: "Target offset along y"},
				cli.IntFlag{Name: "min-time", Usage: "Minimum steps in the air"},
				cli.StringFlag{Name: "mode", Value: "best", Usage: "random, floatiest, best or longest"},
			),
			Action: throwAction,
		},
		{
			Name:   "simulate",
			Usage:  "Fly a throw until it lands",
			Flags:  append(launchFlags(), cli.BoolFlag{Name: "path", Usage: "Print every step"}),
			Action: simulateAction,
		},
		{
			Name:  "intercept",
			Usage: "Report which defender would catch a throw",
			Flags: append(launchFlags(),
				cli.StringSliceFlag{Name: "defender", Usage: "Defender ground position as x,y; repeatable"},
			),
			Action: interceptAction,
		},
	}

	return app
}

func keyFlags() []cli.Flag {
	return []cli.Flag{
		cli.Float64Flag{Name: "max-speed", Usage: "Fastest launch speed in the sweep (default from config)"},
		cli.Float64Flag{Name: "speed-step", Usage: "Speed resolution of the sweep (default from config)"},
		cli.Float64Flag{Name: "angle-step", Usage: "Angle resolution of the sweep (default from config)"},
	}
}

func launchFlags() []cli.Flag {
	return []cli.Flag{
		cli.Float64Flag{Name: "x", Usage: "Release x"},
		cli.Float64Flag{Name: "y", Usage: "Release y"},
		cli.Float64Flag{Name: "z", Value: -1, Usage: "Release height (default arm height)"},
		cli.Float64Flag{Name: "vx", Usage: "Launch velocity x"},
		cli.Float64Flag{Name: "vy", Usage: "Launch velocity y"},
		cli.Float64Flag{Name: "vz", Usage: "Launch velocity z"},
		cli.Float64Flag{Name: "aoa", Usage: "Angle of attack in radians"},
		cli.Float64Flag{Name: "tilt", Usage: "Tilt in radians"},
	}
}

// loadApp reads the global flags and wires the services.
func loadApp(c *cli.Context) (*injector.App, error) {
	cfg := config.Default()
	if path := c.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.GlobalBool("debug") {
		cfg.Log.Level = log.LevelDebug.String()
	}
	return injector.InitializeApp(cfg), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
