package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/log"
	"github.com/lixenwraith/snake/status"
)

// app carries the resolved configuration into every subcommand
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		logLevel   string
		debug      bool
	)

	root := &cobra.Command{
		Use:           "snake",
		Short:         "Grid snake game",
		Long:          "Grid snake game with a terminal surface, an HTTP surface, and a persistent best score.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Log.Debug = debug
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&debug, "debug", false, "write logs to logs/snake.log during play")

	root.AddCommand(newPlayCmd(a), newServeCmd(a), newBestCmd(a))
	return root
}

// newController builds the session controller from configuration
func newController(cfg config.Config, st engine.ScoreStore, logger zerolog.Logger, metrics *status.Registry) *engine.Controller {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return engine.NewController(engine.ControllerConfig{
		Grid:    core.NewSquareGrid(cfg.Game.GridSize),
		Store:   st,
		Food:    engine.NewRandomFood(seed),
		Logger:  logger.With().Str(log.FieldComponent, "engine").Logger(),
		Metrics: metrics,
	})
}
