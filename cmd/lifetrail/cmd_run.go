package main

import (
	"github.com/spf13/cobra"

	"lifetrail/internal/app"
	"lifetrail/internal/logging"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the simulation window",
		Long: `Open a window showing the board and its fading trail.

Keys: space pauses, n steps once, g drops a glider, r reseeds with the
same seed, s picks a new seed, c clears the board, q or esc quits.`,
		Args: cobra.NoArgs,
	}
	load := bindConfig(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := load()
		if err != nil {
			return err
		}
		logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
		d, err := app.NewDriver(cfg, logger)
		if err != nil {
			return err
		}
		logger.Info("starting", "rule", cfg.Rule, "width", cfg.Width, "height", cfg.Height, "rate", cfg.Rate)
		return app.Run(d, cfg.Scale, cfg.Rate, logger)
	}
	return cmd
}
