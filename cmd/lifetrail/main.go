package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lifetrail/internal/config"
	_ "lifetrail/internal/rules/conway"
	_ "lifetrail/internal/rules/elementary"
	_ "lifetrail/internal/rules/highlife"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifetrail",
		Short: "Cellular automata with a fading color trail",
		Long: `lifetrail runs Conway's Game of Life and related rulesets on a
toroidal board and draws the last few generations as a fading trail.

The GUI needs a build with the ebiten tag. The step and color commands
work in any build.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: info, debug or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newStepCmd(),
		newColorCmd(),
		newRulesCmd(),
		newPatternsCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifetrail version %s\n", version)
		},
	}
}

// bindConfig adds the board flags to cmd. The returned loader reads --config
// over the defaults and then reapplies every flag set on the command line,
// so explicit flags win over the file.
func bindConfig(cmd *cobra.Command) func() (config.Config, error) {
	defaults := config.DefaultConfig()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	defaults.Bind(fs)
	cmd.Flags().AddGoFlagSet(fs)

	return func() (config.Config, error) {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		overlay := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cfg.Bind(overlay)
		var errs []error
		cmd.Flags().Visit(func(f *pflag.Flag) {
			if overlay.Lookup(f.Name) == nil {
				return
			}
			if err := overlay.Set(f.Name, f.Value.String()); err != nil {
				errs = append(errs, fmt.Errorf("--%s: %w", f.Name, err))
			}
		})
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		return cfg, errors.Join(errs...)
	}
}
