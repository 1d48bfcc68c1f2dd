package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifetrail/internal/app"
	"lifetrail/internal/logging"
	"lifetrail/internal/patterns"
)

func newStepCmd() *cobra.Command {
	var (
		generations int
		places      []string
		empty       bool
		printBoard  bool
	)
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance the board without a window and report each generation",
		Example: `  lifetrail step --generations 50
  lifetrail step --empty --width 8 --height 8 --place glider:1,1 --print`,
		Args: cobra.NoArgs,
	}
	load := bindConfig(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if generations < 0 {
			return fmt.Errorf("--generations %d must not be negative", generations)
		}
		placements := make([]patterns.Placement, 0, len(places))
		for _, s := range places {
			p, err := patterns.ParsePlacement(s)
			if err != nil {
				return err
			}
			placements = append(placements, p)
		}

		cfg, err := load()
		if err != nil {
			return err
		}
		d, err := app.NewDriver(cfg, logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		if empty {
			d.Clear()
		}
		if err := d.Place(placements...); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		report := func() {
			s := d.Simulation()
			fmt.Fprintf(out, "generation %d population %d\n", s.Generation(), s.Grid().Population())
			if printBoard {
				fmt.Fprint(out, s.Grid())
			}
		}
		report()
		for i := 0; i < generations; i++ {
			if err := d.Advance(); err != nil {
				return err
			}
			report()
		}
		return nil
	}
	cmd.Flags().IntVarP(&generations, "generations", "n", 10, "number of generations to advance")
	cmd.Flags().StringArrayVar(&places, "place", nil, "place a pattern as name:x,y before stepping (repeatable)")
	cmd.Flags().BoolVar(&empty, "empty", false, "start from an empty board instead of a random one")
	cmd.Flags().BoolVar(&printBoard, "print", false, "print the board after every generation")
	return cmd
}
