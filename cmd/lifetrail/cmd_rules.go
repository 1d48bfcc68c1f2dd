package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifetrail/internal/core"
	"lifetrail/internal/patterns"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rulesets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.RulesetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns accepted by --place",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range patterns.Names() {
				p, _ := patterns.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d cells\n", name, len(p.Cells))
			}
		},
	}
}
