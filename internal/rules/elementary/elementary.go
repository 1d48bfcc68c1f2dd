package elementary

import (
	"strconv"

	"lifetrail/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary applies a one-dimensional Wolfram code to row 0 and scrolls
// older rows downwards, so the grid shows the history of the top row.
type Elementary struct {
	rule uint8
}

// New creates an elementary ruleset for the given Wolfram code.
func New(rule uint8) Elementary { return Elementary{rule: rule} }

// Name returns the ruleset identifier.
func (e Elementary) Name() string { return "elementary" }

// Rule returns the Wolfram code.
func (e Elementary) Rule() uint8 { return e.rule }

// Next computes row 0 from its own left, center and right cells; every other
// row copies the row above it.
func (e Elementary) Next(g *core.Grid, x, y int) (bool, error) {
	center, err := g.Read(x, y)
	if err != nil {
		return false, err
	}
	if y > 0 {
		return g.Read(x, y-1)
	}
	var idx uint8
	if g.ReadWrapped(x-1, 0, g.Wrap) {
		idx |= 4
	}
	if center {
		idx |= 2
	}
	if g.ReadWrapped(x+1, 0, g.Wrap) {
		idx |= 1
	}
	return (e.rule>>idx)&1 == 1, nil
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Ruleset {
		c := FromMap(cfg)
		return New(c.Rule)
	})
}
