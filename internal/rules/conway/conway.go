// Package conway implements Conway's Game of Life as a core.Ruleset.
package conway

import "lifetrail/internal/core"

// Conway implements B3/S23. Neighbor lookups follow the grid's Wrap flag.
type Conway struct{}

// New returns the Conway ruleset.
func New() Conway { return Conway{} }

// Name returns the ruleset identifier.
func (Conway) Name() string { return "conway" }

// Next decides the next state of (x, y): a live cell with two neighbors
// survives, any cell with three neighbors is alive, everything else is dead.
func (Conway) Next(g *core.Grid, x, y int) (bool, error) {
	neighbors := g.CountLiveNeighbors(x, y, g.Wrap)
	alive, err := g.Read(x, y)
	if err != nil {
		return false, err
	}
	return Decide(alive, neighbors), nil
}

// Decide is the Conway decision table.
func Decide(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors == 2:
		return true
	case neighbors == 3:
		return true
	default:
		return false
	}
}

func init() {
	core.Register("conway", func(map[string]string) core.Ruleset {
		return New()
	})
}
