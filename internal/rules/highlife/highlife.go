// Package highlife implements the HighLife variant (B36/S23).
package highlife

import "lifetrail/internal/core"

// HighLife behaves like Conway's rule but also births dead cells with six
// live neighbors.
type HighLife struct{}

// New returns the HighLife ruleset.
func New() HighLife { return HighLife{} }

// Name identifies the ruleset.
func (HighLife) Name() string { return "highlife" }

// Next decides the next state of (x, y).
func (HighLife) Next(g *core.Grid, x, y int) (bool, error) {
	neighbors := g.CountLiveNeighbors(x, y, g.Wrap)
	alive, err := g.Read(x, y)
	if err != nil {
		return false, err
	}
	if alive {
		return neighbors == 2 || neighbors == 3, nil
	}
	return neighbors == 3 || neighbors == 6, nil
}

func init() {
	core.Register("highlife", func(map[string]string) core.Ruleset {
		return New()
	})
}
