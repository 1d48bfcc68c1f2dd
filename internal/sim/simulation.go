// Package sim drives a core.Ruleset over a core.Grid one generation at a
// time and keeps a bounded history of generations for trail rendering.
package sim

import (
	"fmt"

	"lifetrail/internal/core"
)

// Simulation owns the current generation and the ruleset that advances it.
// It is not safe for concurrent use.
type Simulation struct {
	grid       *core.Grid
	rules      core.Ruleset
	generation int
}

// New wraps g and rules. The simulation takes ownership of g.
func New(g *core.Grid, rules core.Ruleset) *Simulation {
	return &Simulation{grid: g, rules: rules}
}

// Grid returns the current generation. Callers must not mutate it; use Edit.
func (s *Simulation) Grid() *core.Grid { return s.grid }

// Ruleset returns the active ruleset.
func (s *Simulation) Ruleset() core.Ruleset { return s.rules }

// Generation returns the number of successful steps taken.
func (s *Simulation) Generation() int { return s.generation }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Next computes the generation after g without touching g. The first ruleset
// error aborts the computation.
func Next(g *core.Grid, rules core.Ruleset) (*core.Grid, error) {
	out := g.Clone()
	for x, y := range g.Walk().All() {
		alive, err := rules.Next(g, x, y)
		if err != nil {
			return nil, fmt.Errorf("%s: cell (%d,%d): %w", rules.Name(), x, y, err)
		}
		out.Write(x, y, alive)
	}
	return out, nil
}

// Step advances one generation and returns the new grid, which also becomes
// the current one. On error the current grid is left as it was.
func (s *Simulation) Step() (*core.Grid, error) {
	next, err := Next(s.grid, s.rules)
	if err != nil {
		return nil, err
	}
	s.grid = next
	s.generation++
	return next, nil
}

// Edit applies fn to a copy of the current grid and installs the copy if fn
// succeeds. Grids previously returned by Step or Grid are never modified.
func (s *Simulation) Edit(fn func(g *core.Grid) error) error {
	g := s.grid.Clone()
	if err := fn(g); err != nil {
		return err
	}
	s.grid = g
	return nil
}

// Reset replaces the current grid with a fresh board seeded from src and
// restarts the generation counter. A nil src leaves the board empty.
func (s *Simulation) Reset(src core.BitSource) {
	g := core.NewGrid(s.grid.W, s.grid.H)
	g.Wrap = s.grid.Wrap
	if src != nil {
		g.Randomize(src)
	}
	s.grid = g
	s.generation = 0
}

// Parameters describes the simulation for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", s.rules.Name()),
				core.IntParam("w", "Width", s.grid.W),
				core.IntParam("h", "Height", s.grid.H),
				core.BoolParam("wrap", "Wrap", s.grid.Wrap),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("population", "Population", s.grid.Population()),
			},
		},
	}}
}
