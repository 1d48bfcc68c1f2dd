// Package patterns places well-known Life patterns onto a grid.
package patterns

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lifetrail/internal/core"
)

// Pattern is a set of live cell offsets relative to an anchor.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Blinker is a period-2 oscillator, vertical in this phase.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{1, 0}, {1, 1}, {1, 2}}}
	// Glider travels one cell diagonally towards +x,+y every four generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
	// Spaceship is the lightweight spaceship, travelling towards -x.
	Spaceship = Pattern{Name: "spaceship", Cells: [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}}
)

var byName = map[string]Pattern{
	Blinker.Name:   Blinker,
	Glider.Name:    Glider,
	Spaceship.Name: Spaceship,
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, bool) {
	p, ok := byName[name]
	return p, ok
}

// Names lists the known pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets every cell of p, anchored at (x, y), alive. Either every cell is
// placed or, if any falls outside the grid, none is.
func Place(g *core.Grid, p Pattern, x, y int) error {
	for _, c := range p.Cells {
		if !g.Contains(x+c[0], y+c[1]) {
			return fmt.Errorf("place %s at (%d,%d): %w", p.Name, x, y,
				&core.OutOfRangeError{X: x + c[0], Y: y + c[1], W: g.W, H: g.H})
		}
	}
	for _, c := range p.Cells {
		if err := g.Set(x+c[0], y+c[1], true); err != nil {
			return err
		}
	}
	return nil
}

// Placement is a pattern anchored at a board coordinate.
type Placement struct {
	Pattern Pattern
	X, Y    int
}

// ParsePlacement parses "name:x,y", e.g. "glider:25,20".
func ParsePlacement(s string) (Placement, error) {
	name, anchor, ok := strings.Cut(s, ":")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q is not name:x,y", s)
	}
	p, ok := Lookup(name)
	if !ok {
		return Placement{}, fmt.Errorf("unknown pattern %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	xs, ys, ok := strings.Cut(anchor, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q is not name:x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: %w", s, err)
	}
	return Placement{Pattern: p, X: x, Y: y}, nil
}

// Apply places the pattern onto g.
func (p Placement) Apply(g *core.Grid) error {
	return Place(g, p.Pattern, p.X, p.Y)
}
