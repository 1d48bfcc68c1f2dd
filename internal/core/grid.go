package core

import "strings"

// Grid stores a 2D board of boolean cells in row-major order.
//
// A Grid handed out as a generation snapshot must not be mutated; use Clone
// and mutate the copy instead.
type Grid struct {
	W, H int
	// Wrap enables toroidal neighbor lookups for rulesets that consult it.
	Wrap bool
	data []bool
}

// NewGrid allocates an all-dead grid with wraparound enabled.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, Wrap: true, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice. Index (x, y) lives at y*W+x.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Read returns the cell at (x, y) without wrapping.
func (g *Grid) Read(x, y int) (bool, error) {
	if !g.Contains(x, y) {
		return false, &OutOfRangeError{X: x, Y: y, W: g.W, H: g.H}
	}
	return g.data[g.Index(x, y)], nil
}

// Write stores value at (x, y). Callers must pass in-range coordinates, such
// as the ones produced by a Walker; anything else panics.
func (g *Grid) Write(x, y int, value bool) {
	if !g.Contains(x, y) {
		panic(&OutOfRangeError{X: x, Y: y, W: g.W, H: g.H})
	}
	g.data[g.Index(x, y)] = value
}

// Set is the bounds-checked mutation used by pattern placement.
func (g *Grid) Set(x, y int, value bool) error {
	if !g.Contains(x, y) {
		return &OutOfRangeError{X: x, Y: y, W: g.W, H: g.H}
	}
	g.data[g.Index(x, y)] = value
	return nil
}

// ReadWrapped returns the cell at (x, y). With wrap disabled, coordinates
// outside the grid read as dead. With wrap enabled they are reduced onto the
// torus first.
func (g *Grid) ReadWrapped(x, y int, wrap bool) bool {
	if !wrap {
		if !g.Contains(x, y) {
			return false
		}
		return g.data[g.Index(x, y)]
	}
	return g.data[g.Index(Wrap(x, g.W), Wrap(y, g.H))]
}

// CountLiveNeighbors counts live cells among the eight cells surrounding
// (x, y).
func (g *Grid) CountLiveNeighbors(x, y int, wrap bool) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.ReadWrapped(x+dx, y+dy, wrap) {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, Wrap: g.Wrap, data: make([]bool, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Randomize fills every cell with a bit drawn from src.
func (g *Grid) Randomize(src BitSource) {
	for x, y := range g.Walk().All() {
		g.Write(x, y, src.Bool())
	}
}

// Walk returns a Walker over the grid's extent.
func (g *Grid) Walk() *Walker { return NewWalker(g.W, g.H) }

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live and '.' for dead cells, one row
// per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[g.Index(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Wrap reduces v into [0, n). Negative values wrap around from the top, so
// Wrap(-1, n) == n-1.
func Wrap(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
