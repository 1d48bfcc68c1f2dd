package conway

import (
	"errors"
	"testing"

	"lifetrail/internal/core"
)

// neighborOffsets lists the eight neighbors of (2,2) in a fixed order so a
// test can light the first n of them.
var neighborOffsets = [][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func TestDecisionTable(t *testing.T) {
	for _, alive := range []bool{true, false} {
		for n := 0; n <= 8; n++ {
			g := core.NewGrid(5, 5)
			g.Write(2, 2, alive)
			for _, off := range neighborOffsets[:n] {
				g.Write(2+off[0], 2+off[1], true)
			}
			if got := g.CountLiveNeighbors(2, 2, true); got != n {
				t.Fatalf("setup: neighbors=%d, expected %d", got, n)
			}
			want := (alive && n == 2) || n == 3
			got, err := New().Next(g, 2, 2)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("alive=%v neighbors=%d: next=%v, expected %v", alive, n, got, want)
			}
			if Decide(alive, n) != want {
				t.Fatalf("Decide(%v,%d) disagrees with Next", alive, n)
			}
		}
	}
}

func TestNextOutOfRange(t *testing.T) {
	g := core.NewGrid(3, 3)
	if _, err := New().Next(g, 3, 0); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("err=%v, expected ErrOutOfRange", err)
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	g := core.NewGrid(3, 3)
	for x, y := range g.Walk().All() {
		alive, err := New().Next(g, x, y)
		if err != nil {
			t.Fatal(err)
		}
		if alive {
			t.Fatalf("cell (%d,%d) spontaneously came alive", x, y)
		}
	}
}

func step(t *testing.T, g *core.Grid) *core.Grid {
	t.Helper()
	next := g.Clone()
	for x, y := range g.Walk().All() {
		alive, err := New().Next(g, x, y)
		if err != nil {
			t.Fatal(err)
		}
		next.Write(x, y, alive)
	}
	return next
}

func expectCells(t *testing.T, g *core.Grid, label string, expects map[[2]int]bool) {
	t.Helper()
	for x, y := range g.Walk().All() {
		alive, _ := g.Read(x, y)
		_, shouldBeAlive := expects[[2]int{x, y}]
		if shouldBeAlive != alive {
			t.Fatalf("%s cell (%d,%d) alive=%v, expected %v", label, x, y, alive, shouldBeAlive)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Write(2, 1, true)
	g.Write(2, 2, true)
	g.Write(2, 3, true)

	g = step(t, g)
	expectCells(t, g, "after first step", map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	g = step(t, g)
	expectCells(t, g, "after second step", map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlinkerAcrossEdgeNeedsWrap(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Write(0, 1, true)
	g.Write(0, 2, true)
	g.Write(0, 3, true)

	wrapped := step(t, g)
	expectCells(t, wrapped, "wrapped", map[[2]int]bool{
		{4, 2}: true,
		{0, 2}: true,
		{1, 2}: true,
	})

	g.Wrap = false
	clamped := step(t, g)
	expectCells(t, clamped, "clamped", map[[2]int]bool{
		{0, 2}: true,
		{1, 2}: true,
	})
}

func TestRegistered(t *testing.T) {
	rs, err := core.NewRuleset("conway", nil)
	if err != nil {
		t.Fatal(err)
	}
	if rs.Name() != "conway" {
		t.Fatalf("name %q", rs.Name())
	}
}
