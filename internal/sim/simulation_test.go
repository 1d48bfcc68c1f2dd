package sim

import (
	"errors"
	"testing"

	"lifetrail/internal/core"
	"lifetrail/internal/rules/conway"
)

// failingRuleset errors on one cell and otherwise marks everything alive, so
// a partial write would be visible.
type failingRuleset struct {
	failX, failY int
}

var errBoom = errors.New("boom")

func (f failingRuleset) Name() string { return "failing" }

func (f failingRuleset) Next(g *core.Grid, x, y int) (bool, error) {
	if x == f.failX && y == f.failY {
		return false, errBoom
	}
	return true, nil
}

// snoopRuleset records the population of the grid it is handed each call.
type snoopRuleset struct {
	seen *[]int
}

func (s snoopRuleset) Name() string { return "snoop" }

func (s snoopRuleset) Next(g *core.Grid, x, y int) (bool, error) {
	*s.seen = append(*s.seen, g.Population())
	return true, nil
}

func TestStepAllDeadWrap(t *testing.T) {
	g := core.NewGrid(3, 3)
	s := New(g, conway.New())
	next, err := s.Step()
	if err != nil {
		t.Fatal(err)
	}
	if next.Population() != 0 {
		t.Fatalf("all-dead board produced %d live cells", next.Population())
	}
	if s.Generation() != 1 {
		t.Fatalf("generation %d, expected 1", s.Generation())
	}
	if s.Grid() != next {
		t.Fatal("Step should install the new grid as current")
	}
}

func TestStepDoesNotMutatePrevious(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Write(2, 1, true)
	g.Write(2, 2, true)
	g.Write(2, 3, true)
	before := g.Clone()

	s := New(g, conway.New())
	next, err := s.Step()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(before) {
		t.Fatal("Step mutated the previous generation")
	}
	if next == g {
		t.Fatal("Step must return a fresh grid")
	}
	for _, c := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if v, _ := next.Read(c[0], c[1]); !v {
			t.Fatalf("expected (%d,%d) alive after blinker step", c[0], c[1])
		}
	}
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	var seen []int
	g := core.NewGrid(4, 4)
	s := New(g, snoopRuleset{seen: &seen})
	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 16 {
		t.Fatalf("ruleset called %d times, expected 16", len(seen))
	}
	for i, pop := range seen {
		if pop != 0 {
			t.Fatalf("call %d saw population %d; ruleset observed a partially written generation", i, pop)
		}
	}
}

func TestStepErrorLeavesGridUntouched(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Write(0, 0, true)
	before := g.Clone()

	s := New(g, failingRuleset{failX: 2, failY: 3})
	next, err := s.Step()
	if !errors.Is(err, errBoom) {
		t.Fatalf("err=%v, expected errBoom", err)
	}
	if next != nil {
		t.Fatal("failed step should not return a grid")
	}
	if s.Grid() != g || !g.Equal(before) {
		t.Fatal("failed step changed the current grid")
	}
	if s.Generation() != 0 {
		t.Fatalf("generation %d after failed step", s.Generation())
	}
}

func TestEditCopiesOnWrite(t *testing.T) {
	g := core.NewGrid(3, 3)
	s := New(g, conway.New())

	if err := s.Edit(func(g *core.Grid) error { return g.Set(1, 1, true) }); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 0 {
		t.Fatal("Edit mutated the previous snapshot")
	}
	if v, _ := s.Grid().Read(1, 1); !v {
		t.Fatal("Edit result not installed")
	}

	current := s.Grid()
	err := s.Edit(func(g *core.Grid) error { return g.Set(9, 9, true) })
	if !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("err=%v", err)
	}
	if s.Grid() != current {
		t.Fatal("failed Edit replaced the current grid")
	}
}

func TestReset(t *testing.T) {
	g := core.NewGrid(8, 8)
	g.Wrap = false
	s := New(g, conway.New())
	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	s.Reset(core.NewRNG(3))
	if s.Generation() != 0 {
		t.Fatal("Reset should restart the generation counter")
	}
	if s.Grid().Wrap {
		t.Fatal("Reset should keep the wrap setting")
	}
	want := core.NewGrid(8, 8)
	want.Wrap = false
	want.Randomize(core.NewRNG(3))
	if !s.Grid().Equal(want) {
		t.Fatal("Reset should seed deterministically")
	}
	s.Reset(nil)
	if s.Grid().Population() != 0 {
		t.Fatal("Reset(nil) should clear the board")
	}
}

func TestParameters(t *testing.T) {
	g := core.NewGrid(6, 4)
	g.Write(0, 0, true)
	s := New(g, conway.New())
	p := s.Parameters()
	for key, want := range map[string]string{
		"rule":       "conway",
		"w":          "6",
		"h":          "4",
		"wrap":       "true",
		"generation": "0",
		"population": "1",
	} {
		got, ok := p.Lookup(key)
		if !ok || got.Value != want {
			t.Fatalf("parameter %q = %+v, expected %q", key, got, want)
		}
	}
}
