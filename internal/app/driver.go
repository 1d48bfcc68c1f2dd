package app

import (
	"context"
	"fmt"
	"log/slog"

	"lifetrail/internal/config"
	"lifetrail/internal/core"
	"lifetrail/internal/logging"
	"lifetrail/internal/patterns"
	"lifetrail/internal/render"
	"lifetrail/internal/sim"
)

// Driver advances a simulation and records its recent generations. It holds
// no GUI state, so the headless CLI and the ebiten front end share it.
type Driver struct {
	sim     *sim.Simulation
	history *sim.History
	trail   render.Trail
	cfg     config.Config
	seed    int64
	log     *slog.Logger
}

// NewDriver builds the board, ruleset and trail described by cfg and seeds
// the board with cfg.Seed. A nil logger discards output.
func NewDriver(cfg config.Config, logger *slog.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	rules, err := cfg.Ruleset()
	if err != nil {
		return nil, err
	}
	base, err := cfg.TrailColor()
	if err != nil {
		return nil, err
	}
	d := &Driver{
		sim:     sim.New(cfg.Grid(), rules),
		history: sim.NewHistory(cfg.History),
		trail:   render.NewTrail(base),
		cfg:     cfg,
		log:     logger,
	}
	d.Reset(cfg.Seed)
	return d, nil
}

// Title names the window after the active ruleset.
func (d *Driver) Title() string {
	return "lifetrail: " + d.sim.Ruleset().Name()
}

// Simulation exposes the underlying simulation.
func (d *Driver) Simulation() *sim.Simulation { return d.sim }

// History exposes the recorded generations.
func (d *Driver) History() *sim.History { return d.history }

// Trail returns the trail colors derived from the configuration.
func (d *Driver) Trail() render.Trail { return d.trail }

// Seed returns the seed of the last reset.
func (d *Driver) Seed() int64 { return d.seed }

// Reset reseeds the board and restarts the history.
func (d *Driver) Reset(seed int64) {
	d.seed = seed
	d.sim.Reset(core.NewRNG(seed))
	d.history.Clear()
	d.history.Push(d.sim.Grid())
	d.log.Info("board reset", "seed", seed, "population", d.sim.Grid().Population())
}

// Clear empties the board as an edit and restarts the history. The seed and
// the generation count are kept.
func (d *Driver) Clear() {
	_ = d.sim.Edit(func(g *core.Grid) error {
		g.Clear()
		return nil
	})
	d.history.Clear()
	d.history.Push(d.sim.Grid())
	d.log.Info("board cleared")
}

// Advance steps one generation, records it and drops the periodic glider.
// A failed step leaves both the board and the history unchanged.
func (d *Driver) Advance() error {
	next, err := d.sim.Step()
	if err != nil {
		d.log.Error("step failed", "generation", d.sim.Generation(), "err", err)
		return err
	}
	d.history.Push(next)
	gen := d.sim.Generation()
	if d.cfg.GliderEvery > 0 && gen%d.cfg.GliderEvery == 0 {
		if err := d.DropGlider(); err != nil {
			d.log.Warn("glider skipped", "generation", gen, "err", err)
		}
	}
	d.log.Debug("generation", "n", gen, "population", d.sim.Grid().Population())
	return nil
}

// GliderAnchor is where periodic gliders are dropped.
func (d *Driver) GliderAnchor() (int, int) {
	size := d.sim.Size()
	return size.W / 2, 2 * size.H / 5
}

// DropGlider places a glider at GliderAnchor.
func (d *Driver) DropGlider() error {
	x, y := d.GliderAnchor()
	return d.Place(patterns.Placement{Pattern: patterns.Glider, X: x, Y: y})
}

// Place applies placements to the current generation as one edit. The newest
// history entry is replaced with the edited board; earlier snapshots stay
// untouched.
func (d *Driver) Place(placements ...patterns.Placement) error {
	err := d.sim.Edit(func(g *core.Grid) error {
		for _, p := range placements {
			if err := p.Apply(g); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	d.history.ReplaceNewest(d.sim.Grid())
	for _, p := range placements {
		d.log.Log(context.Background(), logging.LevelTrace, "pattern placed", "pattern", p.Pattern.Name, "x", p.X, "y", p.Y)
	}
	return nil
}

// Snapshots returns the recorded generations, oldest first.
func (d *Driver) Snapshots() []*core.Grid {
	out := make([]*core.Grid, 0, d.history.Len())
	for _, g := range d.history.All() {
		out = append(out, g)
	}
	return out
}

// Parameters describes the simulation and the trail for the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	snap := d.sim.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Trail",
		Params: []core.Parameter{
			core.Int64Param("seed", "Seed", d.seed),
			core.IntParam("history", "History", d.history.Len()),
			core.StringParam("trail", "Color", d.cfg.Trail),
		},
	})
	return snap
}
