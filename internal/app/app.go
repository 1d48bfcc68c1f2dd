//go:build ebiten

package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lifetrail/internal/core"
	"lifetrail/internal/logging"
	"lifetrail/internal/render"
	"lifetrail/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.TrailPainter
	hud     *ui.HUD
	cadence *core.FixedStep
	log     *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	failed   error
}

// New constructs a Game for the provided driver.
func New(d *Driver, scale, rate int, logger *slog.Logger) *Game {
	size := d.Simulation().Size()
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		driver:  d,
		painter: render.NewTrailPainter(size.W, size.H),
		hud:     ui.NewHUD(hudWidth),
		cadence: core.NewFixedStep(rate),
		log:     logger,
		scale:   scale,
	}
}

// Reset reinitializes the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.driver.Reset(seed)
	g.cadence.Reset()
	g.tickOnce = false
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if g.failed != nil {
		return g.failed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Info("pause toggled", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.driver.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.driver.Clear()
		g.cadence.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if err := g.driver.DropGlider(); err != nil {
			g.log.Warn("glider skipped", "err", err)
		}
	}

	due := g.cadence.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		if err := g.driver.Advance(); err != nil {
			g.failed = err
			return err
		}
	}
	g.hud.Update(g.driver,
		core.BoolParam("paused", "Paused", g.paused),
		core.FloatParam("fps", "FPS", float64(int(ebiten.ActualFPS()*10))/10),
		core.FloatParam("step", "Step ms", float64(g.cadence.Interval().Microseconds())/1000),
	)
	return nil
}

// Draw renders the fading trail and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.painter.Draw(screen, g.driver.Snapshots(), g.driver.Trail(), g.scale)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, h*g.scale)
	g.log.Log(context.Background(), logging.LevelTrace, "frame drawn", "elapsed", time.Since(start))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}

// Run opens a window and blocks until it is closed.
func Run(d *Driver, scale, rate int, logger *slog.Logger) error {
	game := New(d, scale, rate, logger)
	size := d.Simulation().Size()

	ebiten.SetWindowTitle(d.Title())
	ebiten.SetWindowSize(size.W*scale+game.hud.Width(), size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
