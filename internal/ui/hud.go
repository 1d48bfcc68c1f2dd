//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifetrail/internal/core"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// ParameterProvider is implemented by anything the HUD can describe.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var keyHelp = []string{
	"space  pause",
	"n      single step",
	"g      drop glider",
	"r      reset seed",
	"s      new seed",
	"c      clear board",
	"q/esc  quit",
}

// HUD renders a read-only parameter panel to the right of the board.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the text from provider. extra parameters are appended in
// their own group.
func (h *HUD) Update(provider ParameterProvider, extra ...core.Parameter) {
	if h == nil || h.width <= 0 {
		return
	}
	snapshot := provider.Parameters()
	if len(extra) > 0 {
		snapshot.Groups = append(snapshot.Groups, core.ParameterGroup{Name: "Display", Params: extra})
	}
	h.lines = h.lines[:0]
	for _, group := range snapshot.Groups {
		h.lines = append(h.lines, group.Name)
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf("  %-11s %s", p.Label, p.Value))
		}
	}
	h.lines = append(h.lines, "", "Keys")
	for _, k := range keyHelp {
		h.lines = append(h.lines, "  "+k)
	}
}

// Draw paints the panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, line := range h.lines {
		y := hudPadding + (i+1)*hudLineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
