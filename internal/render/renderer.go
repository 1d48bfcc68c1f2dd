//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifetrail/internal/core"
)

// TrailPainter keeps one RGBA image for a w*h board and repaints it from a
// list of generation snapshots each frame.
type TrailPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewTrailPainter allocates a painter for a grid of size w*h.
func NewTrailPainter(w, h int) *TrailPainter {
	tp := &TrailPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	tp.img = ebiten.NewImage(w, h)
	return tp
}

// Draw paints snapshots (oldest first) with trail and draws the result onto
// dst scaled by scale.
func (tp *TrailPainter) Draw(dst *ebiten.Image, snapshots []*core.Grid, trail Trail, scale int) {
	fillTrailRGBA(tp.buf, tp.w, tp.h, snapshots, trail)
	tp.img.WritePixels(tp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TrailPainter) Size() (int, int) { return tp.w, tp.h }
