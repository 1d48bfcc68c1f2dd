package render

import (
	"image/color"

	"lifetrail/internal/core"
	"lifetrail/pkg/hsv"
)

// Trail colors generations by age: the newest generation is drawn at full
// value, older ones progressively darker, all with the same hue and
// saturation.
type Trail struct {
	Hue        float32
	Saturation float32
	Background color.RGBA
}

// NewTrail derives a trail from base. Colors without a defined hue or
// saturation (NaN components, e.g. from pure black) fall back to a grey
// trail.
func NewTrail(base hsv.HSV) Trail {
	t := Trail{Background: color.RGBA{A: 255}}
	if base.Undefined() {
		return t
	}
	t.Hue = base.H
	t.Saturation = base.S
	return t
}

// Intensity returns the 0..255 brightness of snapshot i among n, with i == 0
// the oldest. The newest is always 255; the rest step down by 10 from 125.
func Intensity(i, n int) int {
	if i >= n-1 {
		return 255
	}
	v := 125 - 10*(n-1-i)
	if v < 0 {
		return 0
	}
	return v
}

// Color returns the pixel color of snapshot i among n.
func (t Trail) Color(i, n int) color.RGBA {
	v := float32(Intensity(i, n)) / 255
	return hsv.HSV{H: t.Hue, S: t.Saturation, V: v}.ToPixel()
}

// fillTrailRGBA paints snapshots, oldest first, into buf. A cell takes the
// color of the newest snapshot in which it is alive. Snapshots whose size
// does not match w*h are skipped.
func fillTrailRGBA(buf []byte, w, h int, snapshots []*core.Grid, trail Trail) {
	bg := trail.Background
	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = bg.R
		buf[base+1] = bg.G
		buf[base+2] = bg.B
		buf[base+3] = bg.A
	}
	n := len(snapshots)
	for i, g := range snapshots {
		if g == nil || g.W != w || g.H != h {
			continue
		}
		col := trail.Color(i, n)
		for idx, alive := range g.Cells() {
			if !alive {
				continue
			}
			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// FillTrail paints snapshots into a freshly allocated w*h RGBA buffer.
func FillTrail(w, h int, snapshots []*core.Grid, trail Trail) []byte {
	buf := make([]byte, 4*w*h)
	fillTrailRGBA(buf, w, h, snapshots, trail)
	return buf
}
