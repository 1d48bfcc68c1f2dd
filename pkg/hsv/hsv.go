// Package hsv converts between hue-saturation-value and red-green-blue
// colors.
//
// HSV components are nominally in [0,1], with H holding degrees/360. RGB
// components are nominally in [0,255]. Two RGB representations exist: the
// float RGB type, which keeps conversions unrounded and round-trips within
// MaxDiff, and image/color.RGBA pixels, whose channels are rounded to the
// nearest integer and therefore do not round-trip exactly.
//
// Converting pure black back to HSV has no meaningful hue or saturation; the
// result carries NaN in V, which callers detect with Undefined.
package hsv

import (
	"fmt"
	"image/color"
	"math"
)

// MaxDiff is the per-component tolerance used by Equal and Near.
const MaxDiff float32 = 0.00005

// rgbEpsilon is the smallest channel range treated as chromatic on the float
// path. The pixel path uses exact integer comparison instead.
const rgbEpsilon float32 = 0.00001

// HSV is a hue/saturation/value triple.
type HSV struct {
	H, S, V float32
}

// RGB is a float red/green/blue triple on the 0..255 scale.
type RGB struct {
	R, G, B float32
}

// New returns HSV{h, s, v}.
func New(h, s, v float32) HSV { return HSV{H: h, S: s, V: v} }

func (c HSV) String() string {
	return fmt.Sprintf("(%.5f, %.5f, %.5f)", c.H, c.S, c.V)
}

func (c RGB) String() string {
	return fmt.Sprintf("(%.5f, %.5f, %.5f)", c.R, c.G, c.B)
}

// Undefined reports whether c came from a color without a representable
// hue and saturation (see FromRGB).
func (c HSV) Undefined() bool {
	return math.IsNaN(float64(c.H)) || math.IsNaN(float64(c.S)) || math.IsNaN(float64(c.V))
}

// Equal compares component-wise with tolerance MaxDiff, but only in one
// direction: a component of c may exceed the matching component of o by at
// most MaxDiff, while any amount smaller than o still compares equal. NaN
// components never make Equal false. Use Near for a symmetric comparison.
func (c HSV) Equal(o HSV) bool {
	return !(c.H-o.H > MaxDiff || c.S-o.S > MaxDiff || c.V-o.V > MaxDiff)
}

// Near reports whether every component of c is within MaxDiff of o in either
// direction. NaN components are never near anything.
func (c HSV) Near(o HSV) bool {
	return near(c.H, o.H) && near(c.S, o.S) && near(c.V, o.V)
}

// Equal is the one-sided comparison described on HSV.Equal.
func (c RGB) Equal(o RGB) bool {
	return !(c.R-o.R > MaxDiff || c.G-o.G > MaxDiff || c.B-o.B > MaxDiff)
}

// Near is the symmetric comparison described on HSV.Near.
func (c RGB) Near(o RGB) bool {
	return near(c.R, o.R) && near(c.G, o.G) && near(c.B, o.B)
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= MaxDiff
}

// ToRGB converts c to an unrounded RGB triple.
func (c HSV) ToRGB() RGB {
	r, g, b := c.sextant()
	return RGB{R: r * 255, G: g * 255, B: b * 255}
}

// ToPixel converts c to an opaque pixel, rounding each channel to the nearest
// integer (halves away from zero) and saturating to 0..255.
func (c HSV) ToPixel() color.RGBA {
	r, g, b := c.sextant()
	return color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 255}
}

// sextant returns the color on a 0..1 scale. Products are converted to
// float32 explicitly so no platform fuses them into FMA instructions.
func (c HSV) sextant() (r, g, b float32) {
	h6 := c.H * 6
	i6 := int32(h6)
	f := h6 - float32(i6)
	p := c.V * (1 - c.S)
	q := c.V * (1 - float32(f*c.S))
	t := c.V * (1 - float32((1-f)*c.S))
	switch i6 % 6 {
	case 0:
		return c.V, t, p
	case 1:
		return q, c.V, p
	case 2:
		return p, c.V, t
	case 3:
		return p, q, c.V
	case 4:
		return t, p, c.V
	case 5:
		return c.V, p, q
	default:
		// Only reachable for negative hues.
		return 0, 0, 0
	}
}

func toByte(v float32) uint8 {
	scaled := v * 255
	x := math.Round(float64(scaled))
	switch {
	case math.IsNaN(x), x <= 0:
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}

// FromRGB converts a float RGB triple to HSV. A channel range of at most
// 0.00001 is achromatic (H and S zero). A non-positive maximum channel, pure
// black included, yields NaN in V.
func FromRGB(c RGB) HSV {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	out := HSV{V: hi / 255}
	if hi <= 0 {
		out.V = float32(math.NaN())
		return out
	}
	delta := hi - lo
	if delta <= rgbEpsilon {
		return out
	}
	out.S = delta / hi
	var h float32
	switch {
	case hi > c.R && hi > c.G:
		h = 4 + (c.R-c.G)/delta
	case hi > c.R:
		h = 2 + (c.B-c.R)/delta
	default:
		h = (c.G - c.B) / delta
	}
	out.H = normalizeHue(h)
	return out
}

// FromPixel converts an integer-channel pixel to HSV. Alpha is ignored. It
// agrees with FromRGB on the same color, except that any non-zero channel
// range counts as chromatic.
func FromPixel(c color.RGBA) HSV {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	out := HSV{V: float32(hi) / 255}
	if hi == 0 {
		out.V = float32(math.NaN())
		return out
	}
	delta := hi - lo
	if delta == 0 {
		return out
	}
	d := float32(delta)
	out.S = d / float32(hi)
	r, g, b := int(c.R), int(c.G), int(c.B)
	var h float32
	switch {
	case hi > c.R && hi > c.G:
		h = 4 + float32(r-g)/d
	case hi > c.R:
		h = 2 + float32(b-r)/d
	default:
		h = float32(g-b) / d
	}
	out.H = normalizeHue(h)
	return out
}

// FromColor converts any color.Color by way of its 8-bit RGBA value.
func FromColor(c color.Color) HSV {
	return FromPixel(color.RGBAModel.Convert(c).(color.RGBA))
}

// normalizeHue turns a sector position (-1..5) into a hue in [0,1).
func normalizeHue(sector float32) float32 {
	deg := sector * 60
	if deg < 0 {
		deg += 360
	}
	return deg / 360
}
