package render

import (
	"image/color"
	"math"
	"testing"

	"lifetrail/internal/core"
	"lifetrail/pkg/hsv"
)

func TestIntensity(t *testing.T) {
	// With ten snapshots the oldest is 35 and the step is 10, newest jumps to 255.
	want := []int{35, 45, 55, 65, 75, 85, 95, 105, 115, 255}
	for i, w := range want {
		if got := Intensity(i, 10); got != w {
			t.Fatalf("Intensity(%d,10)=%d, expected %d", i, got, w)
		}
	}
	if got := Intensity(0, 1); got != 255 {
		t.Fatalf("single snapshot should be full intensity, got %d", got)
	}
	if got := Intensity(0, 20); got != 0 {
		t.Fatalf("very old snapshots clamp to 0, got %d", got)
	}
}

func TestGreyTrailMatchesIntensity(t *testing.T) {
	trail := NewTrail(hsv.HSV{H: 0.4, S: 0, V: 1})
	for i := 0; i < 10; i++ {
		v := uint8(Intensity(i, 10))
		if got := trail.Color(i, 10); got != (color.RGBA{R: v, G: v, B: v, A: 255}) {
			t.Fatalf("snapshot %d color %v, expected grey %d", i, got, v)
		}
	}
}

func TestNewTrailUndefinedFallsBackToGrey(t *testing.T) {
	nan := float32(math.NaN())
	trail := NewTrail(hsv.HSV{H: 0.5, S: 1, V: nan})
	if trail.Hue != 0 || trail.Saturation != 0 {
		t.Fatalf("undefined base should produce grey trail, got %+v", trail)
	}
	colored := NewTrail(hsv.HSV{H: 0.5, S: 1, V: 1})
	if got := colored.Color(0, 1); got != (color.RGBA{R: 0, G: 255, B: 255, A: 255}) {
		t.Fatalf("cyan trail newest color %v", got)
	}
}

func TestFillTrail(t *testing.T) {
	older := core.NewGrid(2, 1)
	older.Write(0, 0, true)
	older.Write(1, 0, true)
	newer := core.NewGrid(2, 1)
	newer.Write(1, 0, true)
	mismatched := core.NewGrid(3, 3)
	mismatched.Write(0, 0, true)

	trail := NewTrail(hsv.HSV{V: 1})
	buf := FillTrail(2, 1, []*core.Grid{older, mismatched, newer}, trail)

	old := uint8(Intensity(0, 3))
	want := []byte{old, old, old, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf=%v, expected %v", buf, want)
		}
	}
}

func TestFillTrailBackground(t *testing.T) {
	trail := Trail{Background: color.RGBA{R: 1, G: 2, B: 3, A: 4}}
	buf := FillTrail(1, 1, nil, trail)
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 || buf[3] != 4 {
		t.Fatalf("background not applied: %v", buf)
	}
}
