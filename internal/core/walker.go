package core

import "iter"

// Walker yields every coordinate of a w*h extent once, in row-major order.
// Once exhausted it stays exhausted until Reset.
type Walker struct {
	w, h int
	x, y int
}

// NewWalker creates a walker positioned at (0, 0).
func NewWalker(w, h int) *Walker {
	return &Walker{w: w, h: h}
}

// Next returns the next coordinate. ok is false once the final coordinate,
// (w-1, h-1), has been returned.
func (wk *Walker) Next() (x, y int, ok bool) {
	if wk.w <= 0 || wk.y >= wk.h {
		return 0, 0, false
	}
	x, y = wk.x, wk.y
	wk.x++
	if wk.x == wk.w {
		wk.x = 0
		wk.y++
	}
	return x, y, true
}

// Reset rewinds the walker to (0, 0).
func (wk *Walker) Reset() {
	wk.x, wk.y = 0, 0
}

// All returns an iterator over the remaining coordinates.
func (wk *Walker) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for {
			x, y, ok := wk.Next()
			if !ok || !yield(x, y) {
				return
			}
		}
	}
}
