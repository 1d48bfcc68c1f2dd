package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("coordinate out of range")

// OutOfRangeError reports a coordinate outside a W*H grid.
type OutOfRangeError struct {
	X, Y int
	W, H int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) out of range for %dx%d grid", e.X, e.Y, e.W, e.H)
}

// Is lets errors.Is(err, ErrOutOfRange) succeed.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
