//go:build !ebiten

package app

import (
	"errors"
	"log/slog"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag (go run -tags ebiten ./cmd/lifetrail run)")

// Run reports that the GUI is unavailable.
func Run(*Driver, int, int, *slog.Logger) error { return ErrNoGUI }
