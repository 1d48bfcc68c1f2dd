//go:build !ebiten

package ui

import "lifetrail/internal/core"

// ParameterProvider is implemented by anything the HUD can describe.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Width is always zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(ParameterProvider, ...core.Parameter) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
