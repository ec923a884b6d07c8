//go:build !ebiten

package ui

import "galaxy/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Scene, int) *HUD { return nil }

// Width reports zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Capturing always reports false in the headless build.
func (h *HUD) Capturing() bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
