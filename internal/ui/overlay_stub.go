//go:build !ebiten

package ui

import (
	"image"

	"morphfill/internal/core"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(bool) {}

// CellAt never resolves a cell in headless builds.
func (o *Overlay) CellAt(int, int) (image.Point, bool) { return image.Point{}, false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
