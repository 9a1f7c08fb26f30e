//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 18
)

// HUD renders the statistics panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     Status
}

// NewHUD constructs a HUD with the given panel width. A zero width disables it.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the status to display on the next Draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + 12
	for i, line := range h.status.Lines() {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
	}
	y += lineHeight / 2
	for _, help := range []string{"space pause", "n step", "r rewind", "+/- speed", "d changes"} {
		text.Draw(h.panel, help, face, panelPadding, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
