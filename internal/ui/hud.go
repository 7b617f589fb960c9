//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"termlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the speed panel to the right of the board. Clicking its
// buttons produces the same keys the keyboard would.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	speed      int
	limits     core.SpeedLimits
	generation int

	minusRect    image.Rectangle
	plusRect     image.Rectangle
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
		h.minusRect, h.plusRect = speedButtons(width)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records the values to display and reports a key for any button
// clicked this frame.
func (h *HUD) Update(panelOffsetX int, speed *core.Speed, generation int) (core.Key, bool) {
	if h == nil {
		return 0, false
	}
	h.panelOffsetX = panelOffsetX
	h.speed = speed.Millis()
	h.limits = speed.Limits()
	h.generation = generation
	return h.handleInput()
}

func (h *HUD) handleInput() (core.Key, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return 0, false
	}
	px := mx - h.panelOffsetX
	if pointInRect(px, my, h.minusRect) && h.speed > h.limits.Min {
		return 'a', true
	}
	if pointInRect(px, my, h.plusRect) && h.speed < h.limits.Max {
		return 'z', true
	}
	return 0, false
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Life Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	rowY := controlsTop + labelBaseline
	text.Draw(h.panel, "Delay", face, panelPadding, rowY, label)
	value := fmt.Sprintf("%dms", h.speed)
	valueX := h.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, valueX, rowY, label)
	h.drawButton(h.minusRect, "-", h.speed > h.limits.Min)
	h.drawButton(h.plusRect, "+", h.speed < h.limits.Max)

	infoY := controlsTop + lineHeight + infoSpacing
	text.Draw(h.panel, fmt.Sprintf("Generation %d", h.generation), face, panelPadding, infoY, dim)
	text.Draw(h.panel, "A/Z  faster/slower", face, panelPadding, infoY+infoSpacing, dim)
	text.Draw(h.panel, "N    neighbour map", face, panelPadding, infoY+2*infoSpacing, dim)
	text.Draw(h.panel, "SPACE exit", face, panelPadding, infoY+3*infoSpacing, dim)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
