//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"galaxy/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the viewport. Holding a
// button keeps adjusting a pending value; the scene only sees the value once
// the button is released.
type HUD struct {
	scene      core.Scene
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	setters      hudSetters
	panelOffsetX int
	title        string

	edit pendingEdit

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided scene and panel width.
func NewHUD(scene core.Scene, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{scene: scene, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(scene)
	if provider, ok := scene.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	h.setters = settersFor(scene)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the scene and handles
// HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.scene.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Capturing reports whether the HUD owns the current mouse gesture.
func (h *HUD) Capturing() bool {
	return h != nil && h.edit.active()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(scene core.Scene) string {
	if scene == nil {
		return "Controls"
	}
	name := scene.Name()
	if name == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		if h.edit.holds(state) {
			continue
		}
		state.sync(h.snapshot)
	}
}

func (h *HUD) handleInput() {
	if h.edit.active() {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			if state, ok := h.edit.release(); ok {
				h.setters.commit(state)
			}
			return
		}
		h.edit.tick(inpututil.MouseButtonPressDuration(ebiten.MouseButtonLeft))
		return
	}
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue || !h.setters.settable(state) {
			continue
		}
		switch {
		case pointInRect(px, my, state.minusRect):
			h.edit.press(state, -1)
		case pointInRect(px, my, state.plusRect):
			h.edit.press(state, 1)
		default:
			continue
		}
		return
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue || !h.setters.settable(state) {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		_, ok := stepInt(state.control, state.intValue, direction)
		return ok
	case core.ParamTypeFloat:
		_, ok := stepFloat(state.control, state.floatValue, direction)
		return ok
	case core.ParamTypeColor:
		_, ok := stepHue(state.control, state.colorValue, direction)
		return ok
	}
	return false
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		switch {
		case !state.hasValue:
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		case state.dirty:
			valueColor = color.RGBA{R: 250, G: 210, B: 120, A: 255}
		}
		value := state.value
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		if state.control.Type == core.ParamTypeColor && state.hasValue {
			h.drawSwatch(state, valueX-buttonGap-swatchSize)
		}
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawSwatch(state *hudControlState, x int) {
	c, err := colorful.Hex(state.colorValue)
	if err != nil {
		return
	}
	y := state.top + (lineHeight-swatchSize)/2
	h.fillRect(image.Rect(x, y, x+swatchSize, y+swatchSize), c)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.Color) {
	if h.pixel == nil {
		return
	}
	r, g, b, a := c.RGBA()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	swatchSize     = 12
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
