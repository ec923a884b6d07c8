//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"galaxy/internal/galaxy"
	"galaxy/internal/render"
	"galaxy/internal/ui"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the galaxy model to the ebiten.Game interface.
type Game struct {
	model   *galaxy.Model
	painter *render.PointPainter
	camera  *render.OrbitCamera
	hud     *ui.HUD
	overlay *ui.Overlay

	seed int64
	w, h int

	dragging     bool
	lastX, lastY int
}

// New builds the initial galaxy and the views around it.
func New(cfg *Config) (*Game, error) {
	painter := render.NewPointPainter()
	model, err := galaxy.NewModel(cfg.Params(), galaxy.NewSource(cfg.Seed), painter)
	if err != nil {
		painter.Dispose()
		return nil, err
	}
	g := &Game{
		model:   model,
		painter: painter,
		camera:  render.NewOrbitCamera(mgl64.Vec3{0, 4, 8}),
		hud:     ui.NewHUD(model, cfg.PanelWidth),
		seed:    cfg.Seed,
		w:       cfg.Width,
		h:       cfg.Height,
	}
	g.overlay = ui.NewOverlay(g.camera, g)
	return g, nil
}

// PointCount returns the size of the active cloud.
func (g *Game) PointCount() int { return g.model.Cloud().Len() }

// Reset regenerates the galaxy from the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.model.Reseed(galaxy.NewSource(seed)); err != nil {
		log.Printf("reseed %d: %v", seed, err)
	}
}

// Update handles input and advances the camera.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	viewW := g.viewportWidth()
	g.hud.Update(viewW)
	g.overlay.Update()
	if !g.hud.Capturing() {
		g.handleCamera(viewW)
	}
	g.camera.Update()
	return nil
}

func (g *Game) handleCamera(viewW int) {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx < viewW {
		g.dragging = true
		g.lastX, g.lastY = mx, my
	}
	if g.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = false
		} else {
			h := float64(g.h)
			if h <= 0 {
				h = 1
			}
			dx, dy := float64(mx-g.lastX), float64(my-g.lastY)
			g.camera.Orbit(-2*math.Pi*dx/h, 2*math.Pi*dy/h)
			g.lastX, g.lastY = mx, my
		}
	}
	if mx < viewW {
		if _, wy := ebiten.Wheel(); wy > 0 {
			g.camera.Dolly(0.95)
		} else if wy < 0 {
			g.camera.Dolly(1 / 0.95)
		}
	}
}

// Draw renders the galaxy, the overlay and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	viewW := g.viewportWidth()
	viewport := screen.SubImage(image.Rect(0, 0, viewW, g.h)).(*ebiten.Image)
	g.painter.Draw(viewport, g.camera)
	g.overlay.Draw(viewport)
	g.hud.Draw(screen, viewW, g.h)
}

// Layout tracks the window size so the projection follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close releases the cloud and painter resources.
func (g *Game) Close() {
	g.model.Close()
	g.painter.Dispose()
}

func (g *Game) viewportWidth() int {
	w := g.w - g.hud.Width()
	if w < 1 {
		w = 1
	}
	return w
}
