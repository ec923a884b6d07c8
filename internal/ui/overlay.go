//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"galaxy/internal/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type pointCounter interface {
	PointCount() int
}

// Overlay draws optional debugging visuals on top of the viewport: world axes
// (key 1) and a stats line (key 2).
type Overlay struct {
	cam       *render.OrbitCamera
	stats     pointCounter
	showAxes  bool
	showStats bool
	axisLen   float64

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(cam *render.OrbitCamera, stats pointCounter) *Overlay {
	o := &Overlay{cam: cam, stats: stats, axisLen: 5, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAxes = !o.showAxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled layers onto screen, which is the viewport area.
func (o *Overlay) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if o.showAxes {
		o.drawAxes(screen, w, h)
	}
	if o.showStats {
		line := fmt.Sprintf("%d points  %.0f fps", o.stats.PointCount(), ebiten.ActualFPS())
		text.Draw(screen, line, basicfont.Face7x13, 10, h-12, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
}

func (o *Overlay) drawAxes(screen *ebiten.Image, w, h int) {
	vp := o.cam.ViewProjection(float64(w) / float64(h))
	ox, oy, _, ok := render.Project(vp, mgl64.Vec3{}, w, h)
	if !ok {
		return
	}
	axes := []struct {
		dir mgl64.Vec3
		col color.RGBA
	}{
		{mgl64.Vec3{1, 0, 0}, color.RGBA{R: 230, G: 80, B: 80, A: 255}},
		{mgl64.Vec3{0, 1, 0}, color.RGBA{R: 80, G: 220, B: 100, A: 255}},
		{mgl64.Vec3{0, 0, 1}, color.RGBA{R: 90, G: 140, B: 240, A: 255}},
	}
	for _, axis := range axes {
		x, y, _, ok := render.Project(vp, axis.dir.Mul(o.axisLen), w, h)
		if !ok {
			continue
		}
		o.drawLine(screen, ox, oy, x, y, 1.5, axis.col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
