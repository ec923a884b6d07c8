//go:build ebiten

package render

import (
	"image"
	"image/color"

	"galaxy/internal/galaxy"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchPoints keeps each DrawTriangles call under the uint16 index limit.
const maxBatchPoints = 16000

// PointPainter draws the active point cloud as screen-aligned quads. It
// implements galaxy.Viewer.
type PointPainter struct {
	buffers *bufferSet
	white   *ebiten.Image
	src     *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPointPainter allocates the shared source texture.
func NewPointPainter() *PointPainter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &PointPainter{
		buffers: newBufferSet(),
		white:   white,
		src:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Show makes cloud the drawn cloud.
func (pp *PointPainter) Show(cloud *galaxy.PointCloud, style galaxy.Style) error {
	return pp.buffers.show(cloud, style)
}

// Release frees the buffers built for cloud.
func (pp *PointPainter) Release(cloud *galaxy.PointCloud) {
	pp.buffers.release(cloud)
}

// Dispose frees the source texture.
func (pp *PointPainter) Dispose() {
	pp.white.Dispose()
}

// Draw projects the active cloud through cam and blends it onto dst.
func (pp *PointPainter) Draw(dst *ebiten.Image, cam *OrbitCamera) {
	b := pp.buffers.active
	if b == nil || len(b.cloud.Positions) == 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	vp := cam.ViewProjection(float64(w) / float64(h))

	op := &ebiten.DrawTrianglesOptions{}
	if b.style.Additive {
		op.Blend = ebiten.BlendLighter
	}

	pp.vertices = pp.vertices[:0]
	pp.indices = pp.indices[:0]
	n := 0
	for i, p := range b.cloud.Positions {
		sx, sy, depth, ok := Project(vp, p, w, h)
		if !ok {
			continue
		}
		half := float32(PointSize(b.style.Size, depth, h) * 0.5)
		r, g, bl := float32(1), float32(1), float32(1)
		if b.style.VertexColors {
			r, g, bl = b.colors[i*3], b.colors[i*3+1], b.colors[i*3+2]
		}
		pp.appendQuad(float32(sx), float32(sy), half, r, g, bl, n)
		n++
		if n == maxBatchPoints {
			dst.DrawTriangles(pp.vertices, pp.indices, pp.src, op)
			pp.vertices = pp.vertices[:0]
			pp.indices = pp.indices[:0]
			n = 0
		}
	}
	if n > 0 {
		dst.DrawTriangles(pp.vertices, pp.indices, pp.src, op)
	}
}

func (pp *PointPainter) appendQuad(x, y, half, r, g, b float32, n int) {
	base := uint16(n * 4)
	for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		pp.vertices = append(pp.vertices, ebiten.Vertex{
			DstX:   x + c[0]*half,
			DstY:   y + c[1]*half,
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: 1,
		})
	}
	pp.indices = append(pp.indices, base, base+1, base+2, base+1, base+3, base+2)
}
