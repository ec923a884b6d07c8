package galaxy

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// PointCloud is the output of one generation call. Positions and Colors are
// index aligned.
type PointCloud struct {
	Positions []mgl64.Vec3
	Colors    []colorful.Color
}

// Len returns the number of points.
func (c *PointCloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Positions)
}

// Bounds returns the axis-aligned box around all positions. An empty cloud
// reports zero vectors.
func (c *PointCloud) Bounds() (lo, hi mgl64.Vec3) {
	if c.Len() == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	lo, hi = c.Positions[0], c.Positions[0]
	for _, p := range c.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

// Style carries the material settings the viewer applies to a cloud.
type Style struct {
	Size         float64
	Additive     bool
	VertexColors bool

	// DepthWrite is part of the viewer contract only; PointPainter has no
	// depth buffer and never writes depth.
	DepthWrite bool
}
