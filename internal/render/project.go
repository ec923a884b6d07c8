package render

import "github.com/go-gl/mathgl/mgl64"

// Project maps a world position to screen pixels. depth is the clip-space w,
// i.e. the distance along the view axis. ok is false for points outside the
// view frustum.
func Project(vp mgl64.Mat4, p mgl64.Vec3, w, h int) (sx, sy, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	cw := clip.W()
	if cw <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip.X()/cw, clip.Y()/cw, clip.Z()/cw
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 || nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	sx = (nx + 1) * 0.5 * float64(w)
	sy = (1 - ny) * 0.5 * float64(h)
	return sx, sy, cw, true
}

// PointSize converts a world-space point size to pixels with perspective
// attenuation, never returning less than one pixel.
func PointSize(size, depth float64, h int) float64 {
	if depth <= 0 {
		return 1
	}
	px := size * float64(h) * 0.5 / depth
	if px < 1 {
		return 1
	}
	return px
}
