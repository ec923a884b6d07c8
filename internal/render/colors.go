package render

import "github.com/lucasb-eyer/go-colorful"

// fillVertexColors writes clamped RGB components into buf, three per color.
func fillVertexColors(buf []float32, colors []colorful.Color) {
	for i, c := range colors {
		c = c.Clamped()
		base := i * 3
		buf[base+0] = float32(c.R)
		buf[base+1] = float32(c.G)
		buf[base+2] = float32(c.B)
	}
}
