package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidParameter is wrapped by every validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameters holds the tunables for one generation call. It is a value type:
// callers copy and modify it rather than sharing a mutable instance.
type Parameters struct {
	Count           int
	Size            float64
	Radius          float64
	Branches        int
	Spin            float64
	Randomness      float64
	RandomnessPower int

	InsideColor  colorful.Color
	OutsideColor colorful.Color
}

// DefaultParameters returns the standard galaxy.
func DefaultParameters() Parameters {
	return Parameters{
		Count:           32320,
		Size:            0.02,
		Radius:          6,
		Branches:        3,
		Spin:            1.266,
		Randomness:      0.21,
		RandomnessPower: 4,
		InsideColor:     mustHex("#4d7bf2"),
		OutsideColor:    mustHex("#bf6330"),
	}
}

// Validate reports the first constraint the parameters violate. The returned
// error wraps ErrInvalidParameter.
func (p Parameters) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"size", p.Size},
		{"radius", p.Radius},
		{"spin", p.Spin},
		{"randomness", p.Randomness},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParameter, f.name, f.v)
		}
	}
	switch {
	case p.Count < 0:
		return fmt.Errorf("%w: count %d must not be negative", ErrInvalidParameter, p.Count)
	case p.Size < 0:
		return fmt.Errorf("%w: size %v must not be negative", ErrInvalidParameter, p.Size)
	case p.Radius <= 0:
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidParameter, p.Radius)
	case p.Branches < 1:
		return fmt.Errorf("%w: branches %d must be at least 1", ErrInvalidParameter, p.Branches)
	case p.Randomness < 0:
		return fmt.Errorf("%w: randomness %v must not be negative", ErrInvalidParameter, p.Randomness)
	case p.RandomnessPower < 1:
		return fmt.Errorf("%w: randomness power %d must be at least 1", ErrInvalidParameter, p.RandomnessPower)
	case !p.InsideColor.IsValid():
		return fmt.Errorf("%w: inside color out of range", ErrInvalidParameter)
	case !p.OutsideColor.IsValid():
		return fmt.Errorf("%w: outside color out of range", ErrInvalidParameter)
	}
	return nil
}

// Style returns the rendering parameters that accompany a cloud generated
// from p.
func (p Parameters) Style() Style {
	return Style{
		Size:         p.Size,
		Additive:     true,
		DepthWrite:   false,
		VertexColors: true,
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
