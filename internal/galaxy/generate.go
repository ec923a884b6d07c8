package galaxy

import (
	"math"

	"galaxy/internal/core"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Source yields uniform values in [0, 1). *rand.Rand and *core.RNG satisfy it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source.
func NewSource(seed int64) Source {
	return core.NewRNG(seed)
}

// jitterScale is applied after the power curve; the sign flips when the
// second draw is >= 0.5.
const jitterScale = 0.8

// Generate places p.Count points on p.Branches spiral arms. Points are
// assigned to branches round-robin by index. Draws from src happen in a fixed
// order per point (radius, then value and sign for x, y and z) so a seeded
// source reproduces the cloud exactly.
func Generate(p Parameters, src Source) (*PointCloud, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cloud := &PointCloud{
		Positions: make([]mgl64.Vec3, p.Count),
		Colors:    make([]colorful.Color, p.Count),
	}
	for i := 0; i < p.Count; i++ {
		r := src.Float64() * p.Radius
		spinAngle := p.Spin * r
		branchAngle := BranchAngle(i, p.Branches)

		jx := signedPowerRandom(src, p.RandomnessPower, p.Randomness) * r
		jy := signedPowerRandom(src, p.RandomnessPower, p.Randomness) * r
		jz := signedPowerRandom(src, p.RandomnessPower, p.Randomness) * r

		angle := branchAngle + spinAngle
		cloud.Positions[i] = mgl64.Vec3{
			math.Cos(angle)*r + jx,
			jy,
			math.Sin(angle)*r + jz,
		}
		// Mixed on the sRGB components as parsed from hex.
		cloud.Colors[i] = p.InsideColor.BlendRgb(p.OutsideColor, r/p.Radius)
	}
	return cloud, nil
}

// BranchAngle returns the base angle of the arm point i belongs to.
func BranchAngle(i, branches int) float64 {
	return float64(i%branches) / float64(branches) * 2 * math.Pi
}

func signedPowerRandom(src Source, pow int, control float64) float64 {
	x := src.Float64()
	sign := jitterScale
	if src.Float64() >= 0.5 {
		sign = -jitterScale
	}
	return math.Pow(x, float64(pow)) * control * sign
}
