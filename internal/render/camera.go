package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitCamera circles a target point. Input accumulates into pending deltas
// that Update applies a fraction of each frame, giving the damped feel of an
// orbit control.
type OrbitCamera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64 // around +Y, 0 looks down -Z
	Pitch    float64 // elevation above the XZ plane

	FovY float64 // degrees
	Near float64
	Far  float64

	Damping     float64
	MinDistance float64
	MaxDistance float64

	dYaw, dPitch, dScale float64
}

const maxPitch = math.Pi/2 - 1e-3

// NewOrbitCamera places the camera at eye looking at the origin.
func NewOrbitCamera(eye mgl64.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		FovY:        75,
		Near:        0.05,
		Far:         100,
		Damping:     0.05,
		MinDistance: 0.5,
		MaxDistance: 60,
		dScale:      1,
	}
	c.LookFrom(eye)
	return c
}

// LookFrom repositions the camera at eye, keeping the target.
func (c *OrbitCamera) LookFrom(eye mgl64.Vec3) {
	off := eye.Sub(c.Target)
	c.Distance = off.Len()
	if c.Distance == 0 {
		c.Distance = 1
	}
	c.Yaw = math.Atan2(off.X(), off.Z())
	c.Pitch = math.Asin(off.Y() / c.Distance)
	c.dYaw, c.dPitch, c.dScale = 0, 0, 1
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Target.Add(mgl64.Vec3{
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Cos(c.Yaw),
	})
}

// Orbit queues a rotation in radians.
func (c *OrbitCamera) Orbit(dYaw, dPitch float64) {
	c.dYaw += dYaw
	c.dPitch += dPitch
}

// Dolly queues a distance change; factors below 1 move closer.
func (c *OrbitCamera) Dolly(factor float64) {
	if factor > 0 {
		c.dScale *= factor
	}
}

// Update applies the damped share of the pending motion.
func (c *OrbitCamera) Update() {
	k := c.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	c.Yaw += c.dYaw * k
	c.Pitch = mgl64.Clamp(c.Pitch+c.dPitch*k, -maxPitch, maxPitch)
	c.dYaw *= 1 - k
	c.dPitch *= 1 - k

	step := math.Pow(c.dScale, k)
	c.Distance = mgl64.Clamp(c.Distance*step, c.MinDistance, c.MaxDistance)
	c.dScale /= step
}

// ViewProjection returns the combined projection*view matrix.
func (c *OrbitCamera) ViewProjection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}
