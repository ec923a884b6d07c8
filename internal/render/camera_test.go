package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOrbitCameraStartsAtEye(t *testing.T) {
	eye := mgl64.Vec3{0, 4, 8}
	c := NewOrbitCamera(eye)
	if !c.Eye().ApproxEqualThreshold(eye, 1e-9) {
		t.Fatalf("eye = %v, want %v", c.Eye(), eye)
	}
	if math.Abs(c.Distance-math.Sqrt(80)) > 1e-9 {
		t.Fatalf("distance = %v", c.Distance)
	}
}

func TestOrbitCameraDampedUpdate(t *testing.T) {
	c := NewOrbitCamera(mgl64.Vec3{0, 0, 5})
	c.Orbit(1, 0)
	c.Update()
	if math.Abs(c.Yaw-0.05) > 1e-12 {
		t.Fatalf("first update yaw = %v, want 0.05", c.Yaw)
	}
	for i := 0; i < 2000; i++ {
		c.Update()
	}
	if math.Abs(c.Yaw-1) > 1e-6 {
		t.Fatalf("yaw should converge to 1, got %v", c.Yaw)
	}
}

func TestOrbitCameraPitchAndDistanceClamped(t *testing.T) {
	c := NewOrbitCamera(mgl64.Vec3{0, 0, 5})
	c.Damping = 1
	c.Orbit(0, 10)
	c.Dolly(1000)
	c.Update()
	if c.Pitch > math.Pi/2 {
		t.Fatalf("pitch %v exceeds vertical", c.Pitch)
	}
	if c.Distance != c.MaxDistance {
		t.Fatalf("distance %v, want clamp at %v", c.Distance, c.MaxDistance)
	}
}

func TestProjectCenterAndBehind(t *testing.T) {
	c := NewOrbitCamera(mgl64.Vec3{0, 0, 5})
	vp := c.ViewProjection(1)
	sx, sy, depth, ok := Project(vp, mgl64.Vec3{}, 200, 100)
	if !ok {
		t.Fatal("target must be visible")
	}
	if math.Abs(sx-100) > 1e-9 || math.Abs(sy-50) > 1e-9 {
		t.Fatalf("target projected to (%v, %v)", sx, sy)
	}
	if math.Abs(depth-5) > 1e-9 {
		t.Fatalf("depth = %v, want 5", depth)
	}
	if _, _, _, ok := Project(vp, mgl64.Vec3{0, 0, 10}, 200, 100); ok {
		t.Fatal("point behind the camera must be culled")
	}
}

func TestProjectUpIsUp(t *testing.T) {
	c := NewOrbitCamera(mgl64.Vec3{0, 0, 5})
	vp := c.ViewProjection(1)
	_, sy, _, ok := Project(vp, mgl64.Vec3{0, 1, 0}, 100, 100)
	if !ok || sy >= 50 {
		t.Fatalf("point above target should be drawn above centre, sy=%v ok=%v", sy, ok)
	}
}

func TestPointSizeAttenuation(t *testing.T) {
	if got := PointSize(0.02, 1, 1000); math.Abs(got-10) > 1e-9 {
		t.Fatalf("size = %v, want 10", got)
	}
	if got := PointSize(0.02, 100, 1000); got != 1 {
		t.Fatalf("far points clamp to one pixel, got %v", got)
	}
	if got := PointSize(0.02, 0, 1000); got != 1 {
		t.Fatalf("degenerate depth, got %v", got)
	}
}
