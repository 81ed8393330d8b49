package render

import (
	"math"
	"testing"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-9, 0.0)

func TestLookAtBasisIsOrthonormal(t *testing.T) {
	from := prim.Vec3{X: 0, Y: 1, Z: 5}
	to := prim.Vec3{X: 0, Y: 0, Z: 0}
	up := prim.Vec3{X: 0, Y: 1, Z: 0}

	cam := NewCamera(from, to, up, FallbackUp(), math.Pi/3, 200, 100)

	if got, want := cam.Forward.Dot(&cam.Right), 0.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("forward.right = %v, want 0", got)
	}
	if got, want := cam.Forward.Dot(&cam.Up), 0.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("forward.up = %v, want 0", got)
	}
	if got, want := cam.Right.Dot(&cam.Up), 0.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("right.up = %v, want 0", got)
	}
	for _, v := range []prim.Vec3{cam.Right, cam.Up, cam.Forward} {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("basis vector %v is not unit length", v)
		}
	}

	wantForward := *from.Sub(&to).Normalize()
	if diff := cmp.Diff(cam.Forward, wantForward, approxOpts); diff != "" {
		t.Errorf("forward mismatch (-got +want):\n%s", diff)
	}
}

func TestLookAtUsesFallbackUpWhenCollinear(t *testing.T) {
	from := prim.Vec3{X: 0, Y: 5, Z: 0}
	to := prim.Vec3{X: 0, Y: 0, Z: 0}
	up := prim.Vec3{X: 0, Y: 1, Z: 0} // collinear with forward

	cam := NewCamera(from, to, up, FallbackUp(), math.Pi/3, 100, 100)

	if math.IsNaN(cam.Right.X) || cam.Right.IsZero() {
		t.Fatalf("degenerate basis: right = %v", cam.Right)
	}
	if got, want := cam.Forward.Dot(&cam.Right), 0.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("forward.right = %v, want 0", got)
	}
}

func TestRayThroughCenterPixelPointsForward(t *testing.T) {
	from := prim.Vec3{X: 0, Y: 0, Z: 5}
	to := prim.Vec3{X: 0, Y: 0, Z: 0}
	cam := NewCamera(from, to, prim.Vec3{X: 0, Y: 1, Z: 0}, FallbackUp(), math.Pi/2, 100, 100)

	ray := cam.RayThrough(49, 49)
	negForward := *cam.Forward.Neg()
	if diff := cmp.Diff(ray.Direction, negForward, cmpopts.EquateApprox(0.0, 1e-2)); diff != "" {
		t.Errorf("center-pixel ray direction mismatch (-got +want):\n%s", diff)
	}
}
