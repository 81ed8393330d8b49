package geom

import (
	"testing"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-6, 0.0)

func TestSphereIntersectFromOutside(t *testing.T) {
	// S1: unit sphere at origin, ray from (0,0,-5) toward +Z.
	sphere := Sphere{Center: prim.Vec3{}, Radius: 1}
	ray := Ray{Origin: prim.Vec3{X: 0, Y: 0, Z: -5}, Direction: prim.Vec3{X: 0, Y: 0, Z: 1}}

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if diff := cmp.Diff(hit.Distance, 4.0, approxOpts); diff != "" {
		t.Errorf("Distance mismatch (-got +want):\n%s", diff)
	}
	wantPoint := prim.Vec3{X: 0, Y: 0, Z: -1}
	if diff := cmp.Diff(hit.Point, wantPoint, approxOpts); diff != "" {
		t.Errorf("Point mismatch (-got +want):\n%s", diff)
	}
	normal := hit.Normal
	normalized := normal.Normalize()
	wantNormal := prim.Vec3{X: 0, Y: 0, Z: -1}
	if diff := cmp.Diff(*normalized, wantNormal, approxOpts); diff != "" {
		t.Errorf("Normal mismatch (-got +want):\n%s", diff)
	}
}

func TestSphereIntersectFromInside(t *testing.T) {
	// S2: ray origin at center, traveling to the surface.
	sphere := Sphere{Center: prim.Vec3{}, Radius: 1}
	ray := Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: 1}}

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if diff := cmp.Diff(hit.Distance, 1.0, approxOpts); diff != "" {
		t.Errorf("Distance mismatch (-got +want):\n%s", diff)
	}
	wantPoint := prim.Vec3{X: 0, Y: 0, Z: 1}
	if diff := cmp.Diff(hit.Point, wantPoint, approxOpts); diff != "" {
		t.Errorf("Point mismatch (-got +want):\n%s", diff)
	}
	wantNormal := prim.Vec3{X: 0, Y: 0, Z: -1}
	if diff := cmp.Diff(hit.Normal, wantNormal, approxOpts); diff != "" {
		t.Errorf("Normal (inward) mismatch (-got +want):\n%s", diff)
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -5}, Radius: 1}
	ray := Ray{Origin: prim.Vec3{X: 10, Y: 10, Z: 0}, Direction: prim.Vec3{X: 0, Y: 0, Z: 1}}
	if _, ok := sphere.Intersect(ray); ok {
		t.Error("expected no hit")
	}
}

func TestSphereOutwardNormalCollinearWithPointMinusCenter(t *testing.T) {
	sphere := Sphere{Center: prim.Vec3{X: 1, Y: 2, Z: 3}, Radius: 2.5}
	ray := Ray{Origin: prim.Vec3{X: 1, Y: 2, Z: -10}, Direction: prim.Vec3{X: 0, Y: 0, Z: 1}}
	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	pointMinusCenter := hit.Point.Sub(&sphere.Center)
	if got := hit.Normal.Dot(pointMinusCenter); got <= 0 {
		t.Errorf("normal . (P-C) = %v, want > 0 (collinear, same direction)", got)
	}
	if hit.Distance <= 1e-12 {
		t.Errorf("Distance = %v, want > eps", hit.Distance)
	}
}
