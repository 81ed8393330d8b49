package geom

import "github.com/dt-raytrace/obj-raytracer/internal/prim"

// Barycentric returns the weights (wA, wB, wC) of point with respect to
// Triangle t, assuming point lies on the triangle's plane. Weights sum to 1.
func (t Triangle) Barycentric(point prim.Vec3) prim.Vec3 {
	area := t.Area()
	e1 := t.B.Sub(&t.A)
	e2 := t.C.Sub(&t.A)
	p := point.Sub(&t.A)

	v := e1.Cross(p).Length() / (2 * area)
	u := e2.Cross(p).Length() / (2 * area)
	return prim.Vec3{X: 1 - u - v, Y: u, Z: v}
}
