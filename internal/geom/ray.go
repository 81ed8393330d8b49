// Package geom implements ray-primitive intersection and the shading
// helpers built on top of it: mirror reflection, Snell refraction,
// barycentric coordinates.
package geom

import "github.com/dt-raytrace/obj-raytracer/internal/prim"

// Ray is a half-line with an origin and a direction. Direction is assumed
// unit-length at construction time; nothing in this package re-normalizes
// it.
type Ray struct {
	Origin    prim.Vec3
	Direction prim.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) prim.Vec3 {
	return *r.Origin.Add(r.Direction.Scale(t))
}

// Intersection is a hit record: position, outward-facing normal (direction
// conventions are fixed per primitive, see sphere.go/triangle.go), and the
// parametric distance along the ray. Distance is always strictly positive.
type Intersection struct {
	Point    prim.Vec3
	Normal   prim.Vec3
	Distance float64
}
