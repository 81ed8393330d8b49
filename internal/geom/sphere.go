package geom

import (
	"math"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
)

// Sphere is a primitive defined by a center and a strictly positive radius.
type Sphere struct {
	Center prim.Vec3
	Radius float64
}

// epsGeometric is the tolerance used by both intersection routines in this
// package (sphere.go and triangle.go), matching the source's ray/sphere and ray/triangle epsilon (1e-12).
// It is deliberately a different constant from the 1e-4 surface-offset and
// shadow-identity epsilon used by the integrator (see render.EpsShading):
// conflating the two was a latent bug class in the program this package is
// ported from.
const epsGeometric = 1e-12

// Intersect implements the ray/sphere test. The returned normal is not
// normalized; callers normalize when they need a unit normal.
func (s Sphere) Intersect(ray Ray) (Intersection, bool) {
	co := ray.Origin.Sub(&s.Center)
	b := 2 * ray.Direction.Dot(co)
	c := co.Dot(co) - s.Radius*s.Radius
	discriminant := b*b - 4*c

	switch {
	case discriminant >= epsGeometric:
		sq := math.Sqrt(discriminant)
		t1 := (-b + sq) / 2
		t2 := (-b - sq) / 2
		switch {
		case t2 <= -epsGeometric && t1 > epsGeometric:
			// Origin is inside the sphere: inward-pointing normal.
			point := ray.At(t1)
			normal := point.Sub(&s.Center).Neg()
			return Intersection{Point: point, Normal: *normal, Distance: t1}, true
		case t2 > epsGeometric && t1 > epsGeometric:
			// Origin is outside the sphere: outward normal at the near root.
			point := ray.At(t2)
			normal := point.Sub(&s.Center)
			return Intersection{Point: point, Normal: *normal, Distance: t2}, true
		default:
			return Intersection{}, false
		}
	case discriminant > -epsGeometric:
		// Grazing hit.
		t := -b / 2
		if t <= epsGeometric {
			return Intersection{}, false
		}
		point := ray.At(t)
		normal := point.Sub(&s.Center)
		return Intersection{Point: point, Normal: *normal, Distance: t}, true
	default:
		return Intersection{}, false
	}
}
