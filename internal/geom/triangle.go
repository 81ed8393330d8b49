package geom

import "github.com/dt-raytrace/obj-raytracer/internal/prim"

// Triangle is an ordered triple of vertices.
type Triangle struct {
	A, B, C prim.Vec3
}

// Area returns 1/2 * |(B-A) x (C-A)|.
func (t Triangle) Area() float64 {
	e1 := t.B.Sub(&t.A)
	e2 := t.C.Sub(&t.A)
	return e1.Cross(e2).Length() / 2
}

// Intersect implements the Moller-Trumbore ray/triangle test. The geometric
// normal is e1 x e2, flipped to face the incoming ray if necessary; it is
// the *face* normal, which callers replace with an interpolated per-vertex
// normal when one is available (see the scene-traversal code in
// internal/render). The returned normal is not normalized.
func (t Triangle) Intersect(ray Ray) (Intersection, bool) {
	e1 := t.B.Sub(&t.A)
	e2 := t.C.Sub(&t.A)
	h := ray.Direction.Cross(e2)
	a := e1.Dot(h)
	if a > -epsGeometric && a < epsGeometric {
		// Ray is parallel to the triangle's plane.
		return Intersection{}, false
	}

	s := ray.Origin.Sub(&t.A)
	u := s.Dot(h) / a
	if u < -epsGeometric || u > 1.0+epsGeometric {
		return Intersection{}, false
	}

	q := s.Cross(e1)
	v := ray.Direction.Dot(q) / a
	if v < -epsGeometric || u+v > 1.0+epsGeometric {
		return Intersection{}, false
	}

	dist := e2.Dot(q) / a
	if dist <= epsGeometric {
		return Intersection{}, false
	}

	point := ray.At(dist)
	normal := e1.Cross(e2)
	if normal.Dot(&ray.Direction) > 0 {
		normal = normal.Neg()
	}
	return Intersection{Point: point, Normal: *normal, Distance: dist}, true
}
