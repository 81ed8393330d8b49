package geom

import (
	"math"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
)

// Reflect mirror-reflects I around unit normal N. I is used both as an
// incident ray direction (pointing into the surface) and, for specular
// shading, as a light direction pointing away from the surface — both
// usages are valid inputs here.
func Reflect(i, n prim.Vec3) prim.Vec3 {
	perp := n.Scale(-n.Dot(&i))
	toAdd := i.Add(perp)
	return *perp.Add(toAdd)
}

// Refract computes the direction refracted through a surface with unit
// normal N, where eta = n_from / n_to is the ratio of refractive indices.
// The second return is false when Snell's law has no real solution (total
// internal reflection), in which case the Vec3 is the zero value.
func Refract(i, n prim.Vec3, eta float64) (prim.Vec3, bool) {
	perp := n.Scale(-n.Dot(&i))
	tPerp := i.Add(perp)
	sinTheta1 := tPerp.Length()
	sinTheta2 := eta * sinTheta1
	if sinTheta2 > 1 {
		return prim.Vec3{}, false
	}
	cosTheta2 := math.Sqrt(1 - sinTheta2*sinTheta2)
	scaled := tPerp.Scale(eta)
	offset := n.Scale(cosTheta2)
	return *scaled.Sub(offset), true
}
