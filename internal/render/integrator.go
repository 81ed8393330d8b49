package render

import (
	"math"

	"github.com/dt-raytrace/obj-raytracer/internal/geom"
	"github.com/dt-raytrace/obj-raytracer/internal/material"
	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/dt-raytrace/obj-raytracer/internal/sceneio"
)

// EpsShading is the surface-offset and shadow-identity tolerance used by
// the integrator (§4.8, §9). Deliberately distinct from geom's
// epsGeometric: conflating the two was a latent bug class in the source
// this package ports (see internal/geom/sphere.go's doc comment).
const EpsShading = 1e-4

// maxSafeDepth bounds recursion even if a caller passes an unreasonable
// maxDepth, per the §7 suggestion to cap at a safety limit.
const maxSafeDepth = 64

// Shade implements the recursive radiance integrator of §4.8. insideObject
// tracks whether the ray currently travels through the interior of a
// sphere; depth and maxDepth bound the recursion.
func Shade(scene *sceneio.Scene, ray geom.Ray, insideObject bool, depth, maxDepth int) prim.Vec3 {
	if depth > maxSafeDepth {
		return prim.Vec3{}
	}

	hit, ok := ClosestIntersection(scene, ray)
	if !ok {
		return prim.Vec3{}
	}

	mat := hit.Material
	n := hit.Intersection.Normal
	point := hit.Intersection.Point

	l := *mat.Ambient.Add(&mat.Emitted)

	for _, light := range scene.Lights {
		contribution := shadeLight(scene, light, point, n, ray.Direction, mat)
		l = *l.Add(&contribution)
	}

	if depth < maxDepth {
		recursive := recursiveContribution(scene, ray.Direction, point, n, mat, insideObject, hit.IsSphere, depth, maxDepth)
		l = *l.Add(&recursive)
	}

	return l
}

// shadeLight computes one light's diffuse and specular contribution at
// point, with a shadow-ray occlusion test (§4.8 steps 3a-3e).
func shadeLight(scene *sceneio.Scene, light sceneio.Light, point, n, rayDir prim.Vec3, mat material.Material) prim.Vec3 {
	toLight := light.Position.Sub(&point)
	vl := *toLight.Normalize()

	if shadowed(scene, light, point) {
		return prim.Vec3{}
	}

	diffuseWeight := math.Max(0, n.Dot(&vl))
	diffuse := *mat.Diffuse.Mul(&light.Intensity)
	diffuse = *diffuse.Scale(diffuseWeight * mat.Albedo.X)

	ve := *rayDir.Neg()
	negVl := *vl.Neg()
	vr := geom.Reflect(negVl, n)
	specWeight := math.Pow(math.Max(0, ve.Dot(&vr)), mat.SpecularExponent)
	specular := *mat.Specular.Mul(&light.Intensity)
	specular = *specular.Scale(specWeight * mat.Albedo.X)

	return *diffuse.Add(&specular)
}

// shadowed casts a ray from the light toward point and reports whether the
// point's own surface is not the nearest thing the light ray hits (§4.8
// step 3b). The comparison is a point-identity test within EpsShading per
// coordinate, replicating the source's assumption that the surface itself
// is always the intended hit when unoccluded.
func shadowed(scene *sceneio.Scene, light sceneio.Light, point prim.Vec3) bool {
	toPoint := point.Sub(&light.Position)
	dir := *toPoint.Normalize()
	shadowRay := geom.Ray{Origin: light.Position, Direction: dir}

	hit, ok := ClosestIntersection(scene, shadowRay)
	if !ok {
		return false
	}
	return !sameEps(hit.Intersection.Point, point, EpsShading)
}

func sameEps(a, b prim.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// recursiveContribution implements §4.8 step 4: the reflect/refract branch
// structure keyed on (insideObject, isSphere).
func recursiveContribution(scene *sceneio.Scene, rayDir, point, n prim.Vec3, mat material.Material, insideObject, isSphere bool, depth, maxDepth int) prim.Vec3 {
	offsetOut := *point.Add(n.Scale(EpsShading))
	offsetIn := *point.Sub(n.Scale(EpsShading))

	switch {
	case insideObject && isSphere:
		refracted, ok := geom.Refract(rayDir, n, mat.RefractionIndex/1.0)
		if !ok {
			return prim.Vec3{}
		}
		ray := geom.Ray{Origin: offsetIn, Direction: refracted}
		return Shade(scene, ray, false, depth+1, maxDepth)

	case !insideObject && isSphere:
		var total prim.Vec3

		reflected := geom.Reflect(rayDir, n)
		reflectRay := geom.Ray{Origin: offsetOut, Direction: reflected}
		reflectColor := Shade(scene, reflectRay, false, depth+1, maxDepth)
		reflectColor = *reflectColor.Scale(mat.Albedo.Y)
		total = *total.Add(&reflectColor)

		refracted, ok := geom.Refract(rayDir, n, 1.0/mat.RefractionIndex)
		if ok {
			refractRay := geom.Ray{Origin: offsetIn, Direction: refracted}
			refractColor := Shade(scene, refractRay, true, depth+1, maxDepth)
			refractColor = *refractColor.Scale(mat.Albedo.Z)
			total = *total.Add(&refractColor)
		}
		return total

	case !insideObject && !isSphere:
		var total prim.Vec3

		reflected := geom.Reflect(rayDir, n)
		reflectRay := geom.Ray{Origin: offsetOut, Direction: reflected}
		reflectColor := Shade(scene, reflectRay, false, depth+1, maxDepth)
		reflectColor = *reflectColor.Scale(mat.Albedo.Y)
		total = *total.Add(&reflectColor)

		refracted, ok := geom.Refract(rayDir, n, 1.0/mat.RefractionIndex)
		if ok {
			refractRay := geom.Ray{Origin: offsetIn, Direction: refracted}
			// Triangles have no interior: the refracted ray's inside flag
			// stays false (§4.8, §9).
			refractColor := Shade(scene, refractRay, false, depth+1, maxDepth)
			refractColor = *refractColor.Scale(mat.Albedo.Z)
			total = *total.Add(&refractColor)
		}
		return total

	default: // insideObject && !isSphere
		return prim.Vec3{}
	}
}
