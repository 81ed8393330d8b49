package render

import (
	"github.com/dt-raytrace/obj-raytracer/internal/geom"
	"github.com/dt-raytrace/obj-raytracer/internal/material"
	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/dt-raytrace/obj-raytracer/internal/sceneio"
)

// Hit is the result of a closest-intersection scan: the intersection
// record (with its normal already normalized, and, for a triangle object
// carrying per-vertex normals, replaced by the smooth interpolated normal),
// the material it hit, and whether the hit primitive was a sphere.
type Hit struct {
	Intersection geom.Intersection
	Material     material.Material
	IsSphere     bool
}

// ClosestIntersection scans every triangle object then every sphere object
// in scene order, keeping the smallest positive distance. Ties (equal
// distance) keep the first-seen hit (§4.7).
func ClosestIntersection(scene *sceneio.Scene, ray geom.Ray) (Hit, bool) {
	var best Hit
	found := false
	bestDist := 0.0

	for _, obj := range scene.Triangles {
		hit, ok := obj.Triangle.Intersect(ray)
		if !ok {
			continue
		}
		if found && hit.Distance >= bestDist {
			continue
		}
		if obj.Normals != nil {
			hit.Normal = smoothNormal(obj, hit.Point, ray.Direction)
		}
		hit.Normal = *hit.Normal.Normalize()
		m, ok := scene.Material(obj.MaterialName)
		if !ok {
			continue
		}
		best = Hit{Intersection: hit, Material: m, IsSphere: false}
		bestDist = hit.Distance
		found = true
	}

	for _, obj := range scene.Spheres {
		hit, ok := obj.Sphere.Intersect(ray)
		if !ok {
			continue
		}
		if found && hit.Distance >= bestDist {
			continue
		}
		hit.Normal = *hit.Normal.Normalize()
		m, ok := scene.Material(obj.MaterialName)
		if !ok {
			continue
		}
		best = Hit{Intersection: hit, Material: m, IsSphere: true}
		bestDist = hit.Distance
		found = true
	}

	return best, found
}

// smoothNormal interpolates obj's three per-vertex normals at point using
// barycentric weights, flipping the result to face dir if necessary (§4.7).
func smoothNormal(obj sceneio.TriangleObject, point, dir prim.Vec3) prim.Vec3 {
	w := obj.Triangle.Barycentric(point)
	na, nb, nc := obj.Normals[0], obj.Normals[1], obj.Normals[2]

	n := na.Scale(w.X)
	nb2 := nb.Scale(w.Y)
	nc2 := nc.Scale(w.Z)
	n = n.Add(nb2)
	n = n.Add(nc2)

	if n.Dot(&dir) > 0 {
		n = n.Neg()
	}
	return *n
}
