// Package sceneio implements the scene data model (§3) and parses the
// OBJ-like scene grammar and its companion MTL material library (§6.1,
// §6.2).
package sceneio

import (
	"github.com/dt-raytrace/obj-raytracer/internal/geom"
	"github.com/dt-raytrace/obj-raytracer/internal/material"
	"github.com/dt-raytrace/obj-raytracer/internal/prim"
)

// TriangleObject is a triangle bound to a material, with an optional
// per-vertex normal triple in the same index order as the triangle's
// vertices.
type TriangleObject struct {
	MaterialName string
	Triangle     geom.Triangle
	Normals      *[3]prim.Vec3 // nil when the face declared no normals
}

// SphereObject is a sphere bound to a material.
type SphereObject struct {
	MaterialName string
	Sphere       geom.Sphere
}

// Light is a point light: a position and a per-channel intensity.
type Light struct {
	Position  prim.Vec3
	Intensity prim.Vec3
}

// Scene is the ordered collection of geometry, lights, and materials a
// parsed scene file produces (§3). Materials are created once by the
// parser and never mutated afterward; objects and lights reference them
// by the material's name, not by pointer (see spec §9 and
// material.Table's doc comment).
type Scene struct {
	Triangles []TriangleObject
	Spheres   []SphereObject
	Lights    []Light
	Materials material.Table
}

// Material resolves obj.MaterialName against the scene's material table.
// ok is false if the reference does not resolve (invariant (i) of spec §3
// being violated is a parser bug, not a legal Scene -- this accessor exists
// so callers in internal/render never need a nil check on a raw pointer).
func (s *Scene) Material(name string) (material.Material, bool) {
	m, ok := s.Materials[name]
	return m, ok
}
