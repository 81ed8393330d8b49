// Package material implements the material data model (§3) and the MTL
// material-library grammar (§6.2).
package material

import "github.com/dt-raytrace/obj-raytracer/internal/prim"

// Material holds the shading coefficients of a surface. Defaults, applied
// before any MTL token is seen, are the zero vector for every color,
// SpecularExponent=1, RefractionIndex=1, and Albedo=(1,0,0) (fully diffuse).
type Material struct {
	Name string

	Ambient  prim.Vec3 // Ka
	Diffuse  prim.Vec3 // Kd
	Specular prim.Vec3 // Ks
	Emitted  prim.Vec3 // Ke

	SpecularExponent float64 // Ns, >= 1
	RefractionIndex  float64 // Ni, >= 1

	// Albedo is (diffuse, reflect, refract) weighting for the integrator.
	Albedo prim.Vec3
}

// New returns a Material with the §3 defaults and the given name.
func New(name string) Material {
	return Material{
		Name:             name,
		SpecularExponent: 1,
		RefractionIndex:  1,
		Albedo:           prim.Vec3{X: 1, Y: 0, Z: 0},
	}
}

// Table is an immutable material table keyed by material name, built once by
// the parser and never mutated afterward. Objects reference entries by name
// rather than by pointer, so a concurrent map rehash (unsafe in the source
// this is ported from, see spec §9) can never invalidate a reference.
type Table map[string]Material
