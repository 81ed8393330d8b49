// Package raytracer provides a canned in-memory scene used by smoke tests
// and demos, in place of parsing a scene file from disk.
package raytracer

import (
	"image"

	"github.com/dt-raytrace/obj-raytracer/internal/geom"
	"github.com/dt-raytrace/obj-raytracer/internal/material"
	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/dt-raytrace/obj-raytracer/internal/render"
	"github.com/dt-raytrace/obj-raytracer/internal/sceneio"
)

// ExampleCannedScene builds a small scene -- a red diffuse sphere, a
// mirrored sphere, a glass sphere, a uniform gray ground plane made of
// two triangles, and a single point light -- and a matching camera for the
// given image dimensions.
func ExampleCannedScene(width, height int) (*sceneio.Scene, render.Camera) {
	red := material.New("red")
	red.Diffuse = prim.Vec3{X: 0.8, Y: 0.1, Z: 0.1}
	red.Ambient = prim.Vec3{X: 0.05, Y: 0.0, Z: 0.0}
	red.Albedo = prim.Vec3{X: 1, Y: 0, Z: 0}

	mirror := material.New("mirror")
	mirror.Specular = prim.Vec3{X: 0.9, Y: 0.9, Z: 0.9}
	mirror.SpecularExponent = 64
	mirror.Albedo = prim.Vec3{X: 0.2, Y: 0.8, Z: 0}

	glass := material.New("glass")
	glass.RefractionIndex = 1.5
	glass.Albedo = prim.Vec3{X: 0, Y: 0.1, Z: 0.9}

	ground := material.New("ground")
	ground.Diffuse = prim.Vec3{X: 0.6, Y: 0.6, Z: 0.6}
	ground.Ambient = prim.Vec3{X: 0.05, Y: 0.05, Z: 0.05}
	ground.Albedo = prim.Vec3{X: 1, Y: 0, Z: 0}

	groundA := prim.Vec3{X: -20, Y: -1, Z: -20}
	groundB := prim.Vec3{X: 20, Y: -1, Z: -20}
	groundC := prim.Vec3{X: 20, Y: -1, Z: 20}
	groundD := prim.Vec3{X: -20, Y: -1, Z: 20}

	scene := &sceneio.Scene{
		Spheres: []sceneio.SphereObject{
			{MaterialName: "red", Sphere: geom.Sphere{Center: prim.Vec3{X: -1.5, Y: 0, Z: -4}, Radius: 1}},
			{MaterialName: "mirror", Sphere: geom.Sphere{Center: prim.Vec3{X: 0.5, Y: 0, Z: -3}, Radius: 1}},
			{MaterialName: "glass", Sphere: geom.Sphere{Center: prim.Vec3{X: 2.5, Y: -0.3, Z: -2.5}, Radius: 0.7}},
		},
		Triangles: []sceneio.TriangleObject{
			{MaterialName: "ground", Triangle: geom.Triangle{A: groundA, B: groundB, C: groundC}},
			{MaterialName: "ground", Triangle: geom.Triangle{A: groundA, B: groundC, C: groundD}},
		},
		Lights: []sceneio.Light{
			{Position: prim.Vec3{X: 5, Y: 8, Z: 2}, Intensity: prim.Vec3{X: 1, Y: 1, Z: 1}},
		},
		Materials: material.Table{
			"red":    red,
			"mirror": mirror,
			"glass":  glass,
			"ground": ground,
		},
	}

	cam := render.NewCamera(
		prim.Vec3{X: 0, Y: 1, Z: 5},
		prim.Vec3{X: 0, Y: 0, Z: -3},
		prim.Vec3{X: 0, Y: 1, Z: 0},
		render.FallbackUp(),
		0.9,
		width, height,
	)

	return scene, cam
}

// Render renders the canned scene at width x height with full shading.
func Render(width, height int) *image.RGBA {
	scene, cam := ExampleCannedScene(width, height)
	return render.Render(scene, cam, render.ModeFull, 4)
}
