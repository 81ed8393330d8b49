// Package render implements the camera, scene traversal, radiance
// integrator, and render-mode postprocessing that make up the core
// rendering pipeline (§4.6-4.9).
package render

import (
	"math"

	"github.com/dt-raytrace/obj-raytracer/internal/geom"
	"github.com/dt-raytrace/obj-raytracer/internal/prim"
)

// Camera holds a look-at basis and the parameters needed to convert a pixel
// coordinate into a world-space primary ray.
type Camera struct {
	From   prim.Vec3
	Right  prim.Vec3
	Up     prim.Vec3
	Forward prim.Vec3

	FOV           float64 // vertical, radians
	Width, Height int
}

// collinearEps is the tolerance against which |up.forward| is compared to 1
// to detect the degenerate look-at case (§4.6).
const collinearEps = 1e-6

// NewCamera builds the look-at basis [right; up; forward] for a camera at
// from looking toward to, with world-up up and a fallbackUp used only when
// up is (near-)collinear with the forward axis. Callers pick fallbackUp;
// this repo does not hard-code the source's `look_from == (0,2,0)` branch
// (spec §9 flags that branch as a wart to drop).
func NewCamera(from, to, up, fallbackUp prim.Vec3, fov float64, width, height int) Camera {
	forward := *from.Sub(&to).Normalize()

	var right prim.Vec3
	if math.Abs(up.Dot(&forward)) > 1-collinearEps {
		right = *fallbackUp.Cross(&forward)
	} else {
		right = *up.Cross(&forward)
	}
	right = *right.Normalize()

	newUp := *forward.Cross(&right)

	return Camera{
		From:    from,
		Right:   right,
		Up:      newUp,
		Forward: forward,
		FOV:     fov,
		Width:   width,
		Height:  height,
	}
}

// RayThrough returns the primary ray for pixel (j, i): column j in [0,
// Width), row i in [0, Height).
func (c Camera) RayThrough(j, i int) geom.Ray {
	aspect := float64(c.Width) / float64(c.Height)
	halfFOV := math.Tan(c.FOV / 2)

	x := (2*(float64(j)+0.5)/float64(c.Width) - 1) * aspect * halfFOV
	y := (1 - 2*(float64(i)+0.5)/float64(c.Height)) * halfFOV

	dir := prim.Vec3{
		X: x*c.Right.X + y*c.Up.X + (-1)*c.Forward.X,
		Y: x*c.Right.Y + y*c.Up.Y + (-1)*c.Forward.Y,
		Z: x*c.Right.Z + y*c.Up.Z + (-1)*c.Forward.Z,
	}
	dir = *dir.Normalize()

	return geom.Ray{Origin: c.From, Direction: dir}
}

// FallbackUp returns the degenerate-case up vector used when the scene's
// requested up is collinear with the camera's forward axis. The source
// hard-codes this to a single special-cased look_from; this port keeps only
// the general fallback, per spec §9.
func FallbackUp() prim.Vec3 {
	return prim.Vec3{X: 0, Y: 0, Z: 1}
}
