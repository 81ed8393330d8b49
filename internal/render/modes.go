package render

import (
	"image"
	"image/color"
	"math"

	"github.com/dt-raytrace/obj-raytracer/internal/sceneio"
)

// Mode selects a render mode (§4.9).
type Mode string

const (
	ModeDepth  Mode = "depth"
	ModeNormal Mode = "normal"
	ModeFull   Mode = "full"
)

// Render dispatches to the requested mode's postprocessing pipeline and
// returns an 8-bit RGB image. maxDepth is only meaningful for ModeFull.
func Render(scene *sceneio.Scene, cam Camera, mode Mode, maxDepth int) *image.RGBA {
	switch mode {
	case ModeDepth:
		return renderDepth(scene, cam)
	case ModeNormal:
		return renderNormal(scene, cam)
	default:
		return renderFull(scene, cam, maxDepth)
	}
}

// renderDepth implements the Depth mode of §4.9: miss pixels are white;
// hit pixels are grayscale floor(d/D_max*256) clamped to 255.
func renderDepth(scene *sceneio.Scene, cam Camera) *image.RGBA {
	fb := NewFrameBuffer(cam.Width, cam.Height)

	renderRows(cam.Height, func(i int) {
		for j := 0; j < cam.Width; j++ {
			ray := cam.RayThrough(j, i)
			hit, ok := ClosestIntersection(scene, ray)
			if !ok {
				continue
			}
			d := hit.Intersection.Distance
			fb.Set(j, i, d, d, d)
		}
	})

	dMax := fb.MaxChannel()
	img := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))
	for i := 0; i < cam.Height; i++ {
		for j := 0; j < cam.Width; j++ {
			p := fb.at(j, i)
			if !p.hit || dMax == 0 {
				img.SetRGBA(j, i, color.RGBA{R: 255, G: 255, B: 255, A: 255})
				continue
			}
			v := quantize255(p.r / dMax)
			img.SetRGBA(j, i, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// renderNormal implements the Normal mode of §4.9. Each channel is
// independent of any global reduction, so no two-pass buffer is needed.
func renderNormal(scene *sceneio.Scene, cam Camera) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))

	renderRows(cam.Height, func(i int) {
		for j := 0; j < cam.Width; j++ {
			ray := cam.RayThrough(j, i)
			hit, ok := ClosestIntersection(scene, ray)
			if !ok {
				img.SetRGBA(j, i, color.RGBA{A: 255})
				continue
			}
			n := hit.Intersection.Normal
			img.SetRGBA(j, i, color.RGBA{
				R: quantize255(n.X/2 + 0.5),
				G: quantize255(n.Y/2 + 0.5),
				B: quantize255(n.Z/2 + 0.5),
				A: 255,
			})
		}
	})

	return img
}

// renderFull implements the Full mode of §4.9: radiance via Shade, a
// C_max reduction, then the tone operator, gamma correction, and
// quantization.
func renderFull(scene *sceneio.Scene, cam Camera, maxDepth int) *image.RGBA {
	fb := NewFrameBuffer(cam.Width, cam.Height)

	renderRows(cam.Height, func(i int) {
		for j := 0; j < cam.Width; j++ {
			ray := cam.RayThrough(j, i)
			l := Shade(scene, ray, false, 0, maxDepth)
			fb.Set(j, i, l.X, l.Y, l.Z)
		}
	})

	cMax := fb.MaxChannel()
	if cMax == 0 {
		return image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))
	}

	toneAndQuantize := func(x float64) uint8 {
		y := x * (1 + x/(cMax*cMax)) / (1 + x)
		y = math.Pow(y, 1/2.2)
		return quantize255(y)
	}

	return fb.ToRGBA(toneAndQuantize, color.RGBA{A: 255})
}
