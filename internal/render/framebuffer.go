package render

import (
	"image"
	"image/color"
)

// FrameBuffer is a real-valued, per-pixel RGB accumulator, the one sizeable
// allocation Full mode needs before quantization (§5).
type FrameBuffer struct {
	Width, Height int
	pixels        []pixel
}

type pixel struct {
	r, g, b float64
	hit     bool
}

// NewFrameBuffer allocates a width x height buffer, all pixels initially
// marked as misses.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{Width: width, Height: height, pixels: make([]pixel, width*height)}
}

// Set records a hit pixel's real-valued color.
func (f *FrameBuffer) Set(j, i int, r, g, b float64) {
	f.pixels[i*f.Width+j] = pixel{r: r, g: g, b: b, hit: true}
}

func (f *FrameBuffer) at(j, i int) pixel {
	return f.pixels[i*f.Width+j]
}

// MaxChannel returns the largest channel value over every hit pixel (the
// C_max / D_max reduction of §4.9), or 0 if no pixel was ever hit.
func (f *FrameBuffer) MaxChannel() float64 {
	max := 0.0
	for _, p := range f.pixels {
		if !p.hit {
			continue
		}
		for _, c := range [3]float64{p.r, p.g, p.b} {
			if c > max {
				max = c
			}
		}
	}
	return max
}

// ToRGBA quantizes the buffer into an 8-bit image using quantize for every
// channel of every hit pixel; miss pixels get missColor.
func (f *FrameBuffer) ToRGBA(quantize func(x float64) uint8, missColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i := 0; i < f.Height; i++ {
		for j := 0; j < f.Width; j++ {
			p := f.at(j, i)
			if !p.hit {
				img.SetRGBA(j, i, missColor)
				continue
			}
			img.SetRGBA(j, i, color.RGBA{
				R: quantize(p.r),
				G: quantize(p.g),
				B: quantize(p.b),
				A: 255,
			})
		}
	}
	return img
}

// quantize255 implements the spec's floor(x*256) clamped to 255
// quantization (§4.9): intentional, and not a rounding bug.
func quantize255(x float64) uint8 {
	v := int(x * 256)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
