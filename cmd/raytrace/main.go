// The raytrace command renders a scene file to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/dt-raytrace/obj-raytracer/internal/render"
	"github.com/dt-raytrace/obj-raytracer/internal/sceneio"
)

var (
	scenePath = flag.String("scene", "", "path to the .obj scene file to render")
	mode      = flag.String("mode", "full", "render mode: depth, normal, or full")
	depth     = flag.Int("depth", 4, "maximum recursion depth (full mode only)")
	lookFrom  = flag.String("look_from", "0,0,5", "camera position, as x,y,z")
	lookTo    = flag.String("look_to", "0,0,0", "camera look-at target, as x,y,z")
	fov       = flag.Float64("fov", 60, "vertical field of view, in degrees")
	width     = flag.Int("width", 800, "output image width in pixels")
	height    = flag.Int("height", 600, "output image height in pixels")
	outPath   = flag.String("out", "", "path to write the rendered PNG")
)

func parseVec3Flag(s string) (prim.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return prim.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return prim.Vec3{}, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = f
	}
	return prim.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseMode(s string) (render.Mode, error) {
	switch s {
	case "depth":
		return render.ModeDepth, nil
	case "normal":
		return render.ModeNormal, nil
	case "full":
		return render.ModeFull, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want depth, normal, or full)", s)
	}
}

func main() {
	flag.Parse()

	if *scenePath == "" {
		log.Fatal("--scene is required")
	}
	if *outPath == "" {
		log.Fatal("--out is required")
	}

	scene, err := sceneio.ParseFile(*scenePath)
	if err != nil {
		log.Fatalf("parsing scene: %v", err)
	}

	from, err := parseVec3Flag(*lookFrom)
	if err != nil {
		log.Fatalf("--look_from: %v", err)
	}
	to, err := parseVec3Flag(*lookTo)
	if err != nil {
		log.Fatalf("--look_to: %v", err)
	}
	renderMode, err := parseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	cam := render.NewCamera(
		from, to,
		prim.Vec3{X: 0, Y: 1, Z: 0},
		render.FallbackUp(),
		*fov*3.141592653589793/180,
		*width, *height,
	)

	img := render.Render(scene, cam, renderMode, *depth)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outPath)
}
