package sceneio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dt-raytrace/obj-raytracer/internal/geom"
	"github.com/dt-raytrace/obj-raytracer/internal/material"
	"github.com/dt-raytrace/obj-raytracer/internal/prim"
)

// ParseFile reads a scene file from disk. Any mtllib directive is resolved
// relative to the scene file's parent directory (§6.1).
func ParseFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene %q: %w", path, err)
	}
	defer f.Close()
	return parse(f, filepath.Dir(path))
}

// Parse reads a scene file from r; mtllib paths are resolved relative to
// baseDir.
func Parse(r io.Reader, baseDir string) (*Scene, error) {
	return parse(r, baseDir)
}

func parse(r io.Reader, baseDir string) (*Scene, error) {
	scene := &Scene{Materials: material.Table{}}

	var vertices []prim.Vec3
	var normals []prim.Vec3
	currentMaterial := ""

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		directive, args := fields[0], fields[1:]

		switch directive {
		case "v":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: v: %w", lineNo, err)
			}
			vertices = append(vertices, v)
		case "vn":
			n, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: vn: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "f":
			if len(args) < 3 {
				return nil, fmt.Errorf("obj line %d: f requires at least 3 vertices, got %d", lineNo, len(args))
			}
			if err := parseFace(scene, args, vertices, normals, currentMaterial, lineNo); err != nil {
				return nil, err
			}
		case "P":
			if len(args) < 6 {
				return nil, fmt.Errorf("obj line %d: P requires 6 numbers, got %d", lineNo, len(args))
			}
			pos, err := parseVec3(args[0:3])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: P position: %w", lineNo, err)
			}
			intensity, err := parseVec3(args[3:6])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: P intensity: %w", lineNo, err)
			}
			scene.Lights = append(scene.Lights, Light{Position: pos, Intensity: intensity})
		case "S":
			if len(args) < 4 {
				return nil, fmt.Errorf("obj line %d: S requires 4 numbers, got %d", lineNo, len(args))
			}
			center, err := parseVec3(args[0:3])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: S center: %w", lineNo, err)
			}
			radius, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: S radius: %w", lineNo, err)
			}
			scene.Spheres = append(scene.Spheres, SphereObject{
				MaterialName: currentMaterial,
				Sphere:       geom.Sphere{Center: center, Radius: radius},
			})
		case "mtllib":
			if len(args) < 1 {
				return nil, fmt.Errorf("obj line %d: mtllib requires a filename", lineNo)
			}
			mtlPath := filepath.Join(baseDir, args[0])
			table, err := material.ParseFile(mtlPath)
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			for name, m := range table {
				scene.Materials[name] = m
			}
		case "usemtl":
			if len(args) < 1 {
				return nil, fmt.Errorf("obj line %d: usemtl requires a name", lineNo)
			}
			if _, ok := scene.Materials[args[0]]; !ok {
				return nil, fmt.Errorf("obj line %d: usemtl %q: material not found", lineNo, args[0])
			}
			currentMaterial = args[0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	return scene, nil
}

// parseFace handles one `f` directive: parses its tokens, resolves vertex
// and (if present) normal indices, and fan-triangulates the resulting
// polygon anchored at its first vertex.
func parseFace(scene *Scene, args []string, vertices, normals []prim.Vec3, currentMaterial string, lineNo int) error {
	tokens := make([]faceToken, len(args))
	for i, a := range args {
		ft, err := parseFaceToken(a)
		if err != nil {
			return fmt.Errorf("obj line %d: f: %w", lineNo, err)
		}
		tokens[i] = ft
	}
	// Whether every token of this face carries a normal index is decided by
	// the *first* token alone (§6.1).
	withNormals := tokens[0].hasNormal

	faceVertices := make([]prim.Vec3, len(tokens))
	var faceNormals []prim.Vec3
	if withNormals {
		faceNormals = make([]prim.Vec3, len(tokens))
	}
	for i, ft := range tokens {
		vi, err := resolveIndex(ft.vertexIndex, len(vertices))
		if err != nil {
			return fmt.Errorf("obj line %d: f: vertex %w", lineNo, err)
		}
		faceVertices[i] = vertices[vi]
		if withNormals {
			ni, err := resolveIndex(ft.normalIndex, len(normals))
			if err != nil {
				return fmt.Errorf("obj line %d: f: normal %w", lineNo, err)
			}
			faceNormals[i] = normals[ni]
		}
	}

	for i := 0; i <= len(faceVertices)-3; i++ {
		tri := geom.Triangle{A: faceVertices[0], B: faceVertices[i+1], C: faceVertices[i+2]}
		obj := TriangleObject{MaterialName: currentMaterial, Triangle: tri}
		if withNormals {
			obj.Normals = &[3]prim.Vec3{faceNormals[0], faceNormals[i+1], faceNormals[i+2]}
		}
		scene.Triangles = append(scene.Triangles, obj)
	}
	return nil
}

func parseVec3(args []string) (prim.Vec3, error) {
	if len(args) < 3 {
		return prim.Vec3{}, fmt.Errorf("expected 3 numbers, got %d", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return prim.Vec3{}, err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return prim.Vec3{}, err
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return prim.Vec3{}, err
	}
	return prim.Vec3{X: x, Y: y, Z: z}, nil
}
