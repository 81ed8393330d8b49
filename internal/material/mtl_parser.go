package material

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
)

// ParseFile reads a material library file from disk.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtllib %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the MTL grammar (§6.2) from r: one directive per line, `#`
// starts a comment, blank lines are ignored. newmtl finalizes the previous
// material (if named) before starting a new one; on EOF the last material
// is finalized if it has a name. Duplicate names overwrite.
func Parse(r io.Reader) (Table, error) {
	table := Table{}
	scanner := bufio.NewScanner(r)

	var current Material
	lineNo := 0

	finalize := func() {
		if current.Name != "" {
			table[current.Name] = current
		}
	}

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		directive, args := fields[0], fields[1:]
		switch directive {
		case "newmtl":
			finalize()
			if len(args) < 1 {
				return nil, fmt.Errorf("mtl line %d: newmtl requires a name", lineNo)
			}
			current = New(args[0])
		case "Ka":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: Ka: %w", lineNo, err)
			}
			current.Ambient = v
		case "Kd":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: Kd: %w", lineNo, err)
			}
			current.Diffuse = v
		case "Ks":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: Ks: %w", lineNo, err)
			}
			current.Specular = v
		case "Ke":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: Ke: %w", lineNo, err)
			}
			current.Emitted = v
		case "Ns":
			v, err := parseFloat1(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: Ns: %w", lineNo, err)
			}
			current.SpecularExponent = v
		case "Ni":
			v, err := parseFloat1(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: Ni: %w", lineNo, err)
			}
			current.RefractionIndex = v
		case "al":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: al: %w", lineNo, err)
			}
			current.Albedo = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mtl: %w", err)
	}
	finalize()
	return table, nil
}

func parseFloat1(args []string) (float64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("expected 1 number, got %d", len(args))
	}
	return strconv.ParseFloat(args[0], 64)
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
