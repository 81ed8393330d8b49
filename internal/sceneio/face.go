package sceneio

import (
	"fmt"
	"regexp"
	"strconv"
)

// faceTokenPattern matches one `f` directive token: vertex index, optional
// texture index, optional normal index, exactly as the grammar in §6.1
// specifies. Capture groups 1, 3, 5 are the vertex/texture/normal indices;
// groups 2 and 4 are the literal slash delimiters and are not used.
var faceTokenPattern = regexp.MustCompile(`^(-?\d+)(/)?(-?\d+)?(/)?(-?\d+)?$`)

// faceToken is one parsed vertex reference inside an `f` directive.
type faceToken struct {
	vertexIndex int
	hasNormal   bool
	normalIndex int
}

func parseFaceToken(tok string) (faceToken, error) {
	m := faceTokenPattern.FindStringSubmatch(tok)
	if m == nil {
		return faceToken{}, fmt.Errorf("malformed face token %q", tok)
	}
	vertexIndex, err := strconv.Atoi(m[1])
	if err != nil {
		return faceToken{}, fmt.Errorf("face token %q: %w", tok, err)
	}
	ft := faceToken{vertexIndex: vertexIndex}
	if m[5] != "" {
		normalIndex, err := strconv.Atoi(m[5])
		if err != nil {
			return faceToken{}, fmt.Errorf("face token %q: %w", tok, err)
		}
		ft.hasNormal = true
		ft.normalIndex = normalIndex
	}
	return ft, nil
}

// resolveIndex converts a 1-based or negative (counts from the end of the
// list) OBJ index into a 0-based slice index.
func resolveIndex(idx, listLen int) (int, error) {
	switch {
	case idx > 0:
		if idx > listLen {
			return 0, fmt.Errorf("index %d out of range (have %d)", idx, listLen)
		}
		return idx - 1, nil
	case idx < 0:
		resolved := listLen + idx
		if resolved < 0 {
			return 0, fmt.Errorf("index %d out of range (have %d)", idx, listLen)
		}
		return resolved, nil
	default:
		return 0, fmt.Errorf("index 0 is not a valid 1-based or negative OBJ index")
	}
}
