package material

import (
	"strings"
	"testing"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-9, 0.0)

func TestParseMTLBasic(t *testing.T) {
	input := `# a comment
newmtl red
Ka 0.1 0.0 0.0
Kd 0.8 0.0 0.0
Ks 0.5 0.5 0.5
Ke 0.0 0.0 0.0
Ns 32
Ni 1.0
al 0.9 0.05 0.05

newmtl glass
Kd 0.1 0.1 0.1
Ni 1.5
al 0.0 0.1 0.9
`
	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	red := table["red"]
	if diff := cmp.Diff(red.Diffuse, prim.Vec3{X: 0.8, Y: 0, Z: 0}, approxOpts); diff != "" {
		t.Errorf("red.Diffuse mismatch (-got +want):\n%s", diff)
	}
	if red.SpecularExponent != 32 {
		t.Errorf("red.SpecularExponent = %v, want 32", red.SpecularExponent)
	}

	glass := table["glass"]
	if glass.RefractionIndex != 1.5 {
		t.Errorf("glass.RefractionIndex = %v, want 1.5", glass.RefractionIndex)
	}
	if diff := cmp.Diff(glass.Albedo, prim.Vec3{X: 0, Y: 0.1, Z: 0.9}, approxOpts); diff != "" {
		t.Errorf("glass.Albedo mismatch (-got +want):\n%s", diff)
	}
	// Fields untouched by any directive keep their §3 defaults.
	if diff := cmp.Diff(glass.Ambient, prim.Vec3{}, approxOpts); diff != "" {
		t.Errorf("glass.Ambient mismatch (-got +want):\n%s", diff)
	}
}

func TestParseMTLDefaults(t *testing.T) {
	table, err := Parse(strings.NewReader("newmtl bare\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	bare := table["bare"]
	want := New("bare")
	if diff := cmp.Diff(bare, want, approxOpts); diff != "" {
		t.Errorf("defaults mismatch (-got +want):\n%s", diff)
	}
}

func TestParseMTLDuplicateNameOverwrites(t *testing.T) {
	input := `newmtl x
Kd 1 0 0
newmtl x
Kd 0 1 0
`
	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1", len(table))
	}
	if diff := cmp.Diff(table["x"].Diffuse, prim.Vec3{X: 0, Y: 1, Z: 0}, approxOpts); diff != "" {
		t.Errorf("second newmtl x should win (-got +want):\n%s", diff)
	}
}

func TestParseMTLFinalizesLastMaterialOnEOF(t *testing.T) {
	table, err := Parse(strings.NewReader("newmtl onlyone\nKd 1 1 1"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, ok := table["onlyone"]; !ok {
		t.Error("expected the unterminated final material to be finalized on EOF")
	}
}

func TestParseMTLMalformedNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("newmtl x\nKd notanumber 0 0\n"))
	if err == nil {
		t.Error("expected a parse error for a malformed number")
	}
}
