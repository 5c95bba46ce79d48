package modelio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const square = `# unit square
v -1 -1 0
v  1 -1 0
v  1  1 0
v -1  1 0   # trailing comment
f 1 2 3 4
l 1 3
l 3 1       # duplicate diagonal
r 2.5
`

func TestParseWire(t *testing.T) {
	m, err := ParseWire(strings.NewReader(square))
	if err != nil {
		t.Fatalf("ParseWire: %v", err)
	}
	if m.NumVertices() != 4 {
		t.Fatalf("vertices = %d, want 4", m.NumVertices())
	}
	if m.NumEdges() != 5 {
		t.Fatalf("edges = %d, want 5", m.NumEdges())
	}
	if got := m.Vertex(2); got != quarkgl.V3(fx.One, fx.One, 0) {
		t.Fatalf("vertex 3 = %+v", got)
	}
	if got := m.Edge(3); got != (quarkgl.Edge{3, 0}) {
		t.Fatalf("closing edge = %v, want {3 0}", got)
	}
	if got := m.Radius(); got != fx.FromFloat(2.5) {
		t.Fatalf("radius = %d, want %d", got, fx.FromFloat(2.5))
	}
}

func TestParseWireNegativeIndices(t *testing.T) {
	m, err := ParseWire(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nl -3 -1\n"))
	if err != nil {
		t.Fatalf("ParseWire: %v", err)
	}
	if got := m.Edge(0); got != (quarkgl.Edge{0, 2}) {
		t.Fatalf("edge = %v, want {0 2}", got)
	}
	// Radius is derived when not given.
	if m.Radius() != fx.One {
		t.Fatalf("radius = %d", m.Radius())
	}
}

func TestParseWireErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"short vertex", "v 1 2\n", ErrSyntax},
		{"bad float", "v 1 x 2\n", ErrSyntax},
		{"zero index", "v 0 0 0\nv 1 1 1\nl 0 1\n", ErrSyntax},
		{"unknown record", "vt 0 0\n", ErrSyntax},
		{"short face", "v 0 0 0\nf 1 1\n", ErrSyntax},
		{"edge out of range", "v 0 0 0\nl 1 2\n", quarkgl.ErrEdgeIndex},
		{"empty", "# nothing\n", quarkgl.ErrEmptyModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWire(strings.NewReader(tc.src))
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseWireReportsLine(t *testing.T) {
	_, err := ParseWire(strings.NewReader("v 0 0 0\n\nv 1 2\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("err = %v, want line 3", err)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sq.wire")
	if err := os.WriteFile(path, []byte(square), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.NumEdges() != 5 {
		t.Fatalf("edges = %d", m.NumEdges())
	}
	if _, err := Load(filepath.Join(dir, "model.stl")); !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.wire")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}

func encodeGLB(t *testing.T, mode gltf.PrimitiveMode, pos [][3]float32, idx []uint16) []byte {
	t.Helper()
	doc := gltf.NewDocument()
	p := &gltf.Primitive{
		Mode:       mode,
		Attributes: map[string]int{gltf.POSITION: modeler.WritePosition(doc, pos)},
	}
	if idx != nil {
		p.Indices = gltf.Index(modeler.WriteIndices(doc, idx))
	}
	doc.Meshes = []*gltf.Mesh{{Name: "test", Primitives: []*gltf.Primitive{p}}}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

var quad = [][3]float32{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}

func TestDecodeGLTFTrianglesShareEdges(t *testing.T) {
	data := encodeGLB(t, gltf.PrimitiveTriangles, quad, []uint16{0, 1, 2, 0, 2, 3})
	m, err := DecodeGLTF(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeGLTF: %v", err)
	}
	if m.NumVertices() != 4 {
		t.Fatalf("vertices = %d", m.NumVertices())
	}
	// Two triangles sharing the 0-2 diagonal.
	if m.NumEdges() != 5 {
		t.Fatalf("edges = %d, want 5", m.NumEdges())
	}
	if got := m.Vertex(1); got != quarkgl.V3(fx.One, -fx.One, 0) {
		t.Fatalf("vertex 1 = %+v", got)
	}
}

func TestDecodeGLTFLineLoopWithoutIndices(t *testing.T) {
	data := encodeGLB(t, gltf.PrimitiveLineLoop, quad, nil)
	m, err := DecodeGLTF(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeGLTF: %v", err)
	}
	if m.NumEdges() != 4 {
		t.Fatalf("edges = %d, want 4", m.NumEdges())
	}
	if got := m.Edge(3); got != (quarkgl.Edge{3, 0}) {
		t.Fatalf("closing edge = %v", got)
	}
}

func TestDecodeGLTFPointsHaveNoEdges(t *testing.T) {
	data := encodeGLB(t, gltf.PrimitivePoints, quad, nil)
	m, err := DecodeGLTF(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeGLTF: %v", err)
	}
	if m.NumVertices() != 4 || m.NumEdges() != 0 {
		t.Fatalf("points = %d/%d", m.NumVertices(), m.NumEdges())
	}
}

func TestDecodeGLTFWithoutMeshes(t *testing.T) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(gltf.NewDocument()); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeGLTF(&buf); !errors.Is(err, quarkgl.ErrEmptyModel) {
		t.Fatalf("err = %v, want ErrEmptyModel", err)
	}
}
