package quarkgl

import (
	"errors"
	"testing"

	"quarkwire/quarkgl/fx"
)

func TestNewModelRejectsBadEdges(t *testing.T) {
	verts := []Vec3{{}, V3(fx.One, 0, 0)}
	tests := []struct {
		name  string
		edges []Edge
	}{
		{"past end", []Edge{{0, 2}}},
		{"negative", []Edge{{-1, 0}}},
		{"second edge", []Edge{{0, 1}, {1, 5}}},
	}
	for _, tt := range tests {
		if _, err := NewModel(verts, tt.edges, 0); !errors.Is(err, ErrEdgeIndex) {
			t.Errorf("%s: err = %v, want ErrEdgeIndex", tt.name, err)
		}
	}
	if _, err := NewModel(nil, nil, fx.One); !errors.Is(err, ErrEmptyModel) {
		t.Fatalf("empty model err = %v, want ErrEmptyModel", err)
	}
}

func TestMustModelPanicsOnBadEdge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustModel did not panic")
		}
	}()
	MustModel([]Vec3{{}}, []Edge{{0, 1}}, 0)
}

func TestModelIsImmutableCopy(t *testing.T) {
	verts := []Vec3{{}, V3(3*fx.One, 4*fx.One, 0)}
	edges := []Edge{{0, 1}}
	m := MustModel(verts, edges, 0)
	verts[1] = Vec3{}
	edges[0] = Edge{1, 1}
	if m.Vertex(1) != V3(3*fx.One, 4*fx.One, 0) || m.Edge(0) != (Edge{0, 1}) {
		t.Fatalf("model aliases caller slices")
	}
	if m.Radius() != 5*fx.One {
		t.Fatalf("derived radius = %d, want %d", m.Radius(), 5*fx.One)
	}
	if m.NumVertices() != 2 || m.NumEdges() != 1 {
		t.Fatalf("counts = %d, %d", m.NumVertices(), m.NumEdges())
	}
}
