package shapes

import (
	"testing"

	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"
)

func edgeLen(m *quarkgl.Model, i int) fx.Fixed {
	e := m.Edge(i)
	return quarkgl.Length(m.Vertex(e[1]).Sub(m.Vertex(e[0])))
}

func TestCube(t *testing.T) {
	m := Cube(2 * fx.One)
	if m.NumVertices() != 8 || m.NumEdges() != 12 {
		t.Fatalf("cube = %d vertices, %d edges, want 8, 12", m.NumVertices(), m.NumEdges())
	}
	for i := 0; i < m.NumEdges(); i++ {
		if got := edgeLen(m, i); got != 2*fx.One {
			t.Fatalf("edge %d length = %d, want %d", i, got, 2*fx.One)
		}
	}
	// sqrt(3) in Q24.8.
	if got := m.Radius(); got != 443 {
		t.Fatalf("radius = %d, want 443", got)
	}
}

func TestUVSphereTopology(t *testing.T) {
	const rings, segs = 4, 8
	m := UVSphere(fx.One, rings, segs)
	if got, want := m.NumVertices(), 2+(rings-1)*segs; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	if got, want := m.NumEdges(), (rings-1)*segs*2+segs; got != want {
		t.Fatalf("edges = %d, want %d", got, want)
	}
	if m.Vertex(0) != quarkgl.V3(0, fx.One, 0) || m.Vertex(m.NumVertices()-1) != quarkgl.V3(0, -fx.One, 0) {
		t.Fatalf("poles = %+v, %+v", m.Vertex(0), m.Vertex(m.NumVertices()-1))
	}
	for i := 0; i < m.NumVertices(); i++ {
		if l := quarkgl.Length(m.Vertex(i)); fx.Abs(l-fx.One) > 4 {
			t.Fatalf("vertex %d at distance %d, want ~%d", i, l, fx.One)
		}
	}
	if m.Radius() != fx.One {
		t.Fatalf("radius = %d", m.Radius())
	}
}

func TestUVSphereClampsResolution(t *testing.T) {
	m := UVSphere(fx.One, 0, 1)
	if m.NumVertices() != 2+3 {
		t.Fatalf("vertices = %d, want 5", m.NumVertices())
	}
}

func TestRingIsClosed(t *testing.T) {
	m := Ring(fx.One, 4)
	if m.NumVertices() != 4 || m.NumEdges() != 4 {
		t.Fatalf("ring = %d/%d", m.NumVertices(), m.NumEdges())
	}
	if m.Vertex(0) != quarkgl.V3(fx.One, 0, 0) {
		t.Fatalf("first vertex = %+v", m.Vertex(0))
	}
	if last := m.Edge(3); last != (quarkgl.Edge{3, 0}) {
		t.Fatalf("closing edge = %v", last)
	}
	for i := 0; i < 4; i++ {
		if m.Vertex(i).Y != 0 {
			t.Fatalf("vertex %d leaves the XZ plane: %+v", i, m.Vertex(i))
		}
	}
}

func TestTorus(t *testing.T) {
	m := Torus(fx.One, fx.One/4, 12, 6)
	if m.NumVertices() != 72 || m.NumEdges() != 144 {
		t.Fatalf("torus = %d/%d, want 72/144", m.NumVertices(), m.NumEdges())
	}
	if m.Radius() != fx.One+fx.One/4 {
		t.Fatalf("radius = %d", m.Radius())
	}
	for i := 0; i < m.NumVertices(); i++ {
		if l := quarkgl.Length(m.Vertex(i)); l > m.Radius()+4 || l < fx.One-fx.One/4-4 {
			t.Fatalf("vertex %d at distance %d outside the tube", i, l)
		}
	}
}

func TestGrid(t *testing.T) {
	m := Grid(4*fx.One, 4)
	if m.NumEdges() != 10 || m.NumVertices() != 20 {
		t.Fatalf("grid = %d vertices, %d edges", m.NumVertices(), m.NumEdges())
	}
	for i := 0; i < m.NumEdges(); i++ {
		if got := edgeLen(m, i); got != 4*fx.One {
			t.Fatalf("line %d length = %d", i, got)
		}
	}
	if v := m.Vertex(4); v != quarkgl.V3(-fx.One, 0, -2*fx.One) {
		t.Fatalf("second line start = %+v", v)
	}
}

func TestPointCloudDeterministicAndBounded(t *testing.T) {
	a := PointCloud(200, 2*fx.One, 7)
	b := PointCloud(200, 2*fx.One, 7)
	if a.NumEdges() != 0 || a.NumVertices() != 200 {
		t.Fatalf("cloud = %d/%d", a.NumVertices(), a.NumEdges())
	}
	for i := 0; i < a.NumVertices(); i++ {
		if a.Vertex(i) != b.Vertex(i) {
			t.Fatalf("vertex %d differs between runs", i)
		}
		v := a.Vertex(i)
		for _, c := range []fx.Fixed{v.X, v.Y, v.Z} {
			if c < -2*fx.One || c >= 2*fx.One {
				t.Fatalf("vertex %d = %+v outside extent", i, v)
			}
		}
	}
	if c := PointCloud(200, 2*fx.One, 8); c.Vertex(0) == a.Vertex(0) {
		t.Fatalf("different seeds gave the same first point")
	}
	if z := PointCloud(3, fx.One, 0); z.NumVertices() != 3 {
		t.Fatalf("zero seed cloud = %d points", z.NumVertices())
	}
}
