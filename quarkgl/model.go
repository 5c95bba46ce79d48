package quarkgl

import (
	"errors"
	"fmt"

	"quarkwire/quarkgl/fx"
)

var (
	ErrEmptyModel = errors.New("quarkgl: model has no vertices")
	ErrEdgeIndex  = errors.New("quarkgl: edge index out of range")
)

// Edge joins two vertex indices.
type Edge [2]int

// Model is immutable geometry shared by any number of scene objects.
type Model struct {
	vertices []Vec3
	edges    []Edge
	radius   fx.Fixed
}

// NewModel copies vertices and edges and validates every edge index.
// A radius <= 0 is replaced by the distance of the farthest vertex from the
// origin.
func NewModel(vertices []Vec3, edges []Edge, radius fx.Fixed) (*Model, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyModel
	}
	for i, e := range edges {
		for _, v := range e {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("edge %d (%d, %d) with %d vertices: %w", i, e[0], e[1], len(vertices), ErrEdgeIndex)
			}
		}
	}
	m := &Model{
		vertices: append([]Vec3(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
		radius:   radius,
	}
	if m.radius <= 0 {
		m.radius = BoundingRadius(vertices)
	}
	return m, nil
}

// MustModel is NewModel for generated geometry that cannot be malformed.
func MustModel(vertices []Vec3, edges []Edge, radius fx.Fixed) *Model {
	m, err := NewModel(vertices, edges, radius)
	if err != nil {
		panic(err)
	}
	return m
}

// BoundingRadius is the largest vertex distance from the origin.
func BoundingRadius(vertices []Vec3) fx.Fixed {
	var r fx.Fixed
	for _, v := range vertices {
		if l := Length(v); l > r {
			r = l
		}
	}
	return r
}

func (m *Model) NumVertices() int  { return len(m.vertices) }
func (m *Model) NumEdges() int     { return len(m.edges) }
func (m *Model) Vertex(i int) Vec3 { return m.vertices[i] }
func (m *Model) Edge(i int) Edge   { return m.edges[i] }
func (m *Model) Radius() fx.Fixed  { return m.radius }
