// Package shapes builds wireframe models procedurally. Every coordinate is
// produced in Q24.8 with fx trigonometry, so the same arguments give the
// same model on every target.
package shapes

import (
	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"
)

// step returns the i-th of n equal angles around a full turn.
func step(i, n int) fx.Fixed {
	return fx.Fixed(int64(fx.TwoPi) * int64(i) / int64(n))
}

// Cube is an axis-aligned cube with the given edge length, centred on the
// origin: 8 vertices and 12 edges.
func Cube(size fx.Fixed) *quarkgl.Model {
	h := size / 2
	verts := make([]quarkgl.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		v := quarkgl.V3(-h, -h, -h)
		if i&1 != 0 {
			v.X = h
		}
		if i&2 != 0 {
			v.Y = h
		}
		if i&4 != 0 {
			v.Z = h
		}
		verts = append(verts, v)
	}
	// Join every pair of corners that differ in exactly one axis bit.
	edges := make([]quarkgl.Edge, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				edges = append(edges, quarkgl.Edge{i, i | bit})
			}
		}
	}
	return quarkgl.MustModel(verts, edges, 0)
}

// UVSphere is a latitude/longitude sphere. rings counts latitude bands
// (at least 2) and segments counts meridians (at least 3). Vertex 0 is the
// north pole and the last vertex the south pole.
func UVSphere(radius fx.Fixed, rings, segments int) *quarkgl.Model {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	verts := make([]quarkgl.Vec3, 0, 2+(rings-1)*segments)
	verts = append(verts, quarkgl.V3(0, radius, 0))
	for r := 1; r < rings; r++ {
		phi := fx.Fixed(int64(fx.Pi) * int64(r) / int64(rings))
		y := fx.Mul(radius, fx.Cos(phi))
		ring := fx.Mul(radius, fx.Sin(phi))
		for s := 0; s < segments; s++ {
			theta := step(s, segments)
			verts = append(verts, quarkgl.V3(fx.Mul(ring, fx.Cos(theta)), y, fx.Mul(ring, fx.Sin(theta))))
		}
	}
	south := len(verts)
	verts = append(verts, quarkgl.V3(0, -radius, 0))

	idx := func(r, s int) int { return 1 + (r-1)*segments + s%segments }
	edges := make([]quarkgl.Edge, 0, (rings-1)*segments*2+segments)
	for r := 1; r < rings; r++ {
		for s := 0; s < segments; s++ {
			edges = append(edges, quarkgl.Edge{idx(r, s), idx(r, s+1)})
			if r == 1 {
				edges = append(edges, quarkgl.Edge{0, idx(r, s)})
			} else {
				edges = append(edges, quarkgl.Edge{idx(r-1, s), idx(r, s)})
			}
		}
	}
	for s := 0; s < segments; s++ {
		edges = append(edges, quarkgl.Edge{idx(rings-1, s), south})
	}
	return quarkgl.MustModel(verts, edges, radius)
}

// Ring is a closed circle in the XZ plane.
func Ring(radius fx.Fixed, segments int) *quarkgl.Model {
	if segments < 3 {
		segments = 3
	}
	verts := make([]quarkgl.Vec3, segments)
	edges := make([]quarkgl.Edge, segments)
	for i := range verts {
		a := step(i, segments)
		verts[i] = quarkgl.V3(fx.Mul(radius, fx.Cos(a)), 0, fx.Mul(radius, fx.Sin(a)))
		edges[i] = quarkgl.Edge{i, (i + 1) % segments}
	}
	return quarkgl.MustModel(verts, edges, radius)
}

// Torus lies around the Y axis with tube centre distance major and tube
// radius minor. segU counts steps around the axis, segV around the tube.
func Torus(major, minor fx.Fixed, segU, segV int) *quarkgl.Model {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]quarkgl.Vec3, 0, segU*segV)
	for u := 0; u < segU; u++ {
		theta := step(u, segU)
		ct, st := fx.Cos(theta), fx.Sin(theta)
		for v := 0; v < segV; v++ {
			phi := step(v, segV)
			r := major + fx.Mul(minor, fx.Cos(phi))
			verts = append(verts, quarkgl.V3(fx.Mul(r, ct), fx.Mul(minor, fx.Sin(phi)), fx.Mul(r, st)))
		}
	}

	idx := func(u, v int) int { return (u%segU)*segV + v%segV }
	edges := make([]quarkgl.Edge, 0, segU*segV*2)
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			edges = append(edges,
				quarkgl.Edge{idx(u, v), idx(u+1, v)},
				quarkgl.Edge{idx(u, v), idx(u, v+1)},
			)
		}
	}
	return quarkgl.MustModel(verts, edges, major+fx.Abs(minor))
}

// Grid is a square of size×size on the XZ plane split into divisions cells
// per side. Each grid line is a single edge.
func Grid(size fx.Fixed, divisions int) *quarkgl.Model {
	if divisions < 1 {
		divisions = 1
	}
	h := size / 2
	lines := divisions + 1
	verts := make([]quarkgl.Vec3, 0, lines*4)
	edges := make([]quarkgl.Edge, 0, lines*2)
	for i := 0; i < lines; i++ {
		t := -h + fx.Fixed(int64(size)*int64(i)/int64(divisions))
		n := len(verts)
		verts = append(verts,
			quarkgl.V3(t, 0, -h), quarkgl.V3(t, 0, h),
			quarkgl.V3(-h, 0, t), quarkgl.V3(h, 0, t),
		)
		edges = append(edges, quarkgl.Edge{n, n + 1}, quarkgl.Edge{n + 2, n + 3})
	}
	return quarkgl.MustModel(verts, edges, 0)
}

// PointCloud scatters n points uniformly in the cube [-extent, extent]³ with
// a xorshift32 generator. It has no edges and is meant for RenderVertices.
// A zero seed is replaced by a fixed non-zero one.
func PointCloud(n int, extent fx.Fixed, seed uint32) *quarkgl.Model {
	if n < 1 {
		n = 1
	}
	if seed == 0 {
		seed = 0x2545F491
	}
	next := func() fx.Fixed {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		// Map the top 16 bits onto [-extent, extent).
		u := int64(seed>>16) - 1<<15
		return fx.Fixed(u * int64(extent) >> 15)
	}
	verts := make([]quarkgl.Vec3, n)
	for i := range verts {
		x := next()
		y := next()
		z := next()
		verts[i] = quarkgl.V3(x, y, z)
	}
	return quarkgl.MustModel(verts, nil, 0)
}
