package modelio

import (
	"fmt"
	"io"

	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads a .gltf or .glb file, resolving external buffers relative
// to it.
func LoadGLTF(path string) (*quarkgl.Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: open gltf: %w", err)
	}
	return fromDocument(doc)
}

// DecodeGLTF reads a self-contained glTF document (embedded buffers or GLB).
func DecodeGLTF(r io.Reader) (*quarkgl.Model, error) {
	doc := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("modelio: decode gltf: %w", err)
	}
	return fromDocument(doc)
}

// fromDocument merges every primitive of every mesh into one model. Node
// transforms are not applied. Triangle primitives contribute their outline
// edges, line primitives their segments and point primitives vertices only.
func fromDocument(doc *gltf.Document) (*quarkgl.Model, error) {
	var (
		verts []quarkgl.Vec3
		edges edgeSet
	)
	for mi, mesh := range doc.Meshes {
		for pi, p := range mesh.Primitives {
			posAcc, ok := p.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			pos, err := modeler.ReadPosition(doc, doc.Accessors[posAcc], nil)
			if err != nil {
				return nil, fmt.Errorf("modelio: mesh %d primitive %d positions: %w", mi, pi, err)
			}

			var indices []uint32
			if p.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("modelio: mesh %d primitive %d indices: %w", mi, pi, err)
				}
			} else {
				indices = make([]uint32, len(pos))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			base := len(verts)
			for _, v := range pos {
				verts = append(verts, quarkgl.V3(
					fx.FromFloat(float64(v[0])),
					fx.FromFloat(float64(v[1])),
					fx.FromFloat(float64(v[2])),
				))
			}
			addPrimitiveEdges(&edges, p.Mode, indices, base)
		}
	}

	m, err := quarkgl.NewModel(verts, edges.list, 0)
	if err != nil {
		return nil, fmt.Errorf("modelio: %w", err)
	}
	return m, nil
}

func addPrimitiveEdges(s *edgeSet, mode gltf.PrimitiveMode, idx []uint32, base int) {
	at := func(i int) int { return base + int(idx[i]) }
	n := len(idx)
	switch mode {
	case gltf.PrimitiveTriangles:
		for i := 0; i+2 < n; i += 3 {
			a, b, c := at(i), at(i+1), at(i+2)
			s.add(a, b)
			s.add(b, c)
			s.add(c, a)
		}
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < n; i++ {
			s.add(at(i), at(i+1))
			s.add(at(i+1), at(i+2))
			s.add(at(i+2), at(i))
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < n; i++ {
			s.add(at(0), at(i))
			s.add(at(i), at(i+1))
			s.add(at(i+1), at(0))
		}
	case gltf.PrimitiveLines:
		for i := 0; i+1 < n; i += 2 {
			s.add(at(i), at(i+1))
		}
	case gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		for i := 0; i+1 < n; i++ {
			s.add(at(i), at(i+1))
		}
		if mode == gltf.PrimitiveLineLoop && n > 2 {
			s.add(at(n-1), at(0))
		}
	}
}
