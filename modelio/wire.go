// Package modelio loads wireframe models from files.
//
// Two formats are understood: the line-oriented .wire text format and glTF
// 2.0 (.gltf or .glb). Coordinates are converted to Q24.8 once, at load.
package modelio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"
)

var (
	ErrSyntax = errors.New("modelio: syntax error")
	ErrFormat = errors.New("modelio: unknown model format")
)

// Load picks a loader from the file extension.
func Load(path string) (*quarkgl.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wire":
		return LoadWire(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrFormat)
}

// LoadWire reads a .wire file. See ParseWire for the format.
func LoadWire(path string) (*quarkgl.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: open wire: %w", err)
	}
	defer f.Close()

	m, err := ParseWire(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseWire reads line-oriented geometry:
//
//	# comment
//	v x y z        vertex, decimal coordinates
//	l a b          edge between vertices a and b (1-based)
//	f a b c ...    closed polygon outline, one edge per side
//	r radius       bounding radius override
//
// Indices may be negative to count back from the latest vertex, as in OBJ.
// Edges repeated by adjacent faces are kept once.
func ParseWire(r io.Reader) (*quarkgl.Model, error) {
	var (
		verts  []quarkgl.Vec3
		edges  edgeSet
		radius fx.Fixed
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		bad := func(format string, args ...any) error {
			return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrSyntax)
		}

		switch fields[0] {
		case "v":
			if len(fields) != 4 {
				return nil, bad("vertex needs 3 coordinates, got %d", len(fields)-1)
			}
			var c [3]fx.Fixed
			for i := range c {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, bad("coordinate %q", fields[i+1])
				}
				c[i] = fx.FromFloat(f)
			}
			verts = append(verts, quarkgl.V3(c[0], c[1], c[2]))

		case "l", "f":
			need := 2
			if fields[0] == "f" {
				need = 3
			}
			if len(fields)-1 < need || (fields[0] == "l" && len(fields) != 3) {
				return nil, bad("%s needs %d indices, got %d", fields[0], need, len(fields)-1)
			}
			idx := make([]int, len(fields)-1)
			for i, s := range fields[1:] {
				n, err := strconv.Atoi(s)
				if err != nil || n == 0 {
					return nil, bad("index %q", s)
				}
				if n < 0 {
					idx[i] = len(verts) + n
				} else {
					idx[i] = n - 1
				}
			}
			for i := 0; i+1 < len(idx); i++ {
				edges.add(idx[i], idx[i+1])
			}
			if fields[0] == "f" {
				edges.add(idx[len(idx)-1], idx[0])
			}

		case "r":
			if len(fields) != 2 {
				return nil, bad("radius needs 1 value")
			}
			f, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || f < 0 {
				return nil, bad("radius %q", fields[1])
			}
			radius = fx.FromFloat(f)

		default:
			return nil, bad("unknown record %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("modelio: read wire: %w", err)
	}

	m, err := quarkgl.NewModel(verts, edges.list, radius)
	if err != nil {
		return nil, fmt.Errorf("modelio: %w", err)
	}
	return m, nil
}

// edgeSet keeps undirected edges once, in first-seen order. Degenerate
// edges are dropped.
type edgeSet struct {
	seen map[quarkgl.Edge]struct{}
	list []quarkgl.Edge
}

func (s *edgeSet) add(a, b int) {
	if a == b {
		return
	}
	key := quarkgl.Edge{a, b}
	if a > b {
		key = quarkgl.Edge{b, a}
	}
	if s.seen == nil {
		s.seen = make(map[quarkgl.Edge]struct{})
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.list = append(s.list, quarkgl.Edge{a, b})
}
