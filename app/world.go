package app

import (
	"fmt"

	"quarkwire/control"
	"quarkwire/internal/config"
	"quarkwire/modelio"
	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"
	"quarkwire/shapes"
)

// World is everything needed to produce a frame, independent of the device
// that shows it: scene, controller, renderer and object animations.
type World struct {
	Scene      *quarkgl.Scene
	Controller *quarkgl.Controller
	Renderer   *quarkgl.Renderer
	Intents    control.Queue

	anims []*animation
	frame uint64
	hud   *hud
}

// BuildWorld creates the scene described by cfg. cfg must be resolved.
// Model files named by several objects are loaded once and shared.
func BuildWorld(cfg *config.Config) (*World, error) {
	cam := quarkgl.NewCamera(cfg.CameraPosition())
	s := quarkgl.NewScene(cam, cfg.Lens())
	ctl := quarkgl.NewController(s)
	cfg.Configure(ctl)

	w := &World{
		Scene:      s,
		Controller: ctl,
		Renderer:   quarkgl.NewRenderer(cfg.Framebuffer()),
	}

	files := make(map[string]*quarkgl.Model)
	for i := range cfg.Scene {
		o := &cfg.Scene[i]
		var (
			m   *quarkgl.Model
			err error
		)
		if o.Model != "" {
			m = files[o.Model]
			if m == nil {
				m, err = modelio.Load(o.Model)
				if err != nil {
					return nil, fmt.Errorf("app: object %q: %w", o.Name, err)
				}
				files[o.Model] = m
			}
		} else {
			m = shapeModel(o, uint32(i+1))
		}

		obj, err := o.Place(m)
		if err != nil {
			return nil, fmt.Errorf("app: object %q: %w", o.Name, err)
		}
		s.Add(obj)
		if a := newAnimation(obj, o); a != nil {
			w.anims = append(w.anims, a)
		}
	}
	return w, nil
}

// shapeModel builds a procedural model. Size and Segments fall back to
// per-shape defaults when zero.
func shapeModel(o *config.Object, seed uint32) *quarkgl.Model {
	size := func(def float64) fx.Fixed {
		if o.Size > 0 {
			return fx.FromFloat(o.Size)
		}
		return fx.FromFloat(def)
	}
	segs := func(def int) int {
		if o.Segments > 0 {
			return o.Segments
		}
		return def
	}

	switch o.Shape {
	case "sphere":
		n := segs(12)
		return shapes.UVSphere(size(1), n/2, n)
	case "ring":
		return shapes.Ring(size(1), segs(32))
	case "torus":
		major := size(1)
		n := segs(12)
		return shapes.Torus(major, fx.Mul(major, fx.FromFloat(0.35)), n*2, n)
	case "grid":
		return shapes.Grid(size(10), segs(10))
	case "cloud":
		return shapes.PointCloud(segs(200), size(10)/2, seed)
	default:
		return shapes.Cube(size(1))
	}
}

// Frame advances animations by dtMS milliseconds, applies queued intents
// and renders. It returns the renderer's statistics.
func (w *World) Frame(dtMS int) quarkgl.Stats {
	w.Controller.Drain(&w.Intents)
	if dtMS > 0 {
		dt := float32(dtMS) / 1000
		for _, a := range w.anims {
			a.advance(dt)
		}
	}
	w.frame++
	return w.Renderer.Render(w.Scene)
}

// Frames is the number of frames rendered so far.
func (w *World) Frames() uint64 { return w.frame }

// Counts totals the geometry in the scene.
func (w *World) Counts() (objects, vertices, edges int) {
	for _, o := range w.Scene.Objects() {
		objects++
		vertices += o.Model.NumVertices()
		edges += o.Model.NumEdges()
	}
	return objects, vertices, edges
}
