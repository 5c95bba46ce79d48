// Package app drives the wireframe viewer: it builds the world from the
// configuration, turns key presses into camera intents, and renders and
// presents a frame every frame interval on the HAL tick stream.
package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"quarkwire/control"
	"quarkwire/hal"
	"quarkwire/internal/buildinfo"
	"quarkwire/internal/config"
	"quarkwire/present"
)

// Viewer is the per-device driver around a World.
type Viewer struct {
	h     hal.HAL
	log   hal.Logger
	cfg   config.Config
	world *World

	keys  <-chan hal.KeyEvent
	ticks <-chan uint64

	now       uint64
	lastFrame uint64
	started   bool
}

// New builds a viewer for h and returns its step function, suitable for the
// hal runners. Build failures are logged and shown on the panel, and the
// step function then returns them.
func New(h hal.HAL, cfg config.Config) func() error {
	v, err := NewViewer(h, cfg)
	if err != nil {
		logLine(h.Logger(), err.Error())
		showMessage(h, "QuarkWire", err.Error())
		return func() error { return err }
	}
	return v.Step
}

// Run starts the viewer with the built-in scene and never returns. It is
// the device entry point.
func Run(h hal.HAL) {
	cfg := config.Default()
	flags := config.Flags{}
	if d := h.Display(); d != nil && d.Framebuffer() != nil {
		flags.Width = d.Framebuffer().Width()
		flags.Height = d.Framebuffer().Height()
	}
	if err := cfg.Resolve(flags); err != nil {
		logLine(h.Logger(), err.Error())
		select {}
	}
	step := New(h, cfg)
	for {
		if err := step(); err != nil {
			logLine(h.Logger(), err.Error())
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

// NewViewer builds the world for an already resolved cfg.
func NewViewer(h hal.HAL, cfg config.Config) (*Viewer, error) {
	v := &Viewer{h: h, log: h.Logger(), cfg: cfg}
	logLine(v.log, buildinfo.String())
	showMessage(h, "QuarkWire", "loading scene...")

	w, err := BuildWorld(&v.cfg)
	if err != nil {
		return nil, err
	}
	v.world = w

	objs, verts, edges := w.Counts()
	logLine(v.log, fmt.Sprintf("scene: %d objects, %d vertices, %d edges; %dx%d every %dms dither=%d",
		objs, verts, edges, cfg.Width, cfg.Height, cfg.FrameIntervalMS, cfg.Dither))

	if in := h.Input(); in != nil && in.Keyboard() != nil {
		v.keys = in.Keyboard().Events()
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}
	return v, nil
}

// World exposes the scene for tests and tools.
func (v *Viewer) World() *World { return v.world }

// Step polls input and time without blocking and renders when a frame
// interval has elapsed. It returns hal.ErrStop when the user quits. A panic
// inside the frame is shown on the panel and returned as an error.
func (v *Viewer) Step() (err error) {
	defer func() {
		if p := recover(); p != nil {
			showPanic(v.h, p, debug.Stack())
			err = fmt.Errorf("app: panic: %v", p)
		}
	}()

	if v.pollKeys() {
		logLine(v.log, "quit")
		return hal.ErrStop
	}
	v.pollTicks()

	if !v.started {
		v.started = true
		v.lastFrame = v.now
		return v.frame(0)
	}
	dt := v.now - v.lastFrame
	if v.ticks != nil && dt < uint64(v.cfg.FrameIntervalMS) {
		return nil
	}
	v.lastFrame = v.now
	return v.frame(int(dt))
}

func (v *Viewer) frame(dtMS int) error {
	w := v.world
	stats := w.Frame(dtMS)
	fb := w.Renderer.FB
	if !v.cfg.HideHUD {
		w.DrawHUD(stats)
	}

	n := w.Frames()
	if every := v.cfg.StatsEvery; every > 0 && n%uint64(every) == 0 {
		logLine(v.log, fmt.Sprintf("frame=%d visible=%d drawn=%d", n, stats.Visible, stats.Primitives))
	}

	d := v.h.Display()
	if d == nil || d.Framebuffer() == nil {
		return nil
	}
	panel := d.Framebuffer()
	if err := present.BlitRGB565(panel, fb); err != nil {
		return err
	}
	if err := panel.Present(); err != nil && err != hal.ErrNotImplemented {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

// pollKeys queues intents for every pending key press and reports whether
// a quit key was seen.
func (v *Viewer) pollKeys() (quit bool) {
	if v.keys == nil {
		return false
	}
	for {
		select {
		case ev, ok := <-v.keys:
			if !ok {
				v.keys = nil
				return quit
			}
			in, q := IntentForKey(ev)
			if q {
				quit = true
			}
			if in != control.None {
				// The queue is drained on this goroutine, so a full queue
				// drops the intent instead of waiting.
				v.world.Intents.TryPush(in)
			}
		default:
			return quit
		}
	}
}

func (v *Viewer) pollTicks() {
	if v.ticks == nil {
		return
	}
	for {
		select {
		case t := <-v.ticks:
			v.now = t
		default:
			return
		}
	}
}

// IntentForKey maps a key press to a camera intent. Releases map to
// control.None. Escape and 'q' request quit.
func IntentForKey(ev hal.KeyEvent) (in control.Intent, quit bool) {
	if !ev.Press {
		return control.None, false
	}
	switch ev.Code {
	case hal.KeyUp:
		return control.MoveForward, false
	case hal.KeyDown:
		return control.MoveBack, false
	case hal.KeyLeft:
		return control.YawLeft, false
	case hal.KeyRight:
		return control.YawRight, false
	case hal.KeyHome:
		return control.ResetCamera, false
	case hal.KeyEscape:
		return control.None, true
	}
	if ev.Rune == 'q' || ev.Rune == 'Q' {
		return control.None, true
	}
	return control.ForRune(ev.Rune), false
}

func logLine(l hal.Logger, s string) {
	if l != nil {
		l.WriteLineString(s)
	}
}
