//go:build !tinygo

// Command qwterm is an interactive viewer that draws into the terminal with
// half-block characters.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"quarkwire/app"
	"quarkwire/control"
	"quarkwire/internal/config"
	"quarkwire/present"
	"quarkwire/quarkgl/fx"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configFile := flag.String("config", "", "Path to viewer JSON config")
	model := flag.String("model", "", "View a single .wire/.gltf/.glb model instead of the scene")
	dither := flag.Int("dither", -1, "Dither matrix size: 0 (off), 2, 4 or 8 (default: config)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// One framebuffer pixel per column and two per row.
	cols, rows := screen.Size()
	flags := config.Flags{
		Width:  cols,
		Height: (rows - 1) * 2,
		Model:  *model,
	}
	if *dither >= 0 {
		flags.Dither = dither
	}
	if err := cfg.Resolve(flags); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	w, err := app.BuildWorld(&cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	run(screen, w, cfg)
	screen.Fini()
}

func run(screen tcell.Screen, w *app.World, cfg config.Config) {
	term := &present.Terminal{Screen: screen}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	interval := time.Duration(cfg.FrameIntervalMS) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in, quit := intentFor(ev)
				if quit {
					return
				}
				if in != control.None {
					w.Intents.TryPush(in)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			st := w.Frame(cfg.FrameIntervalMS)
			lens := w.Scene.Lens()
			status := fmt.Sprintf("fov %d  vis %d/%d  prims %d  [wasd/arrows move, r/f pitch, +/- fov, 0 reset, q quit]",
				fx.ToDegrees(lens.Fov), st.Visible, st.Objects, st.Primitives)
			term.Draw(w.Renderer.FB, status)
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func intentFor(ev *tcell.EventKey) (control.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return control.None, true
	case tcell.KeyUp:
		return control.MoveForward, false
	case tcell.KeyDown:
		return control.MoveBack, false
	case tcell.KeyLeft:
		return control.YawLeft, false
	case tcell.KeyRight:
		return control.YawRight, false
	case tcell.KeyHome:
		return control.ResetCamera, false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return control.None, true
		}
		return control.ForRune(ev.Rune()), false
	}
	return control.None, false
}
