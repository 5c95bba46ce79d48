//go:build !tinygo

// Command qwsnap renders a scene without a display and writes the last
// frame to a WebP or TGA file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"quarkwire/app"
	"quarkwire/control"
	"quarkwire/internal/buildinfo"
	"quarkwire/internal/config"
	"quarkwire/present"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to viewer JSON config")
	model := flag.String("model", "", "Render a single .wire/.gltf/.glb model instead of the scene")
	out := flag.String("o", "frame.webp", "Output file (.webp or .tga)")
	frames := flag.Int("frames", 1, "Frames to simulate before the snapshot")
	width := flag.Int("width", 0, "Frame width (default: config or 320)")
	height := flag.Int("height", 0, "Frame height (default: config or 320)")
	dither := flag.Int("dither", -1, "Dither matrix size: 0 (off), 2, 4 or 8 (default: config)")
	scale := flag.Int("scale", 1, "Integer upscale factor for the snapshot")
	yaw := flag.Int("yaw", 0, "Yaw steps to apply before rendering (negative turns right)")
	hud := flag.Bool("hud", false, "Draw the statistics overlay")
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
	flags := config.Flags{
		Width:  *width,
		Height: *height,
		Model:  *model,
	}
	if *dither >= 0 {
		flags.Dither = dither
	}
	if err := cfg.Resolve(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	w, err := app.BuildWorld(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}
	objs, verts, edges := w.Counts()
	fmt.Printf("%s\n", buildinfo.String())
	fmt.Printf("Scene: %d objects, %d vertices, %d edges at %dx%d\n", objs, verts, edges, cfg.Width, cfg.Height)

	turn := control.YawLeft
	if *yaw < 0 {
		turn = control.YawRight
		*yaw = -*yaw
	}
	for i := 0; i < *yaw; i++ {
		w.Controller.Apply(turn)
	}

	start := time.Now()
	n := max(*frames, 1)
	var stats = w.Frame(0)
	for i := 1; i < n; i++ {
		stats = w.Frame(cfg.FrameIntervalMS)
	}
	if *hud {
		w.DrawHUD(stats)
	}
	fmt.Printf("Rendered %d frame(s) in %s: visible=%d drawn=%d\n", n, time.Since(start).Round(time.Microsecond), stats.Visible, stats.Primitives)

	if err := present.WriteFile(*out, w.Renderer.FB, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Snapshot: %s\n", *out)
}
