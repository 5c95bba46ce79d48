//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"quarkwire/app"
	"quarkwire/hal"
	"quarkwire/internal/config"
)

func main() {
	var hcfg hal.HeadlessConfig
	var flags config.Flags
	var configFile string
	var scale, dither int
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&configFile, "config", "", "Viewer JSON config.")
	flag.StringVar(&flags.Model, "model", "", "View a single .wire/.gltf/.glb model instead of the scene.")
	flag.IntVar(&flags.Width, "width", 0, "Framebuffer width.")
	flag.IntVar(&flags.Height, "height", 0, "Framebuffer height.")
	flag.IntVar(&flags.FrameIntervalMS, "interval", 0, "Milliseconds between rendered frames.")
	flag.IntVar(&dither, "dither", -1, "Dither matrix size (0 off, 2, 4 or 8; default: config).")
	flag.IntVar(&flags.StatsEvery, "stats", 0, "Log statistics every N frames.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.Parse()
	if dither >= 0 {
		flags.Dither = &dither
	}

	var cfg config.Config
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := cfg.Resolve(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if hcfg.Enabled {
		hcfg.Width, hcfg.Height = cfg.Width, cfg.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  scale,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
