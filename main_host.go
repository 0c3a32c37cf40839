//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/golang/glog"

	"tangentviz/app"
	"tangentviz/hal"
	"tangentviz/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var headless hal.HeadlessConfig
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Viz.FPS, "fps", cfg.Viz.FPS, "Frame rate limit.")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.BoolVar(&cfg.Viz.Derivative, "derivative", false, "Also draw the surface's total derivative.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Show the status overlay (F1 toggles).")
	version := flag.Bool("version", false, "Print the build version and exit.")
	flag.Parse()
	defer glog.Flush()

	if *version {
		fmt.Println(buildinfo.Long())
		return
	}

	if err := run(cfg, headless); err != nil {
		glog.Errorf("tangentviz: %v", err)
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg app.Config, headless hal.HeadlessConfig) error {
	if cfg.Viz.FPS <= 0 {
		return fmt.Errorf("invalid -fps %d", cfg.Viz.FPS)
	}
	scale := 2
	host := hal.HostConfig{
		Title:  "Tangent plane (" + buildinfo.Short() + ")",
		Width:  cfg.Viz.WindowWidth / scale,
		Height: cfg.Viz.WindowHeight / scale,
		Scale:  scale,
		TPS:    cfg.Viz.FPS,
	}
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	if headless.Enabled {
		headless.Host = host
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, headless)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
