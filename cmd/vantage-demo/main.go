// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

// Command vantage-demo opens a window through vantage and presents an
// animated clear color until the window closes.
//
// The demo mirrors the intended deployment: the main thread owns the
// window and pumps events, while the presentation loop runs on its own
// locked OS thread.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/vantagegl/vantage"
	"github.com/vantagegl/vantage/config"
	"github.com/vantagegl/vantage/winsys"
	_ "github.com/vantagegl/vantage/winsys/glfwdrv"
	_ "github.com/vantagegl/vantage/winsys/sdldrv"
)

func init() {
	// The thread that runs main must be the one that owns the window
	// and its events.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "config file (default ~/.config/vantage/config.yaml)")
		backend    = flag.String("backend", "", "windowing backend (sdl, glfw)")
		title      = flag.String("title", "", "window title")
		width      = flag.Int("width", 0, "window width")
		height     = flag.Int("height", 0, "window height")
		fullscreen = flag.Bool("fullscreen", false, "start fullscreen")
		vsync      = flag.Bool("vsync", false, "wait for display refresh on swap")
		debug      = flag.Bool("debug", false, "request a debug GL context")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vantage.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("configuration unusable", "err", err)
		os.Exit(1)
	}
	applyFlags(cfg, backend, title, width, height, fullscreen, vsync, debug)

	var b winsys.Backend
	if cfg.Backend != "" {
		b, err = winsys.Get(cfg.Backend)
	} else {
		b, err = winsys.Default()
	}
	if err != nil {
		logger.Error("no usable windowing backend", "err", err)
		os.Exit(1)
	}

	settings := cfg.Settings()
	win, err := vantage.Open(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height,
		vantage.WithBackend(b),
		vantage.WithSettings(settings),
		vantage.WithFullscreen(cfg.Window.Fullscreen),
	)
	if err != nil {
		// Open already logged the critical diagnostic.
		os.Exit(1)
	}
	defer win.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		win.RequestClose()
	}()

	loop := vantage.NewLoop(win, &clearProducer{start: time.Now()})
	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		done <- loop.Run()
	}()

	for win.IsOpen() {
		win.PumpEvents()
		time.Sleep(10 * time.Millisecond)
	}

	if err := <-done; err != nil {
		logger.Error("presentation loop failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cfg *config.Config, backend, title *string, width, height *int, fullscreen, vsync, debug *bool) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "title":
			cfg.Window.Title = *title
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "fullscreen":
			cfg.Window.Fullscreen = *fullscreen
		case "vsync":
			cfg.Renderer.VSync = *vsync
		case "debug":
			cfg.Renderer.DebugContext = *debug
		}
	})
}

// clearProducer stands in for a real renderer: each iteration it fills
// the back buffer with a slowly cycling color. It runs on the
// presentation thread with the primary context current.
type clearProducer struct {
	start time.Time
}

func (p *clearProducer) TryPresent(timeout time.Duration) bool {
	t := time.Since(p.start).Seconds()
	r := float32(0.5 + 0.5*math.Sin(t))
	g := float32(0.5 + 0.5*math.Sin(t+2*math.Pi/3))
	b := float32(0.5 + 0.5*math.Sin(t+4*math.Pi/3))
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return true
}
