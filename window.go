// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import (
	"fmt"
	"strings"

	"github.com/vantagegl/vantage/winsys"
)

// LayoutListener is the resize/layout collaborator. It is notified of
// the drawable dimensions after the window opens and after every resize,
// and of the minimum allowed client area.
type LayoutListener interface {
	// OnDrawableResize receives the new drawable size in pixels.
	OnDrawableResize(width, height int)

	// OnMinimumClientArea receives the minimum client-area size.
	OnMinimumClientArea(width, height int)
}

// windowState tracks the window lifecycle. Closed is terminal.
type windowState int

const (
	stateUninitialized windowState = iota
	stateCreated
	stateClosed
)

// Window owns the visible presentation surface, the primary rendering
// context bound to it, and the shared render context created at startup.
// Creation is ordered: surface, primary context, shared context, GL
// function loading, capability validation. Any failure in that sequence
// is unrecoverable; Open returns the error and the frontend is expected
// to abort.
type Window struct {
	backend  winsys.Backend
	settings *Settings
	layout   LayoutListener

	attribs winsys.ContextAttribs
	surface winsys.Surface
	primary *GraphicsContext

	// render is the shared context created at startup for the render
	// thread. brokered tracks every shared context handed out, so
	// Close can destroy the ones still alive before the primary.
	render   *GraphicsContext
	brokered []*GraphicsContext

	state windowState
}

// defaultContextAttribs is the fixed attribute set for every context in
// the sharing group: double-buffered 8-bit RGB with no alpha, GL 4.3
// compatibility profile, sharing enabled. Sharing must be configured
// before the primary context exists because the windowing layer applies
// it only to contexts created afterward.
func defaultContextAttribs(debug bool) winsys.ContextAttribs {
	return winsys.ContextAttribs{
		MajorVersion:     4,
		MinorVersion:     3,
		CompatProfile:    true,
		DoubleBuffer:     true,
		RedSize:          8,
		GreenSize:        8,
		BlueSize:         8,
		AlphaSize:        0,
		ShareWithCurrent: true,
		Debug:            debug,
	}
}

// Open creates the visible window, the primary context and the shared
// render context, loads GL function pointers, and validates the required
// driver capabilities. Every error it returns is a fatal startup
// condition: the environment cannot run the renderer and there is no
// degraded mode.
//
// Open must be called on the thread that will own window events. It
// returns with no context current: the presentation thread takes the
// primary context in Loop.Run, and the render thread takes the shared
// context, each with an explicit MakeCurrent.
func Open(title string, width, height int, opts ...Option) (*Window, error) {
	options := defaultOpenOptions()
	for _, opt := range opts {
		opt(&options)
	}

	backend := options.backend
	if backend == nil {
		var err error
		backend, err = winsys.Default()
		if err != nil {
			return nil, fmt.Errorf("vantage: no windowing backend: %w", err)
		}
	}
	settings := options.settings
	if settings == nil {
		settings = DefaultSettings()
	}

	w := &Window{
		backend:  backend,
		settings: settings,
		layout:   options.layout,
	}

	if err := backend.Init(); err != nil {
		return nil, w.fatal("window system init failed", err)
	}

	w.attribs = defaultContextAttribs(settings.DebugContext)
	if err := backend.Configure(w.attribs); err != nil {
		backend.Terminate()
		return nil, w.fatal("context attribute setup failed", err)
	}

	surface, err := backend.CreateSurface(winsys.SurfaceConfig{
		Title:      title,
		Width:      width,
		Height:     height,
		Fullscreen: options.fullscreen,
		Resizable:  true,
	})
	if err != nil {
		backend.Terminate()
		return nil, w.fatal("window creation failed", err)
	}
	w.surface = surface
	w.state = stateCreated

	if err := w.createPrimaryContext(); err != nil {
		w.Close()
		return nil, err
	}

	// The primary must be current while loading function pointers and
	// while the startup shared context is created against it.
	if err := w.primary.MakeCurrent(); err != nil {
		w.Close()
		return nil, w.fatal("primary context bind failed", err)
	}

	if err := backend.SwapInterval(0); err != nil {
		Logger().Warn("initial swap interval rejected", "err", err)
	}

	w.render, err = w.CreateSharedContext()
	if err != nil {
		w.Close()
		return nil, w.fatal("shared context creation failed", err)
	}

	if err := backend.LoadFunctions(); err != nil {
		w.Close()
		return nil, w.fatal("GL function loading failed", err)
	}

	if report := ValidateCapabilities(backend.Supports); !report.OK() {
		w.Close()
		return nil, w.fatal("missing required GL extensions",
			fmt.Errorf("%s", strings.Join(report.Missing, ", ")))
	}

	if err := w.primary.DoneCurrent(); err != nil {
		Logger().Warn("primary context release failed after open", "err", err)
	}

	w.OnResize()
	w.NotifyMinimumClientArea()
	backend.PumpEvents()

	Logger().Info("window created",
		"backend", backend.Name(),
		"title", title,
		"width", width,
		"height", height,
		"fullscreen", options.fullscreen,
		"version", Version,
	)
	return w, nil
}

// fatal logs a critical startup diagnostic and returns the wrapped error.
func (w *Window) fatal(msg string, err error) error {
	critical(msg, "err", err)
	return fmt.Errorf("vantage: %s: %w", msg, err)
}

// createPrimaryContext attaches the primary rendering context to the
// visible window.
func (w *Window) createPrimaryContext() error {
	native, err := w.backend.CreateContext(w.surface)
	if err != nil {
		return w.fatal("primary context creation failed", err)
	}
	w.primary = newGraphicsContext(w.backend, w.surface, native, false)
	return nil
}

// CreateSharedContext creates a context that shares GPU object
// namespaces with the primary context, attached to a fresh hidden helper
// surface. The caller owns the returned context and must destroy it
// before the window closes, or leave it to Close.
//
// The primary context must be current on the calling thread: sharing
// links the new context to whatever is current at creation time, so
// calling this without the primary current is rejected with
// ErrShareSourceNotCurrent.
func (w *Window) CreateSharedContext() (*GraphicsContext, error) {
	if w.state == stateClosed {
		return nil, ErrWindowClosed
	}
	if !w.primary.IsCurrent() {
		return nil, ErrShareSourceNotCurrent
	}

	helper, err := w.backend.CreateSurface(winsys.SurfaceConfig{Hidden: true})
	if err != nil {
		return nil, fmt.Errorf("vantage: helper surface creation failed: %w", err)
	}
	native, err := w.backend.CreateContext(helper)
	if err != nil {
		helper.Destroy()
		return nil, fmt.Errorf("vantage: shared context creation failed: %w", err)
	}

	ctx := newGraphicsContext(w.backend, helper, native, true)
	w.brokered = append(w.brokered, ctx)
	return ctx, nil
}

// RenderContext returns the shared context created at startup for the
// render thread.
func (w *Window) RenderContext() *GraphicsContext { return w.render }

// IsOpen reports whether the window is still open. The closed edge is
// observed by polling, typically once per presentation-loop iteration.
func (w *Window) IsOpen() bool {
	return w.state == stateCreated && !w.surface.ShouldClose()
}

// RequestClose marks the window as closing. Called by the event
// subsystem (or a signal handler) when the user asks to quit; the
// presentation loop observes it on its next iteration. Safe to call
// from a goroutine other than the one polling IsOpen: the closed flag
// carries its own synchronization in every backend.
func (w *Window) RequestClose() {
	if w.state == stateCreated {
		w.surface.RequestClose()
	}
}

// PumpEvents lets the window system process pending events. Must be
// called on the thread that opened the window.
func (w *Window) PumpEvents() {
	if w.state == stateCreated {
		w.backend.PumpEvents()
	}
}

// ApplyFullscreen toggles fullscreen mode and propagates the resulting
// drawable size.
func (w *Window) ApplyFullscreen(enable bool) error {
	if w.state != stateCreated {
		return ErrWindowClosed
	}
	if err := w.surface.SetFullscreen(enable); err != nil {
		return fmt.Errorf("vantage: fullscreen toggle failed: %w", err)
	}
	w.OnResize()
	return nil
}

// OnResize notifies the rendering layer of the current drawable size.
// Called after creation and after every window resize.
func (w *Window) OnResize() {
	if w.layout == nil || w.state != stateCreated {
		return
	}
	dw, dh := w.surface.DrawableSize()
	w.layout.OnDrawableResize(dw, dh)
}

// NotifyMinimumClientArea applies the configured minimum client area to
// the window and tells the layout collaborator about it.
func (w *Window) NotifyMinimumClientArea() {
	if w.state != stateCreated {
		return
	}
	minW, minH := w.settings.MinClientWidth, w.settings.MinClientHeight
	w.surface.SetMinimumSize(minW, minH)
	if w.layout != nil {
		w.layout.OnMinimumClientArea(minW, minH)
	}
}

// Close tears the window down in strict dependency order: every shared
// context still alive first, then the primary context, then the visible
// window, then the window system. Contexts must not outlive the surfaces
// they attach to, and shared contexts must not outlive the primary they
// share namespaces with. Close is idempotent; the window is unusable
// afterward.
func (w *Window) Close() {
	if w.state == stateClosed {
		return
	}
	for _, ctx := range w.brokered {
		ctx.Destroy()
	}
	w.brokered = nil
	w.render = nil
	if w.primary != nil {
		w.primary.Destroy()
		w.primary = nil
	}
	if w.surface != nil {
		w.surface.Destroy()
		w.surface = nil
	}
	w.backend.Terminate()
	w.state = stateClosed
}
