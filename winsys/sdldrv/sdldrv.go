// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

// Package sdldrv implements the winsys backend on SDL2.
//
// Import it for side effects to register the backend:
//
//	import _ "github.com/vantagegl/vantage/winsys/sdldrv"
package sdldrv

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vantagegl/vantage/winsys"
)

func init() {
	winsys.Register("sdl", 100, func() winsys.Backend { return &Backend{} }, nil)
}

// Backend is the SDL2 windowing backend.
type Backend struct {
	configured bool
}

// Name returns "sdl".
func (b *Backend) Name() string { return "sdl" }

// Init initializes the SDL2 video and event subsystems. Must run on the
// thread that owns window events; lock the OS thread before calling.
func (b *Backend) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdldrv: init: %w", err)
	}
	return nil
}

// Terminate shuts SDL2 down.
func (b *Backend) Terminate() {
	sdl.Quit()
}

// Configure applies the context attributes. SDL reads the pixel-format
// attributes when a window is created and the context attributes when a
// context is created, so everything must be in place before the first
// CreateSurface call.
func (b *Backend) Configure(a winsys.ContextAttribs) error {
	type attrib struct {
		attr  sdl.GLattr
		value int
	}
	profile := sdl.GL_CONTEXT_PROFILE_CORE
	if a.CompatProfile {
		profile = sdl.GL_CONTEXT_PROFILE_COMPATIBILITY
	}
	doubleBuffer := 0
	if a.DoubleBuffer {
		doubleBuffer = 1
	}
	share := 0
	if a.ShareWithCurrent {
		share = 1
	}
	attribs := []attrib{
		{sdl.GL_CONTEXT_MAJOR_VERSION, a.MajorVersion},
		{sdl.GL_CONTEXT_MINOR_VERSION, a.MinorVersion},
		{sdl.GL_CONTEXT_PROFILE_MASK, profile},
		{sdl.GL_DOUBLEBUFFER, doubleBuffer},
		{sdl.GL_RED_SIZE, a.RedSize},
		{sdl.GL_GREEN_SIZE, a.GreenSize},
		{sdl.GL_BLUE_SIZE, a.BlueSize},
		{sdl.GL_ALPHA_SIZE, a.AlphaSize},
		{sdl.GL_SHARE_WITH_CURRENT_CONTEXT, share},
	}
	if a.Debug {
		attribs = append(attribs, attrib{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG})
	}
	for _, at := range attribs {
		if err := sdl.GLSetAttribute(at.attr, at.value); err != nil {
			return fmt.Errorf("sdldrv: set attribute %d=%d: %w", at.attr, at.value, err)
		}
	}
	b.configured = true
	return nil
}

// CreateSurface creates an SDL window. Hidden surfaces are zero-size
// helper windows used only as context attachment points.
func (b *Backend) CreateSurface(cfg winsys.SurfaceConfig) (winsys.Surface, error) {
	if !b.configured {
		return nil, fmt.Errorf("sdldrv: CreateSurface before Configure")
	}
	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("sdldrv: create window: %w", err)
	}
	return &surface{win: win}, nil
}

// CreateContext creates a GL context attached to the given surface. With
// sharing configured, SDL links it to whatever context is current on the
// calling thread. SDL leaves a freshly created context current as a side
// effect; CreateContext undoes that so current/not-current transitions
// stay explicit and owned by the caller.
func (b *Backend) CreateContext(s winsys.Surface) (winsys.NativeContext, error) {
	win := s.(*surface).win
	prevWin, _ := sdl.GLGetCurrentWindow()
	prevCtx, _ := sdl.GLGetCurrentContext()

	ctx, err := win.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("sdldrv: create context: %w", err)
	}

	var restoreErr error
	if prevWin != nil && prevCtx != nil {
		restoreErr = prevWin.GLMakeCurrent(prevCtx)
	} else {
		restoreErr = win.GLMakeCurrent(nil)
	}
	if restoreErr != nil {
		sdl.GLDeleteContext(ctx)
		return nil, fmt.Errorf("sdldrv: restore current context: %w", restoreErr)
	}
	return &nativeContext{ctx: ctx}, nil
}

// MakeCurrent binds ctx against surf on the calling thread; a nil ctx
// releases the thread's current context.
func (b *Backend) MakeCurrent(surf winsys.Surface, ctx winsys.NativeContext) error {
	win := surf.(*surface).win
	if ctx == nil {
		if err := win.GLMakeCurrent(nil); err != nil {
			return fmt.Errorf("sdldrv: release context: %w", err)
		}
		return nil
	}
	if err := win.GLMakeCurrent(ctx.(*nativeContext).ctx); err != nil {
		return fmt.Errorf("sdldrv: make current: %w", err)
	}
	return nil
}

// SwapInterval sets the swap interval for the current context.
func (b *Backend) SwapInterval(interval int) error {
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		return fmt.Errorf("sdldrv: swap interval %d: %w", interval, err)
	}
	return nil
}

// LoadFunctions loads GL function pointers through SDL's loader.
// Requires a current context.
func (b *Backend) LoadFunctions() error {
	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		return fmt.Errorf("sdldrv: load GL functions: %w", err)
	}
	return nil
}

// Supports reports whether the driver exposes the named GL extension.
func (b *Backend) Supports(name string) bool {
	return sdl.GLExtensionSupported(name)
}

// PumpEvents processes pending window-system events without dispatching
// them.
func (b *Backend) PumpEvents() {
	sdl.PumpEvents()
}

// surface wraps one SDL window. closed is atomic because RequestClose
// may come from a signal-handling goroutine while the presentation
// thread polls ShouldClose.
type surface struct {
	win    *sdl.Window
	closed atomic.Bool
}

func (s *surface) Show() { s.win.Show() }
func (s *surface) Hide() { s.win.Hide() }

func (s *surface) SetTitle(title string) { s.win.SetTitle(title) }

func (s *surface) SetFullscreen(enable bool) error {
	var flags uint32
	if enable {
		flags = sdl.WINDOW_FULLSCREEN
	}
	if err := s.win.SetFullscreen(flags); err != nil {
		return fmt.Errorf("sdldrv: set fullscreen: %w", err)
	}
	return nil
}

func (s *surface) SetMinimumSize(width, height int) {
	s.win.SetMinimumSize(int32(width), int32(height))
}

func (s *surface) Size() (int, int) {
	w, h := s.win.GetSize()
	return int(w), int(h)
}

func (s *surface) DrawableSize() (int, int) {
	w, h := s.win.GLGetDrawableSize()
	return int(w), int(h)
}

func (s *surface) Swap() { s.win.GLSwap() }

// RequestClose is called by the event subsystem when it sees a close
// event for this window; SDL has no per-window close flag of its own.
func (s *surface) RequestClose() { s.closed.Store(true) }

func (s *surface) ShouldClose() bool { return s.closed.Load() }

func (s *surface) Destroy() {
	// Nothing actionable if SDL reports a failure at teardown.
	_ = s.win.Destroy()
}

// nativeContext wraps one SDL GL context.
type nativeContext struct {
	ctx sdl.GLContext
}

// Destroy deletes the native context. It must not be current on any
// thread.
func (c *nativeContext) Destroy() {
	sdl.GLDeleteContext(c.ctx)
}
