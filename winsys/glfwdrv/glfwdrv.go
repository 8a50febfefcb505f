// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

// Package glfwdrv implements the winsys backend on GLFW.
//
// Import it for side effects to register the backend:
//
//	import _ "github.com/vantagegl/vantage/winsys/glfwdrv"
//
// GLFW creates a window and its context together, so CreateContext
// returns a handle to the context the window was created with, and the
// "share with current" attribute is honored by passing the window whose
// context is current on the calling thread as the share parameter of the
// next window creation.
package glfwdrv

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vantagegl/vantage/winsys"
)

func init() {
	winsys.Register("glfw", 50, func() winsys.Backend { return &Backend{} }, nil)
}

// Backend is the GLFW windowing backend.
type Backend struct {
	attribs    winsys.ContextAttribs
	configured bool

	// mu guards current, which MakeCurrent updates from whichever
	// thread is taking or releasing a context while the creation
	// thread reads it to resolve the share target.
	mu      sync.Mutex
	current *glfw.Window
}

// Name returns "glfw".
func (b *Backend) Name() string { return "glfw" }

// Init initializes GLFW. Must run on the main thread.
func (b *Backend) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfwdrv: init: %w", err)
	}
	return nil
}

// Terminate shuts GLFW down.
func (b *Backend) Terminate() {
	glfw.Terminate()
}

// Configure records the context attributes applied as window hints on
// every subsequent window creation.
func (b *Backend) Configure(a winsys.ContextAttribs) error {
	b.attribs = a
	b.configured = true
	return nil
}

// shareTarget returns the window whose context is current on some
// thread, or nil when nothing is current.
func (b *Backend) shareTarget() *glfw.Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *Backend) setCurrent(w *glfw.Window) {
	b.mu.Lock()
	b.current = w
	b.mu.Unlock()
}

// CreateSurface creates a GLFW window, and with it the window's context.
// Hidden surfaces are clamped to 1x1 because GLFW rejects zero-size
// windows.
func (b *Backend) CreateSurface(cfg winsys.SurfaceConfig) (winsys.Surface, error) {
	if !b.configured {
		return nil, fmt.Errorf("glfwdrv: CreateSurface before Configure")
	}
	a := b.attribs

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, a.MajorVersion)
	glfw.WindowHint(glfw.ContextVersionMinor, a.MinorVersion)
	if a.CompatProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.RedBits, a.RedSize)
	glfw.WindowHint(glfw.GreenBits, a.GreenSize)
	glfw.WindowHint(glfw.BlueBits, a.BlueSize)
	glfw.WindowHint(glfw.AlphaBits, a.AlphaSize)
	if a.DoubleBuffer {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	} else {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.False)
	}
	if a.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	width, height := cfg.Width, cfg.Height
	if cfg.Hidden {
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
	}

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	var share *glfw.Window
	if a.ShareWithCurrent {
		share = b.shareTarget()
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, share)
	if err != nil {
		return nil, fmt.Errorf("glfwdrv: create window: %w", err)
	}
	return &surface{win: win, width: width, height: height}, nil
}

// CreateContext returns a handle to the context the surface's window was
// created with.
func (b *Backend) CreateContext(s winsys.Surface) (winsys.NativeContext, error) {
	surf := s.(*surface)
	if surf.contextClaimed {
		return nil, fmt.Errorf("glfwdrv: surface context already claimed")
	}
	surf.contextClaimed = true
	return &nativeContext{win: surf.win}, nil
}

// MakeCurrent binds the surface's context to the calling thread; a nil
// ctx releases the thread's current context.
func (b *Backend) MakeCurrent(surf winsys.Surface, ctx winsys.NativeContext) error {
	if ctx == nil {
		glfw.DetachCurrentContext()
		b.setCurrent(nil)
		return nil
	}
	win := ctx.(*nativeContext).win
	win.MakeContextCurrent()
	b.setCurrent(win)
	return nil
}

// SwapInterval sets the swap interval for the current context.
func (b *Backend) SwapInterval(interval int) error {
	glfw.SwapInterval(interval)
	return nil
}

// LoadFunctions loads GL function pointers. Requires a current context.
func (b *Backend) LoadFunctions() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glfwdrv: load GL functions: %w", err)
	}
	return nil
}

// Supports reports whether the driver exposes the named GL extension.
func (b *Backend) Supports(name string) bool {
	return glfw.ExtensionSupported(name)
}

// PumpEvents processes pending window-system events.
func (b *Backend) PumpEvents() {
	glfw.PollEvents()
}

// surface wraps one GLFW window.
type surface struct {
	win            *glfw.Window
	width, height  int
	contextClaimed bool
}

func (s *surface) Show() { s.win.Show() }
func (s *surface) Hide() { s.win.Hide() }

func (s *surface) SetTitle(title string) { s.win.SetTitle(title) }

func (s *surface) SetFullscreen(enable bool) error {
	if enable {
		monitor := glfw.GetPrimaryMonitor()
		if monitor == nil {
			return fmt.Errorf("glfwdrv: no primary monitor")
		}
		// Snapshot the windowed size so leaving fullscreen restores
		// what the user last had, not the creation size.
		if s.win.GetMonitor() == nil {
			s.width, s.height = s.win.GetSize()
		}
		mode := monitor.GetVideoMode()
		s.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return nil
	}
	s.win.SetMonitor(nil, 0, 0, s.width, s.height, glfw.DontCare)
	return nil
}

func (s *surface) SetMinimumSize(width, height int) {
	s.win.SetSizeLimits(width, height, glfw.DontCare, glfw.DontCare)
}

func (s *surface) Size() (int, int) {
	return s.win.GetSize()
}

func (s *surface) DrawableSize() (int, int) {
	return s.win.GetFramebufferSize()
}

func (s *surface) Swap() { s.win.SwapBuffers() }

func (s *surface) RequestClose() { s.win.SetShouldClose(true) }

func (s *surface) ShouldClose() bool { return s.win.ShouldClose() }

func (s *surface) Destroy() { s.win.Destroy() }

// nativeContext is the context of one GLFW window.
type nativeContext struct {
	win *glfw.Window
}

// Destroy is a no-op: a GLFW context is destroyed with its window.
func (c *nativeContext) Destroy() {}
