// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package winsys

// SurfaceConfig describes a window surface to create.
//
// A hidden surface is a zero-size helper window that exists only to give
// a rendering context a valid attachment point. It is never shown and
// never receives input.
type SurfaceConfig struct {
	// Title is the window title. Ignored for hidden surfaces.
	Title string

	// Width and Height are the requested client-area dimensions in
	// pixels. Zero is valid for hidden surfaces.
	Width  int
	Height int

	// Fullscreen requests an initially fullscreen window.
	Fullscreen bool

	// Hidden requests an invisible helper window.
	Hidden bool

	// Resizable allows the user to resize the window.
	Resizable bool
}

// ContextAttribs fixes the surface and context attributes for every
// context created by a backend. The attributes are applied once, before
// the first surface or context of the sharing group is created; backends
// must apply ShareWithCurrent to every context created afterward.
type ContextAttribs struct {
	// MajorVersion and MinorVersion select the GL version.
	MajorVersion int
	MinorVersion int

	// CompatProfile selects the compatibility profile instead of core.
	CompatProfile bool

	// DoubleBuffer enables double buffering on window surfaces.
	DoubleBuffer bool

	// RedSize, GreenSize, BlueSize and AlphaSize are the channel depths
	// in bits.
	RedSize   int
	GreenSize int
	BlueSize  int
	AlphaSize int

	// ShareWithCurrent makes every new context share GPU object
	// namespaces (textures, buffers, programs) with whichever context
	// is current on the creating thread at creation time.
	ShareWithCurrent bool

	// Debug requests a debug context.
	Debug bool
}

// Backend is one window system binding. Implementations are not safe for
// concurrent use; all calls except MakeCurrent are expected on the thread
// that called Init, and MakeCurrent is called by whichever thread is
// taking or releasing a context.
type Backend interface {
	// Name returns the registered backend name.
	Name() string

	// Init initializes the window system. Must be called before any
	// other method, on the thread that will own window events.
	Init() error

	// Terminate shuts the window system down. No surface or context
	// may be used afterward.
	Terminate()

	// Configure fixes the context attributes for every surface and
	// context created later. Called exactly once, after Init and
	// before the first CreateSurface.
	Configure(ContextAttribs) error

	// CreateSurface creates a window surface.
	CreateSurface(SurfaceConfig) (Surface, error)

	// CreateContext creates a rendering context attached to the given
	// surface, honoring the configured attributes.
	CreateContext(Surface) (NativeContext, error)

	// MakeCurrent binds ctx to the calling thread against surf. A nil
	// ctx releases whatever context the calling thread holds.
	MakeCurrent(surf Surface, ctx NativeContext) error

	// SwapInterval sets the buffer-swap policy for the context current
	// on the calling thread: 0 presents immediately, 1 waits for the
	// display refresh.
	SwapInterval(interval int) error

	// LoadFunctions loads GL function pointers through the window
	// system's loader. Requires a current context.
	LoadFunctions() error

	// Supports reports whether the driver exposes the named extension.
	// Requires loaded function pointers.
	Supports(name string) bool

	// PumpEvents lets the window system process pending events without
	// dispatching them.
	PumpEvents()
}

// Surface is one native window, visible or hidden.
type Surface interface {
	// Show makes the surface visible.
	Show()

	// Hide hides the surface.
	Hide()

	// SetTitle sets the window title.
	SetTitle(title string)

	// SetFullscreen toggles fullscreen mode.
	SetFullscreen(enable bool) error

	// SetMinimumSize sets the minimum client-area size.
	SetMinimumSize(width, height int)

	// Size returns the client-area size in window coordinates.
	Size() (width, height int)

	// DrawableSize returns the drawable size in pixels, which differs
	// from Size on high-DPI displays.
	DrawableSize() (width, height int)

	// Swap presents the back buffer. Requires the surface's context
	// current on the calling thread.
	Swap()

	// RequestClose marks the surface as closing. Called by the event
	// subsystem when the user closes the window, possibly from a
	// goroutine other than the one polling ShouldClose; the flag must
	// carry its own synchronization.
	RequestClose()

	// ShouldClose reports whether the surface has been asked to close.
	ShouldClose() bool

	// Destroy destroys the native window. The surface must not be used
	// afterward.
	Destroy()
}

// NativeContext is a rendering context handle owned by the backend.
type NativeContext interface {
	// Destroy destroys the native context. The context must not be
	// current on any thread.
	Destroy()
}
