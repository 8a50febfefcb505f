// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

// Package vantage manages the lifecycle of a presentation window and its
// OpenGL rendering contexts for real-time applications that render on a
// background thread while consuming window events on the thread that owns
// the window.
//
// # Overview
//
// vantage owns exactly one visible window per process, plus the invisible
// helper windows needed to host additional contexts that share GPU object
// namespaces (textures, buffers, programs) with the primary context. It
// validates that the driver exposes a fixed set of required capabilities
// before any rendering occurs, and runs the blocking presentation loop
// that alternates between asking a frame producer for a frame and swapping
// the visible buffer.
//
// # Quick Start
//
//	import (
//		"github.com/vantagegl/vantage"
//		_ "github.com/vantagegl/vantage/winsys/sdldrv" // register SDL2 backend
//	)
//
//	win, err := vantage.Open("My App", 1280, 720)
//	if err != nil {
//		// Unrecoverable: window, context, or a required GL
//		// capability is unavailable on this machine.
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	loop := vantage.NewLoop(win, producer)
//	go func() {
//		// A current GL context is bound to an OS thread; the
//		// presentation goroutine must not migrate.
//		runtime.LockOSThread()
//		loop.Run()
//	}()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Window, GraphicsContext, Loop, Settings, CapabilityReport
//   - winsys: the windowing-layer abstraction and backend registry
//   - winsys/sdldrv, winsys/glfwdrv: SDL2 and GLFW backends
//   - config: YAML configuration for frontends
//
// # Threading
//
// A context is current on at most one thread at a time. Moving the primary
// context from the thread that opened the window to the presentation
// thread is always an explicit DoneCurrent/MakeCurrent pair; vantage never
// migrates a context behind the caller's back.
//
// # Error Model
//
// Setup failures (window creation, context creation, function-pointer
// loading, missing capabilities) are unrecoverable: they are logged at
// critical severity and returned as errors for the frontend to abort on.
// Runtime bind failures are returned to the caller, which may retry on the
// next loop iteration.
package vantage

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
