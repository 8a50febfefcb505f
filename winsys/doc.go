// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

// Package winsys defines the windowing-layer abstraction that vantage
// builds on.
//
// A Backend encapsulates one window system binding (SDL2, GLFW) and is
// responsible for creating surfaces (visible windows and hidden helper
// windows), creating rendering contexts against those surfaces, moving
// contexts between threads, and loading GL function pointers.
//
// # Backends
//
// Backends register themselves from init() functions:
//
//	import _ "github.com/vantagegl/vantage/winsys/sdldrv"
//
// and are selected by name or by priority:
//
//	b := winsys.Default()          // highest-priority registered backend
//	b := winsys.Get("glfw")        // a specific backend
//
// # Context Attributes
//
// ContextAttribs is an explicit value handed to the backend exactly once,
// before any surface or context in the sharing group is created. Some
// window systems apply attributes like "share with the currently current
// context" only to contexts created afterward; passing the attributes as
// a value up front makes that ordering requirement part of the API
// instead of ambient process state.
package winsys
