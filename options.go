// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import "github.com/vantagegl/vantage/winsys"

// Option configures a Window during Open.
// Use functional options to customize Window behavior.
//
// Example:
//
//	// Default backend, default settings
//	win, err := vantage.Open("App", 1280, 720)
//
//	// Explicit backend and fullscreen startup
//	win, err := vantage.Open("App", 1280, 720,
//		vantage.WithBackend(b),
//		vantage.WithFullscreen(true))
type Option func(*openOptions)

// openOptions holds optional configuration for Open.
type openOptions struct {
	backend    winsys.Backend
	settings   *Settings
	fullscreen bool
	layout     LayoutListener
}

// defaultOpenOptions returns the default open options.
func defaultOpenOptions() openOptions {
	return openOptions{
		backend:  nil, // Resolved via winsys.Default if nil
		settings: nil, // Replaced by DefaultSettings if nil
	}
}

// WithBackend selects a specific windowing backend instead of the
// highest-priority registered one. Use this for dependency injection of
// test backends.
func WithBackend(b winsys.Backend) Option {
	return func(o *openOptions) {
		o.backend = b
	}
}

// WithSettings provides the configuration the window reads. The window
// keeps the pointer: the vsync field stays live for later Loop runs.
func WithSettings(s *Settings) Option {
	return func(o *openOptions) {
		o.settings = s
	}
}

// WithFullscreen opens the window in fullscreen mode.
func WithFullscreen(enable bool) Option {
	return func(o *openOptions) {
		o.fullscreen = enable
	}
}

// WithLayoutListener registers the collaborator notified of drawable-size
// and minimum-client-area changes.
func WithLayoutListener(l LayoutListener) Option {
	return func(o *openOptions) {
		o.layout = l
	}
}
