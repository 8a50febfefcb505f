// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import (
	"sync/atomic"
	"time"
)

// Default settings values.
const (
	DefaultMinClientWidth  = 640
	DefaultMinClientHeight = 360
	DefaultPresentTimeout  = 100 * time.Millisecond
)

// Settings holds the configuration vantage consumes. The startup fields
// are read at well-defined points and never written by vantage:
// DebugContext when the window opens, the minimum client area after open
// and after every resize, PresentTimeout when a Loop is created.
//
// The vsync toggle is live: it is re-read at the start of every
// Loop.Run invocation, so a frontend may flip it between runs from any
// goroutine.
type Settings struct {
	// DebugContext requests a debug rendering context.
	DebugContext bool

	// MinClientWidth and MinClientHeight bound how small the user may
	// make the window's client area.
	MinClientWidth  int
	MinClientHeight int

	// PresentTimeout bounds how long one presentation-loop iteration
	// waits for the frame producer.
	PresentTimeout time.Duration

	vsync atomic.Bool
}

// DefaultSettings returns settings with documented defaults and vsync
// disabled.
func DefaultSettings() *Settings {
	return &Settings{
		MinClientWidth:  DefaultMinClientWidth,
		MinClientHeight: DefaultMinClientHeight,
		PresentTimeout:  DefaultPresentTimeout,
	}
}

// SetVSync enables or disables vsync. Safe for concurrent use; takes
// effect at the next Loop.Run invocation, not mid-run.
func (s *Settings) SetVSync(on bool) { s.vsync.Store(on) }

// VSync reports the current vsync toggle. Safe for concurrent use.
func (s *Settings) VSync() bool { return s.vsync.Load() }
