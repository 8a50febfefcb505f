// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import "errors"

// Errors.
var (
	// ErrContextBind is returned when a native make-current or release
	// call fails at runtime. Unlike setup failures this is not fatal;
	// the caller may retry on its next iteration.
	ErrContextBind = errors.New("vantage: context bind failed")

	// ErrShareSourceNotCurrent is returned by CreateSharedContext when
	// the primary context is not current on the calling thread. Context
	// sharing only links the new context to whatever is current at
	// creation time, so creating one without the primary current would
	// silently produce an unshared context.
	ErrShareSourceNotCurrent = errors.New("vantage: primary context not current on this thread")

	// ErrWindowClosed is returned for operations on a closed window.
	ErrWindowClosed = errors.New("vantage: window is closed")
)
