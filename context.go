// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import (
	"fmt"

	"github.com/vantagegl/vantage/winsys"
)

// GraphicsContext wraps one native rendering context bound to a surface,
// visible or hidden, fixed at creation time. A context is current on at
// most one thread at a time; MakeCurrent and DoneCurrent must only be
// called by the thread performing the transition. There is no internal
// locking: the current/not-current discipline is the synchronization.
type GraphicsContext struct {
	backend winsys.Backend
	surface winsys.Surface
	native  winsys.NativeContext

	// ownsSurface is set for contexts attached to a helper surface,
	// which lives and dies with the context.
	ownsSurface bool

	current   bool
	destroyed bool
}

func newGraphicsContext(b winsys.Backend, s winsys.Surface, n winsys.NativeContext, ownsSurface bool) *GraphicsContext {
	return &GraphicsContext{backend: b, surface: s, native: n, ownsSurface: ownsSurface}
}

// MakeCurrent binds the context to the calling thread. It is idempotent:
// if the context is already current, nothing happens and no native call
// is made. A native bind failure is returned wrapped in ErrContextBind
// and leaves the context not current.
func (c *GraphicsContext) MakeCurrent() error {
	if c.current {
		return nil
	}
	if c.destroyed {
		return fmt.Errorf("%w: context destroyed", ErrContextBind)
	}
	if err := c.backend.MakeCurrent(c.surface, c.native); err != nil {
		return fmt.Errorf("%w: %v", ErrContextBind, err)
	}
	c.current = true
	return nil
}

// DoneCurrent releases the context from the calling thread. It is
// idempotent: releasing a context that is not current is a no-op and
// never errors.
func (c *GraphicsContext) DoneCurrent() error {
	if !c.current {
		return nil
	}
	if err := c.backend.MakeCurrent(c.surface, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrContextBind, err)
	}
	c.current = false
	return nil
}

// IsCurrent reports whether the context is current on the thread that
// last transitioned it.
func (c *GraphicsContext) IsCurrent() bool { return c.current }

// Destroy releases the context if the calling thread still holds it,
// destroys the native context, and then destroys the helper surface if
// the context owns one. Destroy is idempotent.
//
// The owner must sequence Destroy on the thread that last held the
// context current; a context current on another thread cannot be
// released from here.
func (c *GraphicsContext) Destroy() {
	if c.destroyed {
		return
	}
	if err := c.DoneCurrent(); err != nil {
		Logger().Warn("context release failed during destroy", "err", err)
	}
	c.native.Destroy()
	if c.ownsSurface {
		c.surface.Destroy()
	}
	c.destroyed = true
}
