// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import "time"

// FrameProducer is the external render producer. TryPresent asks it to
// hand over a frame within the timeout; it reports whether a frame was
// consumed. Doing nothing inside the bound is legitimate — the producer
// may simply have no frame ready.
type FrameProducer interface {
	TryPresent(timeout time.Duration) bool
}

// FrameProducerFunc adapts a function to the FrameProducer interface.
type FrameProducerFunc func(timeout time.Duration) bool

// TryPresent calls f.
func (f FrameProducerFunc) TryPresent(timeout time.Duration) bool { return f(timeout) }

// Loop is the blocking presentation loop. It owns no cancellation flag:
// its only termination condition is the window's closed state, polled
// once per iteration, so the closing edge may be observed up to one
// iteration late.
type Loop struct {
	win      *Window
	producer FrameProducer
	timeout  time.Duration
}

// NewLoop binds a presentation loop to a window and a frame producer.
// The per-iteration producer timeout comes from the window's settings.
func NewLoop(w *Window, p FrameProducer) *Loop {
	timeout := w.settings.PresentTimeout
	if timeout <= 0 {
		timeout = DefaultPresentTimeout
	}
	return &Loop{win: w, producer: p, timeout: timeout}
}

// Run makes the primary context current on the calling thread and
// presents until the window closes, then releases the context. The vsync
// toggle is read once per Run invocation, not per iteration; flipping it
// takes effect on the next Run.
//
// Each iteration asks the producer for a frame within the timeout and
// then swaps the visible buffer unconditionally: the compositor expects
// presentation to keep flowing even when no new frame is ready.
//
// Run is intended for a dedicated presentation thread. The caller must
// ensure the primary context is not current elsewhere; in the usual
// deployment Open has already released it on the opening thread.
func (l *Loop) Run() error {
	if err := l.win.primary.MakeCurrent(); err != nil {
		return err
	}

	interval := 0
	if l.win.settings.VSync() {
		interval = 1
	}
	if err := l.win.backend.SwapInterval(interval); err != nil {
		Logger().Warn("swap interval rejected", "interval", interval, "err", err)
	}
	Logger().Debug("presentation loop started", "vsync", interval == 1, "timeout", l.timeout)

	for l.win.IsOpen() {
		l.producer.TryPresent(l.timeout)
		l.win.surface.Swap()
	}

	return l.win.primary.DoneCurrent()
}
