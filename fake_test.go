// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/vantagegl/vantage/winsys"
)

// fakeBackend is an in-memory winsys.Backend recording every operation
// in a trace, so tests can assert ordering invariants without a window
// system.
type fakeBackend struct {
	trace []string

	attribs    winsys.ContextAttribs
	configured bool
	terminated bool

	initErr     error
	surfaceErr  error
	contextErr  error
	bindErr     error
	loadErr     error
	unsupported map[string]bool

	current      *fakeContext
	surfaceCount int
	contextCount int
	intervals    []int
	pumped       int
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) record(format string, args ...any) {
	b.trace = append(b.trace, fmt.Sprintf(format, args...))
}

func (b *fakeBackend) Init() error {
	b.record("init")
	return b.initErr
}

func (b *fakeBackend) Terminate() {
	b.record("terminate")
	b.terminated = true
}

func (b *fakeBackend) Configure(a winsys.ContextAttribs) error {
	if b.surfaceCount > 0 || b.contextCount > 0 {
		return errors.New("fake: Configure after creation")
	}
	b.attribs = a
	b.configured = true
	b.record("configure")
	return nil
}

func (b *fakeBackend) CreateSurface(cfg winsys.SurfaceConfig) (winsys.Surface, error) {
	if !b.configured {
		return nil, errors.New("fake: CreateSurface before Configure")
	}
	if b.surfaceErr != nil {
		return nil, b.surfaceErr
	}
	b.surfaceCount++
	id := fmt.Sprintf("window-%d", b.surfaceCount)
	if cfg.Hidden {
		id = fmt.Sprintf("helper-%d", b.surfaceCount)
	}
	s := &fakeSurface{
		backend: b,
		id:      id,
		hidden:  cfg.Hidden,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	b.record("create-surface:%s", id)
	return s, nil
}

func (b *fakeBackend) CreateContext(s winsys.Surface) (winsys.NativeContext, error) {
	if b.contextErr != nil {
		return nil, b.contextErr
	}
	b.contextCount++
	ctx := &fakeContext{
		backend: b,
		id:      fmt.Sprintf("ctx-%d", b.contextCount),
		surface: s.(*fakeSurface).id,
	}
	if b.attribs.ShareWithCurrent && b.current != nil {
		ctx.sharedWith = b.current.id
	}
	b.record("create-context:%s on %s", ctx.id, ctx.surface)
	return ctx, nil
}

func (b *fakeBackend) MakeCurrent(surf winsys.Surface, ctx winsys.NativeContext) error {
	if b.bindErr != nil {
		return b.bindErr
	}
	if ctx == nil {
		b.current = nil
		b.record("release-current")
		return nil
	}
	b.current = ctx.(*fakeContext)
	b.record("make-current:%s", b.current.id)
	return nil
}

func (b *fakeBackend) SwapInterval(interval int) error {
	b.intervals = append(b.intervals, interval)
	return nil
}

func (b *fakeBackend) LoadFunctions() error {
	b.record("load-functions")
	return b.loadErr
}

func (b *fakeBackend) Supports(name string) bool {
	return !b.unsupported[name]
}

func (b *fakeBackend) PumpEvents() { b.pumped++ }

// fakeSurface is one fake window.
type fakeSurface struct {
	backend *fakeBackend
	id      string
	hidden  bool

	width, height int
	minW, minH    int
	fullscreen    bool
	shown         bool
	destroyed     bool
	swaps         int

	// closed is atomic: close requests may arrive from another
	// goroutine while the presentation loop polls it.
	closed atomic.Bool
}

func (s *fakeSurface) Show() { s.shown = true }
func (s *fakeSurface) Hide() { s.shown = false }

func (s *fakeSurface) SetTitle(string) {}

func (s *fakeSurface) SetFullscreen(enable bool) error {
	s.fullscreen = enable
	return nil
}

func (s *fakeSurface) SetMinimumSize(w, h int) { s.minW, s.minH = w, h }

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

// DrawableSize doubles Size, imitating a 2x high-DPI display so tests
// can tell the two apart.
func (s *fakeSurface) DrawableSize() (int, int) { return s.width * 2, s.height * 2 }

func (s *fakeSurface) Swap() {
	s.swaps++
	s.backend.record("swap:%s", s.id)
}

func (s *fakeSurface) RequestClose() { s.closed.Store(true) }

func (s *fakeSurface) ShouldClose() bool { return s.closed.Load() }

func (s *fakeSurface) Destroy() {
	s.destroyed = true
	s.backend.record("destroy-surface:%s", s.id)
}

// fakeContext is one fake rendering context.
type fakeContext struct {
	backend    *fakeBackend
	id         string
	surface    string
	sharedWith string
	destroyed  bool
}

func (c *fakeContext) Destroy() {
	c.destroyed = true
	c.backend.record("destroy-context:%s", c.id)
}

// newFakeBackend returns a fake backend with every capability present.
func newFakeBackend() *fakeBackend {
	return &fakeBackend{unsupported: map[string]bool{}}
}

// traceIndex returns the position of the first trace entry with the
// given prefix, or -1.
func (b *fakeBackend) traceIndex(prefix string) int {
	for i, entry := range b.trace {
		if len(entry) >= len(prefix) && entry[:len(prefix)] == prefix {
			return i
		}
	}
	return -1
}

// recordedLayout captures layout notifications.
type recordedLayout struct {
	drawable [][2]int
	minArea  [][2]int
}

func (l *recordedLayout) OnDrawableResize(w, h int)    { l.drawable = append(l.drawable, [2]int{w, h}) }
func (l *recordedLayout) OnMinimumClientArea(w, h int) { l.minArea = append(l.minArea, [2]int{w, h}) }
