// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LevelCritical marks unrecoverable startup failures: window or context
// creation failures and missing required GL capabilities. Frontends that
// route vantage logs should map it above slog.LevelError.
const LevelCritical = slog.LevelError + 4

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for vantage and all its sub-packages.
// By default, vantage produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by vantage:
//   - [slog.LevelDebug]: internal diagnostics (context binds, swap interval)
//   - [slog.LevelInfo]: lifecycle events (window created, startup banner)
//   - [slog.LevelWarn]: non-fatal issues (release errors during teardown)
//   - [LevelCritical]: unrecoverable startup failures
//
// Example:
//
//	// Enable info-level logging to stderr:
//	vantage.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by vantage.
// Sub-packages (winsys backends, config) call this to share the same
// logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// critical logs an unrecoverable startup failure.
func critical(msg string, args ...any) {
	Logger().Log(context.Background(), LevelCritical, msg, args...)
}
