// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := Default()
	if cfg.Window.Title != def.Window.Title {
		t.Errorf("Title = %q, want %q", cfg.Window.Title, def.Window.Title)
	}
	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("size = %dx%d, want %dx%d",
			cfg.Window.Width, cfg.Window.Height, def.Window.Width, def.Window.Height)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
backend: glfw
window:
  title: Demo
  width: 1920
  height: 1080
  fullscreen: true
renderer:
  vsync: true
  debug_context: true
  present_timeout_ms: 50
layout:
  min_client_width: 800
  min_client_height: 450
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != "glfw" {
		t.Errorf("Backend = %q, want glfw", cfg.Backend)
	}
	if cfg.Window.Title != "Demo" || cfg.Window.Width != 1920 || !cfg.Window.Fullscreen {
		t.Errorf("window = %+v", cfg.Window)
	}
	if !cfg.Renderer.VSync || !cfg.Renderer.DebugContext || cfg.Renderer.PresentTimeoutMS != 50 {
		t.Errorf("renderer = %+v", cfg.Renderer)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "window:\n  title: Partial\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Title != "Partial" {
		t.Errorf("Title = %q, want Partial", cfg.Window.Title)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("Width = %d, want default %d", cfg.Window.Width, Default().Window.Width)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "window: [not a mapping\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() on malformed YAML succeeded, want error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"zero width", "window:\n  width: 0\n  height: 720\n"},
		{"negative timeout", "renderer:\n  present_timeout_ms: -5\n"},
		{"negative min area", "layout:\n  min_client_width: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, err := Load(path); err == nil {
				t.Errorf("Load() accepted %s", tt.name)
			}
		})
	}
}

func TestSettingsMaterialization(t *testing.T) {
	path := writeConfig(t, `
renderer:
  vsync: true
  debug_context: true
  present_timeout_ms: 250
layout:
  min_client_width: 320
  min_client_height: 200
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s := cfg.Settings()
	if !s.DebugContext {
		t.Error("DebugContext = false, want true")
	}
	if !s.VSync() {
		t.Error("VSync() = false, want true")
	}
	if s.PresentTimeout != 250*time.Millisecond {
		t.Errorf("PresentTimeout = %v, want 250ms", s.PresentTimeout)
	}
	if s.MinClientWidth != 320 || s.MinClientHeight != 200 {
		t.Errorf("min client area = %dx%d, want 320x200", s.MinClientWidth, s.MinClientHeight)
	}
}
