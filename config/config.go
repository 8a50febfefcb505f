// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

// Package config loads frontend configuration for vantage from a YAML
// file. A missing file yields the defaults; a malformed file is an
// error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vantagegl/vantage"
)

// Config is the on-disk frontend configuration.
type Config struct {
	// Backend selects the windowing backend by registered name.
	// Empty selects the highest-priority available backend.
	Backend string `yaml:"backend"`

	Window struct {
		Title      string `yaml:"title"`
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Fullscreen bool   `yaml:"fullscreen"`
	} `yaml:"window"`

	Renderer struct {
		VSync            bool `yaml:"vsync"`
		DebugContext     bool `yaml:"debug_context"`
		PresentTimeoutMS int  `yaml:"present_timeout_ms"`
	} `yaml:"renderer"`

	Layout struct {
		MinClientWidth  int `yaml:"min_client_width"`
		MinClientHeight int `yaml:"min_client_height"`
	} `yaml:"layout"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Window.Title = "vantage"
	cfg.Window.Width = 1280
	cfg.Window.Height = 720
	cfg.Renderer.PresentTimeoutMS = int(vantage.DefaultPresentTimeout / time.Millisecond)
	cfg.Layout.MinClientWidth = vantage.DefaultMinClientWidth
	cfg.Layout.MinClientHeight = vantage.DefaultMinClientHeight
	return cfg
}

// DefaultPath returns the standard configuration file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "vantage", "config.yaml"), nil
}

// Load reads the configuration from path. A missing file returns the
// defaults without error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Renderer.PresentTimeoutMS <= 0 {
		return fmt.Errorf("present_timeout_ms %d is not positive", c.Renderer.PresentTimeoutMS)
	}
	if c.Layout.MinClientWidth < 0 || c.Layout.MinClientHeight < 0 {
		return fmt.Errorf("minimum client area %dx%d is negative",
			c.Layout.MinClientWidth, c.Layout.MinClientHeight)
	}
	return nil
}

// Settings materializes the vantage settings this configuration
// describes.
func (c *Config) Settings() *vantage.Settings {
	s := vantage.DefaultSettings()
	s.DebugContext = c.Renderer.DebugContext
	s.MinClientWidth = c.Layout.MinClientWidth
	s.MinClientHeight = c.Layout.MinClientHeight
	s.PresentTimeout = time.Duration(c.Renderer.PresentTimeoutMS) * time.Millisecond
	s.SetVSync(c.Renderer.VSync)
	return s
}
