// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestValidateCapabilitiesAllPresent(t *testing.T) {
	report := ValidateCapabilities(func(string) bool { return true })
	if !report.OK() {
		t.Errorf("report.OK() = false with every extension present")
	}
	if len(report.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", report.Missing)
	}
}

func TestValidateCapabilitiesCollectsEveryMiss(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
	}{
		{"single", []string{"GL_ARB_clip_control"}},
		{"pair", []string{"GL_ARB_buffer_storage", "GL_ARB_depth_buffer_float"}},
		{"texture formats", []string{
			"GL_EXT_texture_compression_s3tc",
			"GL_ARB_texture_compression_rgtc",
		}},
		{"everything", RequiredExtensions()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			absent := map[string]bool{}
			for _, ext := range tt.missing {
				absent[ext] = true
			}
			report := ValidateCapabilities(func(name string) bool { return !absent[name] })

			if report.OK() {
				t.Fatal("report.OK() = true with extensions absent")
			}
			got := slices.Clone(report.Missing)
			want := slices.Clone(tt.missing)
			slices.Sort(got)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("Missing = %v, want %v", report.Missing, tt.missing)
			}
		})
	}
}

func TestValidateCapabilitiesProbesEveryExtension(t *testing.T) {
	var probed []string
	ValidateCapabilities(func(name string) bool {
		probed = append(probed, name)
		return false
	})
	// No short-circuit: every required extension is probed even though
	// the very first one is missing.
	if !slices.Equal(probed, RequiredExtensions()) {
		t.Errorf("probed %v, want %v", probed, RequiredExtensions())
	}
}

func TestValidateCapabilitiesLogsEachMiss(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	missing := map[string]bool{
		"GL_ARB_multi_bind":          true,
		"GL_ARB_direct_state_access": true,
	}
	ValidateCapabilities(func(name string) bool { return !missing[name] })

	out := buf.String()
	for ext := range missing {
		if !strings.Contains(out, ext) {
			t.Errorf("log output missing %s: %s", ext, out)
		}
	}
}

func TestRequiredExtensionsIsACopy(t *testing.T) {
	exts := RequiredExtensions()
	if len(exts) == 0 {
		t.Fatal("RequiredExtensions() is empty")
	}
	exts[0] = "mutated"
	if RequiredExtensions()[0] == "mutated" {
		t.Error("RequiredExtensions() exposes internal state")
	}
}
