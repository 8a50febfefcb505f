// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package vantage

import "slices"

// requiredExtensions is the fixed set of GL extensions the renderer
// depends on. Absence of any one is an unsupported-hardware condition,
// not something to degrade around.
var requiredExtensions = []string{
	"GL_ARB_buffer_storage",
	"GL_ARB_direct_state_access",
	"GL_ARB_vertex_type_10f_11f_11f_rev",
	"GL_ARB_texture_mirror_clamp_to_edge",
	"GL_ARB_multi_bind",
	"GL_ARB_clip_control",

	// Required to support some texture formats.
	"GL_EXT_texture_compression_s3tc",
	"GL_ARB_texture_compression_rgtc",
	"GL_ARB_depth_buffer_float",
}

// RequiredExtensions returns the names of every GL extension that must be
// present before the presentation loop may start.
func RequiredExtensions() []string {
	return slices.Clone(requiredExtensions)
}

// CapabilityReport is the result of capability validation.
type CapabilityReport struct {
	// Missing holds the required extensions the driver does not
	// expose, in the order they are checked. Empty on success.
	Missing []string
}

// OK reports whether every required capability is present.
func (r CapabilityReport) OK() bool { return len(r.Missing) == 0 }

// ValidateCapabilities checks every required extension against the
// driver using the given support probe. It never stops at the first
// miss: the report names all missing extensions so a user sees the
// complete picture in one run. Each miss is logged at critical
// severity.
//
// The probe is typically winsys.Backend.Supports with function pointers
// already loaded.
func ValidateCapabilities(supports func(name string) bool) CapabilityReport {
	var report CapabilityReport
	for _, ext := range requiredExtensions {
		if !supports(ext) {
			report.Missing = append(report.Missing, ext)
		}
	}
	for _, ext := range report.Missing {
		critical("unsupported GL extension", "extension", ext)
	}
	return report
}
