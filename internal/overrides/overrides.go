// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package overrides reads the environment variables that take precedence
// over both the operator options and the built-in defaults when the CMS
// settings are derived.
//
// Each override is a pointer field; nil means the variable is not set and
// the caller falls back to its next source.
package overrides

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Overrides is the set of environment values the merger consults.
type Overrides struct {
	// BoilerplateName selects the front-end bundle.
	// Env: ALDRYN_BOILERPLATE_NAME
	BoilerplateName *string `env:"ALDRYN_BOILERPLATE_NAME"`

	// CompressEnabled turns asset compression on.
	// Env: COMPRESS_ENABLED
	CompressEnabled *BoolIsh `env:"COMPRESS_ENABLED"`

	// FilerDebug turns file-manager debugging on. Falls back to DEBUG.
	// Env: FILER_DEBUG
	FilerDebug *BoolIsh `env:"FILER_DEBUG"`

	// FilerEnableLogging turns file-manager logging on.
	// Env: FILER_ENABLE_LOGGING
	FilerEnableLogging *BoolIsh `env:"FILER_ENABLE_LOGGING"`

	// ThumbnailQuality is the JPEG quality of generated thumbnails.
	// Env: THUMBNAIL_QUALITY
	ThumbnailQuality *int `env:"THUMBNAIL_QUALITY"`
}

// Parse reads overrides from environ, a map of variable names to values.
func Parse(environ map[string]string) (*Overrides, error) {
	o := new(Overrides)
	if err := env.ParseWithOptions(o, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error reading environment overrides: %w", err)
	}

	return o, nil
}

// Environ returns the process environment as a map suitable for [Parse].
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// String returns the override if set, else def.
func String(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// Bool returns the override if set, else def.
func Bool(v *BoolIsh, def bool) bool {
	if v == nil {
		return def
	}
	return bool(*v)
}

// Int returns the override if set, else def.
func Int(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
