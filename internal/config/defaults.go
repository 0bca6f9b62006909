// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/samber/lo"

	"github.com/MKhiriev/go-cms-settings/models"
)

// Built-in option defaults.
const (
	DefaultBoilerplateName         = "legacy"
	DefaultContentCacheDuration    = 60
	DefaultMenusCacheDuration      = 60 * 60
	DefaultFrameworkVersion        = "1.11"
	DefaultSettingsPath            = "settings.yaml"
	DefaultSettingsOutput          = "-"
	DefaultLogLevel                = "info"
	defaultUnescapedRenderModelTag = true
	defaultPermissionsEnabled      = true
)

// DefaultConfig returns the lowest-priority configuration layer.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Options: DefaultOptions(),
		Settings: SettingsIO{
			Path:   DefaultSettingsPath,
			Output: DefaultSettingsOutput,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultOptions returns the options record with every field at its
// documented default.
func DefaultOptions() Options {
	return Options{
		UnescapedRenderModelTags: lo.ToPtr(defaultUnescapedRenderModelTag),
		PermissionsEnabled:       lo.ToPtr(defaultPermissionsEnabled),
		CMSTemplates:             models.DefaultTemplatesJSON,
		BoilerplateName:          DefaultBoilerplateName,
		CMSContentCacheDuration:  lo.ToPtr(DefaultContentCacheDuration),
		CMSMenusCacheDuration:    lo.ToPtr(DefaultMenusCacheDuration),
		FrameworkVersion:         DefaultFrameworkVersion,
	}
}
