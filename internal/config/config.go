// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// cmsconfig tool. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, an optional
// JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - json     : key in the optional JSON options file.
type StructuredConfig struct {
	// Options is the operator-facing options record consumed by the merger.
	Options Options `envPrefix:"ADDON_" json:"options"`

	// Settings holds where the settings document is read from and written to.
	Settings SettingsIO `envPrefix:"SETTINGS_" json:"settings"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// Routes adds or replaces named routes used when the merger resolves
	// URLs, as name=path pairs.
	// Env: ROUTES (e.g. "cms-check-uninstall=/x/,admin:cms_page_resolve=/y/")
	Routes map[string]string `env:"ROUTES" envKeyValSeparator:"=" json:"routes"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Options is the options record an operator supplies for the CMS addon.
// Pointer fields distinguish "not set" from an explicit false or zero.
type Options struct {
	// UnescapedRenderModelTags leaves render_model template tags unescaped.
	// Env: ADDON_UNESCAPED_RENDER_MODEL_TAGS
	UnescapedRenderModelTags *bool `env:"UNESCAPED_RENDER_MODEL_TAGS" json:"unescaped_render_model_tags"`

	// PermissionsEnabled turns on per-page permission checks.
	// Env: ADDON_PERMISSIONS_ENABLED
	PermissionsEnabled *bool `env:"PERMISSIONS_ENABLED" json:"permissions_enabled"`

	// CMSTemplates is a JSON list of [path, display-name] pairs.
	// Env: ADDON_CMS_TEMPLATES
	CMSTemplates string `env:"CMS_TEMPLATES" json:"cms_templates"`

	// BoilerplateName selects the front-end bundle (e.g. "bootstrap3").
	// Env: ADDON_BOILERPLATE_NAME
	BoilerplateName string `env:"BOILERPLATE_NAME" json:"boilerplate_name"`

	// CMSContentCacheDuration is the content cache expiration in seconds.
	// An explicit zero keeps the duration already present in the settings.
	// Env: ADDON_CMS_CONTENT_CACHE_DURATION
	CMSContentCacheDuration *int `env:"CMS_CONTENT_CACHE_DURATION" json:"cms_content_cache_duration"`

	// CMSMenusCacheDuration is the menu tree cache expiration in seconds.
	// An explicit zero keeps the duration already present in the settings.
	// Env: ADDON_CMS_MENUS_CACHE_DURATION
	CMSMenusCacheDuration *int `env:"CMS_MENUS_CACHE_DURATION" json:"cms_menus_cache_duration"`

	// FrameworkVersion is the version of the host framework the settings
	// are composed for (e.g. "1.11.29"). It selects the template settings
	// layout and whether the select2 widget is enabled.
	// Env: ADDON_FRAMEWORK_VERSION
	FrameworkVersion string `env:"FRAMEWORK_VERSION" json:"framework_version"`
}

// SettingsIO locates the settings document the CLI operates on.
type SettingsIO struct {
	// Path is the base settings document (YAML or JSON).
	// Env: SETTINGS_PATH
	Path string `env:"PATH" json:"path"`

	// Output is where the composed settings are written; "-" is stdout.
	// Env: SETTINGS_OUTPUT
	Output string `env:"OUTPUT" json:"output"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Command-line flags (skipped when flags is nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv(nil).
		withJSON().
		withDefaults().
		build()
}
