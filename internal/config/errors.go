package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when an option
// is malformed.
var (
	// ErrInvalidTemplates indicates that cms_templates is not a JSON list
	// of [path, display-name] pairs.
	ErrInvalidTemplates = errors.New("invalid cms_templates")
	// ErrInvalidCacheDuration indicates a negative cache duration.
	ErrInvalidCacheDuration = errors.New("invalid cache duration")
	// ErrInvalidFrameworkVersion indicates that framework_version cannot be
	// parsed as a version number.
	ErrInvalidFrameworkVersion = errors.New("invalid framework version")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSettingsIO indicates a missing settings input or output path.
	ErrInvalidSettingsIO = errors.New("invalid settings input/output configuration")
)
