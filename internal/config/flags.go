package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig                   = "config"
	FlagSettings                 = "settings"
	FlagOutput                   = "output"
	FlagLogLevel                 = "log-level"
	FlagRoute                    = "route"
	FlagUnescapedRenderModelTags = "unescaped-render-model-tags"
	FlagPermissionsEnabled       = "permissions-enabled"
	FlagCMSTemplates             = "cms-templates"
	FlagBoilerplateName          = "boilerplate-name"
	FlagContentCacheDuration     = "content-cache-duration"
	FlagMenusCacheDuration       = "menus-cache-duration"
	FlagFrameworkVersion         = "framework-version"
)

// Flags holds the values bound to a flag set by [RegisterFlags].
type Flags struct {
	fs *pflag.FlagSet

	jsonConfigPath           string
	settingsPath             string
	outputPath               string
	logLevel                 string
	routes                   map[string]string
	unescapedRenderModelTags bool
	permissionsEnabled       bool
	cmsTemplates             string
	boilerplateName          string
	contentCacheDuration     int
	menusCacheDuration       int
	frameworkVersion         string
}

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-c/--config JSON options file path
//	-s/--settings base settings document
//	-o/--output composed settings destination ("-" for stdout)
//	--log-level zerolog level
//	--route name=path route override (repeatable, comma separated)
//	--unescaped-render-model-tags leave render_model tags unescaped
//	--permissions-enabled enable per-page permission checks
//	--cms-templates JSON list of [path, name] pairs
//	--boilerplate-name front-end bundle name
//	--content-cache-duration content cache seconds
//	--menus-cache-duration menu cache seconds
//	--framework-version host framework version
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.jsonConfigPath, FlagConfig, "c", "", "JSON options file path")
	fs.StringVarP(&f.settingsPath, FlagSettings, "s", "", "Base settings document (YAML or JSON)")
	fs.StringVarP(&f.outputPath, FlagOutput, "o", "", `Composed settings destination, "-" for stdout`)
	fs.StringVar(&f.logLevel, FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringToStringVar(&f.routes, FlagRoute, nil, "Named route override in a form name=path")
	fs.BoolVar(&f.unescapedRenderModelTags, FlagUnescapedRenderModelTags, false, "Leave render_model tags unescaped")
	fs.BoolVar(&f.permissionsEnabled, FlagPermissionsEnabled, false, "Enable per-page permission checks")
	fs.StringVar(&f.cmsTemplates, FlagCMSTemplates, "", "JSON list of [path, name] template pairs")
	fs.StringVar(&f.boilerplateName, FlagBoilerplateName, "", "Boilerplate name")
	fs.IntVar(&f.contentCacheDuration, FlagContentCacheDuration, 0, "Content cache duration in seconds")
	fs.IntVar(&f.menusCacheDuration, FlagMenusCacheDuration, 0, "Menu cache duration in seconds")
	fs.StringVar(&f.frameworkVersion, FlagFrameworkVersion, "", "Host framework version (e.g. 1.11)")

	return f
}

// Config returns the configuration layer carried by the parsed flags.
// Boolean and duration options are only set when the flag was given
// explicitly.
func (f *Flags) Config() *StructuredConfig {
	cfg := &StructuredConfig{
		Options: Options{
			CMSTemplates:     f.cmsTemplates,
			BoilerplateName:  f.boilerplateName,
			FrameworkVersion: f.frameworkVersion,
		},
		Settings: SettingsIO{
			Path:   f.settingsPath,
			Output: f.outputPath,
		},
		Log: Log{
			Level: f.logLevel,
		},
		Routes:       f.routes,
		JSONFilePath: f.jsonConfigPath,
	}

	if f.fs.Changed(FlagUnescapedRenderModelTags) {
		v := f.unescapedRenderModelTags
		cfg.Options.UnescapedRenderModelTags = &v
	}
	if f.fs.Changed(FlagPermissionsEnabled) {
		v := f.permissionsEnabled
		cfg.Options.PermissionsEnabled = &v
	}
	if f.fs.Changed(FlagContentCacheDuration) {
		v := f.contentCacheDuration
		cfg.Options.CMSContentCacheDuration = &v
	}
	if f.fs.Changed(FlagMenusCacheDuration) {
		v := f.menusCacheDuration
		cfg.Options.CMSMenusCacheDuration = &v
	}

	return cfg
}
