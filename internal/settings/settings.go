// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"github.com/MKhiriev/go-cms-settings/models"
)

// Settings is the host framework's settings object.
//
// The top-level fields are the base settings the addon reads. The embedded
// groups hold what the addon writes, one group per subsystem it wires in.
// Nil slices, maps and pointers mean "the key is not set".
type Settings struct {
	// BaseDir is the project root. The legacy template list is looked up here.
	BaseDir string `yaml:"BASE_DIR"`

	// Debug is the framework debug flag. FILER_DEBUG defaults to it.
	Debug bool `yaml:"DEBUG"`

	// LanguageCode is the primary language of the site.
	LanguageCode string `yaml:"LANGUAGE_CODE"`

	// Languages is the ordered list of enabled content languages.
	Languages []models.LanguagePair `yaml:"LANGUAGES"`

	// AllLanguages maps every known language code to its display name.
	AllLanguages map[string]string `yaml:"ALL_LANGUAGES_DICT"`

	// DefaultFileStorage is the storage backend used for uploaded media.
	DefaultFileStorage string `yaml:"DEFAULT_FILE_STORAGE"`

	Registry     `yaml:",inline"`
	CMS          `yaml:",inline"`
	Parler       `yaml:",inline"`
	Boilerplates `yaml:",inline"`
	Compressor   `yaml:",inline"`
	Filer        `yaml:",inline"`
	Thumbnails   `yaml:",inline"`
	Editor       `yaml:",inline"`
	Security     `yaml:",inline"`

	// Extra holds every key not modelled above.
	Extra map[string]any `yaml:",inline"`
}

// Registry groups the ordered component registration lists.
type Registry struct {
	InstalledApps     []string `yaml:"INSTALLED_APPS"`
	MiddlewareClasses []string `yaml:"MIDDLEWARE_CLASSES"`

	// Templates is the template engine list used by framework 1.8 and later.
	Templates []TemplateEngine `yaml:"TEMPLATES,omitempty"`

	// TemplateContextProcessors and TemplateLoaders are the flat lists
	// older framework releases use instead of Templates.
	TemplateContextProcessors OptionalList `yaml:"TEMPLATE_CONTEXT_PROCESSORS,omitempty"`
	TemplateLoaders           OptionalList `yaml:"TEMPLATE_LOADERS,omitempty"`

	StaticFilesFinders []string `yaml:"STATICFILES_FINDERS"`

	AddonURLs         []string `yaml:"ADDON_URLS"`
	AddonURLsI18N     []string `yaml:"ADDON_URLS_I18N"`
	AddonURLsI18NLast string   `yaml:"ADDON_URLS_I18N_LAST,omitempty"`

	// MigrationCommands are run after each deployment, in order.
	MigrationCommands []string `yaml:"MIGRATION_COMMANDS"`
}

// TemplateEngine is one entry of TEMPLATES.
type TemplateEngine struct {
	Backend string          `yaml:"BACKEND"`
	Options TemplateOptions `yaml:"OPTIONS"`
	Extra   map[string]any  `yaml:",inline"`
}

// TemplateOptions is the OPTIONS block of a template engine.
type TemplateOptions struct {
	ContextProcessors []string       `yaml:"context_processors"`
	Loaders           []string       `yaml:"loaders"`
	Extra             map[string]any `yaml:",inline"`
}

// CMS groups the page-tree settings.
type CMS struct {
	Permission               bool                  `yaml:"CMS_PERMISSION"`
	CacheDurations           models.CacheDurations `yaml:"CMS_CACHE_DURATIONS,omitempty"`
	Templates                models.Templates      `yaml:"CMS_TEMPLATES,omitempty"`
	Languages                *models.CMSLanguages  `yaml:"CMS_LANGUAGES,omitempty"`
	UnescapedRenderModelTags bool                  `yaml:"CMS_UNESCAPED_RENDER_MODEL_TAGS"`
}

// Parler groups the translation-layer settings.
type Parler struct {
	Languages *models.ParlerLanguages `yaml:"PARLER_LANGUAGES,omitempty"`
}

// Boilerplates groups the front-end bundle selection.
type Boilerplates struct {
	Name string `yaml:"ALDRYN_BOILERPLATE_NAME,omitempty"`
}

// Compressor groups the asset-compression settings.
type Compressor struct {
	Enabled   bool   `yaml:"COMPRESS_ENABLED"`
	OutputDir string `yaml:"COMPRESS_OUTPUT_DIR,omitempty"`

	// StaticHeaders are header rules for static files, highest precedence first.
	StaticHeaders models.HeaderRules `yaml:"STATIC_HEADERS,omitempty"`
}

// Filer groups the file-manager settings.
type Filer struct {
	Debug         bool `yaml:"FILER_DEBUG"`
	EnableLogging bool `yaml:"FILER_ENABLE_LOGGING"`
	ImageUseIcon  bool `yaml:"FILER_IMAGE_USE_ICON"`

	// MediaHeaders are header rules for media files, highest precedence first.
	MediaHeaders models.HeaderRules `yaml:"MEDIA_HEADERS,omitempty"`
}

// Thumbnails groups the thumbnail pipeline settings.
type Thumbnails struct {
	Quality            int      `yaml:"THUMBNAIL_QUALITY"`
	HighResolution     bool     `yaml:"THUMBNAIL_HIGH_RESOLUTION"`
	PreserveExtensions []string `yaml:"THUMBNAIL_PRESERVE_EXTENSIONS,omitempty"`
	Processors         []string `yaml:"THUMBNAIL_PROCESSORS,omitempty"`
	SourceGenerators   []string `yaml:"THUMBNAIL_SOURCE_GENERATORS,omitempty"`
	CacheDimensions    bool     `yaml:"THUMBNAIL_CACHE_DIMENSIONS"`
	DefaultStorage     string   `yaml:"THUMBNAIL_DEFAULT_STORAGE,omitempty"`
}

// Editor groups the rich-text editor and link widget settings.
type Editor struct {
	CKEditor       *models.EditorSettings `yaml:"CKEDITOR_SETTINGS,omitempty"`
	LinkUseSelect2 bool                   `yaml:"DJANGOCMS_LINK_USE_SELECT2"`
}

// Security groups the authentication and response-hardening settings.
type Security struct {
	// SSOLoginWhiteList is only present when the SSO addon is installed.
	SSOLoginWhiteList OptionalList `yaml:"ALDRYN_SSO_LOGIN_WHITE_LIST,omitempty"`

	// RandomCommentExcludedViews are views the BREACH countermeasure skips.
	RandomCommentExcludedViews StringSet `yaml:"RANDOM_COMMENT_EXCLUDED_VIEWS,omitempty"`
}

// TemplateLists returns the context-processor and loader lists.
//
// With modern set, they are taken from the OPTIONS of the first TEMPLATES
// entry; otherwise from TEMPLATE_CONTEXT_PROCESSORS and TEMPLATE_LOADERS.
func (s *Settings) TemplateLists(modern bool) (processors, loaders *[]string, err error) {
	if !modern {
		if s.TemplateContextProcessors == nil {
			return nil, nil, MissingSettingError("TEMPLATE_CONTEXT_PROCESSORS")
		}
		if s.TemplateLoaders == nil {
			return nil, nil, MissingSettingError("TEMPLATE_LOADERS")
		}
		return (*[]string)(&s.TemplateContextProcessors), (*[]string)(&s.TemplateLoaders), nil
	}

	if len(s.Registry.Templates) == 0 {
		return nil, nil, MissingSettingError("TEMPLATES")
	}
	opts := &s.Registry.Templates[0].Options
	if opts.ContextProcessors == nil {
		return nil, nil, MissingSettingError("TEMPLATES[0].OPTIONS.context_processors")
	}
	if opts.Loaders == nil {
		return nil, nil, MissingSettingError("TEMPLATES[0].OPTIONS.loaders")
	}

	return &opts.ContextProcessors, &opts.Loaders, nil
}
