// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-cms-settings/internal/config"
	"github.com/MKhiriev/go-cms-settings/internal/logger"
	"github.com/MKhiriev/go-cms-settings/internal/overrides"
	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/internal/urls"
	"github.com/MKhiriev/go-cms-settings/internal/validators"
)

// Framework releases that change what gets written.
var (
	templatesLayoutVersion = version.Must(version.NewVersion("1.8"))
	select2DroppedVersion  = version.Must(version.NewVersion("1.9"))
)

// Merger applies the CMS addon to settings objects.
type Merger struct {
	log       *logger.Logger
	environ   map[string]string
	resolver  urls.Resolver
	fs        afero.Fs
	validator validators.Validator
}

// Option configures a [Merger].
type Option func(*Merger)

// WithLogger sets the logger steps report to. Without it Apply uses the
// logger attached to its context.
func WithLogger(l *logger.Logger) Option {
	return func(m *Merger) {
		m.log = l
	}
}

// WithEnvironment sets the environment overrides are read from.
func WithEnvironment(environ map[string]string) Option {
	return func(m *Merger) {
		m.environ = environ
	}
}

// WithResolver sets the resolver used for named routes.
func WithResolver(r urls.Resolver) Option {
	return func(m *Merger) {
		m.resolver = r
	}
}

// WithFs sets the filesystem the legacy template list is read from.
func WithFs(fs afero.Fs) Option {
	return func(m *Merger) {
		m.fs = fs
	}
}

// NewMerger returns a Merger reading the process environment and the OS
// filesystem, resolving routes with [urls.DefaultRoutes].
func NewMerger(opts ...Option) *Merger {
	m := &Merger{
		resolver:  urls.DefaultRoutes(),
		fs:        afero.NewOsFs(),
		validator: validators.NewSettingsValidator(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.environ == nil {
		m.environ = overrides.Environ()
	}

	return m
}

// run is the state shared by the steps of one Apply call.
type run struct {
	opts      config.Options
	framework *version.Version
	env       *overrides.Overrides
	s         *settings.Settings
	log       *logger.Logger
}

// UsesTemplatesSetting reports whether framework release v keeps template
// settings under TEMPLATES rather than the flat pre-1.8 lists.
func UsesTemplatesSetting(v *version.Version) bool {
	return v.GreaterThanOrEqual(templatesLayoutVersion)
}

func (r *run) modernTemplates() bool {
	return UsesTemplatesSetting(r.framework)
}

type step struct {
	name  string
	apply func(*run) error
}

func (m *Merger) steps() []step {
	return []step{
		{"core", registerCore},
		{"permissions", applyPermissions},
		{"cache durations", applyCacheDurations},
		{"templates", m.applyTemplates},
		{"languages", applyLanguages},
		{"boilerplates", applyBoilerplates},
		{"sitemaps", registerSitemaps},
		{"compressor", applyCompressor},
		{"robots", registerRobots},
		{"filer", applyFiler},
		{"thumbnails", applyThumbnails},
		{"migrations", applyMigrations},
		{"plugins", registerPlugins},
		{"editor", applyEditor},
		{"select2", applySelect2},
		{"addon urls", registerAddonURLs},
		{"sso", m.applySSO},
		{"render model tags", applyRenderModelTags},
		{"random comments", applyRandomCommentExclusions},
	}
}

// Apply extends s with the CMS addon configured by opts and returns s.
//
// Unset options take their defaults. On error s is left unchanged.
func (m *Merger) Apply(ctx context.Context, opts config.Options, s *settings.Settings) (*settings.Settings, error) {
	opts, err := opts.WithDefaults()
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("error validating options: %w", err)
	}
	framework, err := opts.Framework()
	if err != nil {
		return nil, err
	}

	env, err := overrides.Parse(m.environ)
	if err != nil {
		return nil, err
	}

	if err := m.validator.Validate(ctx, s); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	log := m.log
	if log == nil {
		log = logger.FromContext(ctx)
	}

	r := &run{
		opts:      opts,
		framework: framework,
		env:       env,
		s:         s.Clone(),
		log:       log,
	}

	for _, st := range m.steps() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := st.apply(r); err != nil {
			log.Error().Err(err).Str("step", st.name).Msg("error applying cms settings")
			return nil, fmt.Errorf("error applying %s: %w", st.name, err)
		}
		log.Debug().Str("step", st.name).Msg("applied")
	}

	*s = *r.s
	log.Info().
		Str("framework", framework.String()).
		Int("installed_apps", len(s.InstalledApps)).
		Str("boilerplate", s.Boilerplates.Name).
		Msg("cms settings applied")

	return s, nil
}

// Apply extends s using a default [Merger].
func Apply(ctx context.Context, opts config.Options, s *settings.Settings) (*settings.Settings, error) {
	return NewMerger().Apply(ctx, opts, s)
}
