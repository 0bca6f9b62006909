// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cms-settings/internal/config"
	"github.com/MKhiriev/go-cms-settings/internal/logger"
	"github.com/MKhiriev/go-cms-settings/internal/merger"
	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/internal/urls"
	"github.com/MKhiriev/go-cms-settings/internal/validators"
	"github.com/MKhiriev/go-cms-settings/models"
)

const stdoutPath = "-"

// App is the cmsconfig command line.
type App struct {
	info    models.AppBuildInfo
	fs      afero.Fs
	stdout  io.Writer
	stderr  io.Writer
	environ map[string]string
}

// Option configures an [App].
type Option func(*App)

// WithFs sets the filesystem settings documents are read from and written to.
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithOutput sets the streams for the settings document and for logs.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithEnvironment sets the environment the merger reads overrides from.
// By default the process environment is used.
func WithEnvironment(environ map[string]string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// New returns the CLI for the given build.
func New(info models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		info:   info,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run executes the command line given by args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// Command builds the root command with all subcommands attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "cmsconfig",
		Short: "cmsconfig composes CMS addon settings",
		Long: `cmsconfig extends a host framework settings document with the CMS addon:
installed apps, middleware, template and static file pipeline, language
tables, editor and thumbnail configuration.

Options are read from flags, ADDON_* environment variables, a JSON file
(--config or CONFIG) and built-in defaults, in that order.`,
		Version:       a.info.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		a.applyCommand(),
		a.validateCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) applyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the CMS addon to a settings document",
		Args:  cobra.NoArgs,
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := a.load(flags)
		if err != nil {
			return err
		}

		s, err := settings.LoadFile(a.fs, cfg.Settings.Path)
		if err != nil {
			return err
		}
		log.Debug().Str("path", cfg.Settings.Path).Msg(MsgSettingsLoaded)

		opts := []merger.Option{
			merger.WithFs(a.fs),
			merger.WithResolver(urls.DefaultRoutes().With(cfg.Routes)),
		}
		if a.environ != nil {
			opts = append(opts, merger.WithEnvironment(a.environ))
		}

		ctx := log.GetChildLogger().WithContext(cmd.Context())
		if _, err := merger.NewMerger(opts...).Apply(ctx, cfg.Options, s); err != nil {
			return err
		}

		if err := a.write(s, cfg.Settings.Output); err != nil {
			return err
		}
		log.Info().Str("output", cfg.Settings.Output).Msg(MsgSettingsWritten)

		return nil
	}

	return cmd
}

func (a *App) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a settings document can be extended",
		Args:  cobra.NoArgs,
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := a.load(flags)
		if err != nil {
			return err
		}

		s, err := settings.LoadFile(a.fs, cfg.Settings.Path)
		if err != nil {
			return err
		}

		if err := validators.NewSettingsValidator().Validate(cmd.Context(), s); err != nil {
			return fmt.Errorf("%s: %w", cfg.Settings.Path, err)
		}

		framework, err := cfg.Options.Framework()
		if err != nil {
			return err
		}
		if _, _, err := s.TemplateLists(merger.UsesTemplatesSetting(framework)); err != nil {
			return fmt.Errorf("%s: %w", cfg.Settings.Path, err)
		}

		log.Info().Str("path", cfg.Settings.Path).Msg(MsgSettingsValid)
		return nil
	}

	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.info.String())
			return err
		},
	}
}

// load resolves the configuration and the logger it asks for.
func (a *App) load(flags *config.Flags) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(a.stderr, "cmsconfig").WithLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Str("framework", cfg.Options.FrameworkVersion).
		Str("boilerplate", cfg.Options.BoilerplateName).
		Msg(MsgConfigLoaded)

	return cfg, log, nil
}

func (a *App) write(s *settings.Settings, path string) error {
	if path == stdoutPath {
		return s.Write(a.stdout)
	}

	f, err := a.fs.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := s.Write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
