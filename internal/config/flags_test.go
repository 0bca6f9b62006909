package config

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestRegisterFlags_Defined(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	names := []string{
		FlagConfig,
		FlagSettings,
		FlagOutput,
		FlagLogLevel,
		FlagRoute,
		FlagUnescapedRenderModelTags,
		FlagPermissionsEnabled,
		FlagCMSTemplates,
		FlagBoilerplateName,
		FlagContentCacheDuration,
		FlagMenusCacheDuration,
		FlagFrameworkVersion,
	}
	for _, name := range names {
		assert.NotNil(t, fs.Lookup(name), "flag %q is not registered", name)
	}

	assert.Equal(t, "c", fs.Lookup(FlagConfig).Shorthand)
	assert.Equal(t, "s", fs.Lookup(FlagSettings).Shorthand)
	assert.Equal(t, "o", fs.Lookup(FlagOutput).Shorthand)
}

func TestFlags_Config_NoFlags(t *testing.T) {
	cfg := newTestFlags(t).Config()

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestFlags_Config_AllFlags(t *testing.T) {
	cfg := newTestFlags(t,
		"-c", "/etc/app/config.json",
		"-s", "/etc/app/settings.yaml",
		"-o", "-",
		"--log-level", "debug",
		"--route", "cms-check-uninstall=/check/",
		"--route", "admin:cms_page_resolve=/resolve/",
		"--unescaped-render-model-tags=false",
		"--permissions-enabled",
		"--cms-templates", `[["a.html","A"]]`,
		"--boilerplate-name", "bootstrap3",
		"--content-cache-duration", "15",
		"--menus-cache-duration", "0",
		"--framework-version", "1.9",
	).Config()

	assert.Equal(t, "/etc/app/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/etc/app/settings.yaml", cfg.Settings.Path)
	assert.Equal(t, "-", cfg.Settings.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, map[string]string{
		"cms-check-uninstall":    "/check/",
		"admin:cms_page_resolve": "/resolve/",
	}, cfg.Routes)

	require.NotNil(t, cfg.Options.UnescapedRenderModelTags)
	assert.False(t, *cfg.Options.UnescapedRenderModelTags)
	require.NotNil(t, cfg.Options.PermissionsEnabled)
	assert.True(t, *cfg.Options.PermissionsEnabled)
	assert.Equal(t, `[["a.html","A"]]`, cfg.Options.CMSTemplates)
	assert.Equal(t, "bootstrap3", cfg.Options.BoilerplateName)
	require.NotNil(t, cfg.Options.CMSContentCacheDuration)
	assert.Equal(t, 15, *cfg.Options.CMSContentCacheDuration)
	require.NotNil(t, cfg.Options.CMSMenusCacheDuration)
	assert.Equal(t, 0, *cfg.Options.CMSMenusCacheDuration)
	assert.Equal(t, "1.9", cfg.Options.FrameworkVersion)
}

// TestFlags_Config_UnchangedBooleans verifies that booleans and durations
// left at their zero value are not reported, so lower layers can set them.
func TestFlags_Config_UnchangedBooleans(t *testing.T) {
	cfg := newTestFlags(t, "--boilerplate-name", "legacy").Config()

	assert.Nil(t, cfg.Options.UnescapedRenderModelTags)
	assert.Nil(t, cfg.Options.PermissionsEnabled)
	assert.Nil(t, cfg.Options.CMSContentCacheDuration)
	assert.Nil(t, cfg.Options.CMSMenusCacheDuration)
}

func TestRegisterFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "duration not a number", args: []string{"--content-cache-duration", "1m"}},
		{name: "bool not a bool", args: []string{"--permissions-enabled=maybe"}},
		{name: "route without separator", args: []string{"--route", "cms-check-uninstall"}},
		{name: "unknown flag", args: []string{"--templates-dir", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.SetOutput(io.Discard)
			RegisterFlags(fs)

			assert.Error(t, fs.Parse(tt.args))
		})
	}
}
