package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"options": {
			"unescaped_render_model_tags": false,
			"permissions_enabled": true,
			"cms_templates": "[[\"fullwidth.html\", \"Fullwidth\"]]",
			"boilerplate_name": "bootstrap3",
			"cms_content_cache_duration": 120,
			"cms_menus_cache_duration": 0,
			"framework_version": "1.8"
		},
		"settings": {
			"path": "/etc/app/settings.yaml",
			"output": "/etc/app/composed.yaml"
		},
		"log": {
			"level": "warn"
		},
		"routes": {
			"cms-check-uninstall": "/internal/check/"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.NotNil(t, cfg.Options.UnescapedRenderModelTags)
	assert.False(t, *cfg.Options.UnescapedRenderModelTags)
	require.NotNil(t, cfg.Options.PermissionsEnabled)
	assert.True(t, *cfg.Options.PermissionsEnabled)
	assert.Equal(t, `[["fullwidth.html", "Fullwidth"]]`, cfg.Options.CMSTemplates)
	assert.Equal(t, "bootstrap3", cfg.Options.BoilerplateName)
	assert.Equal(t, 120, *cfg.Options.CMSContentCacheDuration)
	assert.Equal(t, 0, *cfg.Options.CMSMenusCacheDuration)
	assert.Equal(t, "1.8", cfg.Options.FrameworkVersion)

	assert.Equal(t, "/etc/app/settings.yaml", cfg.Settings.Path)
	assert.Equal(t, "/etc/app/composed.yaml", cfg.Settings.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, map[string]string{"cms-check-uninstall": "/internal/check/"}, cfg.Routes)

	// never read from the file itself
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialOptions(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"options": {"boilerplate_name": "legacy"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Options.BoilerplateName)
	assert.Nil(t, cfg.Options.PermissionsEnabled)
	assert.Nil(t, cfg.Options.CMSContentCacheDuration)
	assert.Empty(t, cfg.Settings.Path)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "missing.json")

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"options": {`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_WrongType(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "wrong.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"options": {"cms_menus_cache_duration": "1h"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}
