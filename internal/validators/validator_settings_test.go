package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/models"
)

func validSettings() settings.Settings {
	return settings.Settings{
		BaseDir:      "/srv/app",
		LanguageCode: "en",
		Languages: []models.LanguagePair{
			{Code: "en", Name: "English"},
			{Code: "pt-br", Name: "Brazilian Portuguese"},
			{Code: "zh-hans", Name: "Simplified Chinese"},
		},
		AllLanguages: map[string]string{
			"en":      "English",
			"pt-br":   "Brazilian Portuguese",
			"zh-hans": "Simplified Chinese",
		},
		DefaultFileStorage: "django.core.files.storage.FileSystemStorage",
		Registry: settings.Registry{
			InstalledApps:      []string{},
			MiddlewareClasses:  []string{},
			StaticFilesFinders: []string{},
			AddonURLs:          []string{},
			AddonURLsI18N:      []string{},
			MigrationCommands:  []string{},
		},
	}
}

func TestSettingsValidator_Valid(t *testing.T) {
	v := NewSettingsValidator()
	s := validSettings()

	assert.NoError(t, v.Validate(context.Background(), s))
	assert.NoError(t, v.Validate(context.Background(), &s))
}

func TestSettingsValidator_UnsupportedType(t *testing.T) {
	v := NewSettingsValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "settings"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*settings.Settings)(nil)), ErrUnsupportedType)
}

func TestSettingsValidator_UnknownField(t *testing.T) {
	v := NewSettingsValidator()
	s := validSettings()

	assert.ErrorIs(t, v.Validate(context.Background(), s, "SECRET_KEY"), ErrUnknownField)
}

func TestSettingsValidator_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *settings.Settings)
		wantErr error
	}{
		{
			name:    "base dir",
			mutate:  func(s *settings.Settings) { s.BaseDir = "" },
			wantErr: ErrEmptyBaseDir,
		},
		{
			name:    "language code",
			mutate:  func(s *settings.Settings) { s.LanguageCode = "" },
			wantErr: ErrEmptyLanguageCode,
		},
		{
			name:    "languages missing",
			mutate:  func(s *settings.Settings) { s.Languages = nil },
			wantErr: ErrMissingLanguages,
		},
		{
			name: "language code malformed",
			mutate: func(s *settings.Settings) {
				s.Languages = append(s.Languages, models.LanguagePair{Code: "not a tag", Name: "Nope"})
			},
			wantErr: ErrInvalidLanguageCode,
		},
		{
			name: "language without display name",
			mutate: func(s *settings.Settings) {
				s.Languages = append(s.Languages, models.LanguagePair{Code: "fr", Name: "French"})
			},
			wantErr: ErrUnknownLanguage,
		},
		{
			name:    "default file storage",
			mutate:  func(s *settings.Settings) { s.DefaultFileStorage = "" },
			wantErr: ErrEmptyDefaultFileStorage,
		},
		{
			name:    "installed apps",
			mutate:  func(s *settings.Settings) { s.InstalledApps = nil },
			wantErr: ErrMissingList,
		},
		{
			name:    "middleware",
			mutate:  func(s *settings.Settings) { s.MiddlewareClasses = nil },
			wantErr: ErrMissingList,
		},
		{
			name:    "static finders",
			mutate:  func(s *settings.Settings) { s.StaticFilesFinders = nil },
			wantErr: ErrMissingList,
		},
		{
			name:    "addon urls",
			mutate:  func(s *settings.Settings) { s.AddonURLs = nil },
			wantErr: ErrMissingList,
		},
		{
			name:    "addon urls i18n",
			mutate:  func(s *settings.Settings) { s.AddonURLsI18N = nil },
			wantErr: ErrMissingList,
		},
		{
			name:    "migration commands",
			mutate:  func(s *settings.Settings) { s.MigrationCommands = nil },
			wantErr: ErrMissingList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := NewSettingsValidator().Validate(context.Background(), &s)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsValidator_EmptyLanguagesAllowed(t *testing.T) {
	s := validSettings()
	s.Languages = []models.LanguagePair{}

	assert.NoError(t, NewSettingsValidator().Validate(context.Background(), &s))
}

func TestSettingsValidator_FieldScope(t *testing.T) {
	s := validSettings()
	s.BaseDir = ""
	s.InstalledApps = nil

	v := NewSettingsValidator()
	require.NoError(t, v.Validate(context.Background(), &s, FieldLanguages, FieldLanguageCode))

	err := v.Validate(context.Background(), &s, FieldInstalledApps)
	require.ErrorIs(t, err, ErrMissingList)
	assert.Contains(t, err.Error(), FieldInstalledApps)
}
