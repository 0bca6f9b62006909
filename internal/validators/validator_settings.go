// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-cms-settings/internal/settings"
)

const (
	FieldBaseDir            = "BASE_DIR"
	FieldLanguageCode       = "LANGUAGE_CODE"
	FieldLanguages          = "LANGUAGES"
	FieldDefaultFileStorage = "DEFAULT_FILE_STORAGE"
	FieldInstalledApps      = "INSTALLED_APPS"
	FieldMiddlewareClasses  = "MIDDLEWARE_CLASSES"
	FieldStaticFilesFinders = "STATICFILES_FINDERS"
	FieldAddonURLs          = "ADDON_URLS"
	FieldAddonURLsI18N      = "ADDON_URLS_I18N"
	FieldMigrationCommands  = "MIGRATION_COMMANDS"
)

var allSettingsFields = []string{
	FieldBaseDir,
	FieldLanguageCode,
	FieldLanguages,
	FieldDefaultFileStorage,
	FieldInstalledApps,
	FieldMiddlewareClasses,
	FieldStaticFilesFinders,
	FieldAddonURLs,
	FieldAddonURLsI18N,
	FieldMigrationCommands,
}

// SettingsValidator checks that the settings the CMS addon reads are
// present and well formed.
type SettingsValidator struct {
}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case settings.Settings:
		return v.validateSettings(ctx, &value, fields...)
	case *settings.Settings:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSettings(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateSettings(_ context.Context, s *settings.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = allSettingsFields
	}

	for _, f := range fields {
		switch f {
		case FieldBaseDir:
			if s.BaseDir == "" {
				return ErrEmptyBaseDir
			}
		case FieldLanguageCode:
			if s.LanguageCode == "" {
				return ErrEmptyLanguageCode
			}
		case FieldLanguages:
			if err := validateLanguages(s); err != nil {
				return err
			}
		case FieldDefaultFileStorage:
			if s.DefaultFileStorage == "" {
				return ErrEmptyDefaultFileStorage
			}
		case FieldInstalledApps:
			if s.InstalledApps == nil {
				return fmt.Errorf("%w: %s", ErrMissingList, f)
			}
		case FieldMiddlewareClasses:
			if s.MiddlewareClasses == nil {
				return fmt.Errorf("%w: %s", ErrMissingList, f)
			}
		case FieldStaticFilesFinders:
			if s.StaticFilesFinders == nil {
				return fmt.Errorf("%w: %s", ErrMissingList, f)
			}
		case FieldAddonURLs:
			if s.AddonURLs == nil {
				return fmt.Errorf("%w: %s", ErrMissingList, f)
			}
		case FieldAddonURLsI18N:
			if s.AddonURLsI18N == nil {
				return fmt.Errorf("%w: %s", ErrMissingList, f)
			}
		case FieldMigrationCommands:
			if s.MigrationCommands == nil {
				return fmt.Errorf("%w: %s", ErrMissingList, f)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLanguages requires every configured code to be a BCP 47 tag with a
// display name.
func validateLanguages(s *settings.Settings) error {
	if s.Languages == nil {
		return ErrMissingLanguages
	}

	for i, lang := range s.Languages {
		if _, err := language.Parse(lang.Code); err != nil {
			return fmt.Errorf("%w at index %d: %q: %w", ErrInvalidLanguageCode, i, lang.Code, err)
		}
		if _, ok := s.AllLanguages[lang.Code]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang.Code)
		}
	}

	return nil
}
