// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-cms-settings/internal/validators"
	"github.com/MKhiriev/go-cms-settings/models"
)

func applyLanguages(r *run) error {
	codes := lo.Map(r.s.Languages, func(l models.LanguagePair, _ int) string {
		return l.Code
	})

	cms, err := buildCMSLanguages(codes, r.s.AllLanguages)
	if err != nil {
		return err
	}

	r.s.CMS.Languages = cms
	r.s.Parler.Languages = buildParlerLanguages(cms, codes, r.s.LanguageCode)

	r.log.Debug().Strs("languages", codes).Msg("built language tables")
	return nil
}

// buildCMSLanguages derives CMS_LANGUAGES from the ordered language codes.
// Each language falls back to every other code, in the original order.
func buildCMSLanguages(codes []string, names map[string]string) (*models.CMSLanguages, error) {
	langs := make([]models.CMSLanguage, 0, len(codes))
	for _, code := range codes {
		name, ok := names[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", validators.ErrUnknownLanguage, code)
		}
		langs = append(langs, models.CMSLanguage{
			Code:      code,
			Name:      name,
			Fallbacks: lo.Without(codes, code),
			Public:    true,
		})
	}

	return &models.CMSLanguages{
		Default: models.CMSLanguageDefaults{
			Fallbacks:          append([]string{}, codes...),
			RedirectOnFallback: true,
			Public:             true,
			HideUntranslated:   false,
		},
		Sites: map[int][]models.CMSLanguage{
			models.DefaultSiteID: langs,
		},
	}, nil
}

// buildParlerLanguages projects CMS_LANGUAGES onto the shape the translation
// layer expects. primary becomes the global fallback language; of the CMS
// default policy only hide_untranslated carries over.
func buildParlerLanguages(cms *models.CMSLanguages, codes []string, primary string) *models.ParlerLanguages {
	parler := &models.ParlerLanguages{
		Default: models.ParlerDefaults{
			Fallback:         primary,
			HideUntranslated: lo.ToPtr(cms.Default.HideUntranslated),
		},
		Sites: make(map[int][]models.ParlerLanguage, len(cms.Sites)),
	}

	for site, langs := range cms.Sites {
		parler.Sites[site] = lo.Map(langs, func(l models.CMSLanguage, _ int) models.ParlerLanguage {
			return models.ParlerLanguage{
				Code:      l.Code,
				Fallbacks: lo.Without(codes, l.Code),
			}
		})
	}

	return parler
}
