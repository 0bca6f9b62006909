// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// DefaultSiteID is the site every derived language table is built for.
const DefaultSiteID = 1

// LanguagePair is one (code, display-name) entry of LANGUAGES.
type LanguagePair struct {
	Code string
	Name string
}

func (l LanguagePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{l.Code, l.Name})
}

func (l *LanguagePair) UnmarshalJSON(data []byte) error {
	var p pair
	if err := p.unmarshalJSON(data); err != nil {
		return err
	}
	l.Code, l.Name = p[0], p[1]
	return nil
}

func (l LanguagePair) MarshalYAML() (any, error) {
	return []string{l.Code, l.Name}, nil
}

func (l *LanguagePair) UnmarshalYAML(node *yaml.Node) error {
	var p pair
	if err := p.unmarshalYAML(node); err != nil {
		return err
	}
	l.Code, l.Name = p[0], p[1]
	return nil
}

// CMSLanguageDefaults is the global fallback policy of the page tree.
type CMSLanguageDefaults struct {
	Fallbacks          []string `yaml:"fallbacks" json:"fallbacks"`
	RedirectOnFallback bool     `yaml:"redirect_on_fallback" json:"redirect_on_fallback"`
	Public             bool     `yaml:"public" json:"public"`
	HideUntranslated   bool     `yaml:"hide_untranslated" json:"hide_untranslated"`
}

// CMSLanguage is the per-site definition of one content language.
type CMSLanguage struct {
	Code      string   `yaml:"code" json:"code"`
	Name      string   `yaml:"name" json:"name"`
	Fallbacks []string `yaml:"fallbacks" json:"fallbacks"`
	Public    bool     `yaml:"public" json:"public"`
}

// CMSLanguages is the CMS_LANGUAGES table: a "default" policy plus one
// ordered language list per numeric site id.
type CMSLanguages struct {
	Default CMSLanguageDefaults
	Sites   map[int][]CMSLanguage
}

func (c CMSLanguages) MarshalYAML() (any, error) {
	return encodeSiteTable(c.Default, c.Sites)
}

func (c *CMSLanguages) UnmarshalYAML(node *yaml.Node) error {
	c.Sites = make(map[int][]CMSLanguage)
	return decodeSiteTable(node, &c.Default, func(site int, value *yaml.Node) error {
		var langs []CMSLanguage
		if err := value.Decode(&langs); err != nil {
			return err
		}
		c.Sites[site] = langs
		return nil
	})
}

// ParlerDefaults is the "default" record of PARLER_LANGUAGES.
// HideUntranslated is only set when the CMS default policy exposes it.
type ParlerDefaults struct {
	Fallback         string `yaml:"fallback" json:"fallback"`
	HideUntranslated *bool  `yaml:"hide_untranslated,omitempty" json:"hide_untranslated,omitempty"`
}

// ParlerLanguage is the translation-layer view of a site language.
type ParlerLanguage struct {
	Code      string   `yaml:"code" json:"code"`
	Fallbacks []string `yaml:"fallbacks" json:"fallbacks"`
}

// ParlerLanguages is the PARLER_LANGUAGES table, shaped like [CMSLanguages].
type ParlerLanguages struct {
	Default ParlerDefaults
	Sites   map[int][]ParlerLanguage
}

func (p ParlerLanguages) MarshalYAML() (any, error) {
	return encodeSiteTable(p.Default, p.Sites)
}

func (p *ParlerLanguages) UnmarshalYAML(node *yaml.Node) error {
	p.Sites = make(map[int][]ParlerLanguage)
	return decodeSiteTable(node, &p.Default, func(site int, value *yaml.Node) error {
		var langs []ParlerLanguage
		if err := value.Decode(&langs); err != nil {
			return err
		}
		p.Sites[site] = langs
		return nil
	})
}
