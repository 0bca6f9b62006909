package settings

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-cms-settings/models"
)

// Clone returns a copy of s that shares no mutable state the addon writes
// to. Values inside Extra maps are not copied.
func (s *Settings) Clone() *Settings {
	c := *s

	c.Languages = slices.Clone(s.Languages)
	c.AllLanguages = maps.Clone(s.AllLanguages)
	c.Extra = maps.Clone(s.Extra)

	c.InstalledApps = slices.Clone(s.InstalledApps)
	c.MiddlewareClasses = slices.Clone(s.MiddlewareClasses)
	c.TemplateContextProcessors = slices.Clone(s.TemplateContextProcessors)
	c.TemplateLoaders = slices.Clone(s.TemplateLoaders)
	c.StaticFilesFinders = slices.Clone(s.StaticFilesFinders)
	c.AddonURLs = slices.Clone(s.AddonURLs)
	c.AddonURLsI18N = slices.Clone(s.AddonURLsI18N)
	c.MigrationCommands = slices.Clone(s.MigrationCommands)
	if s.Registry.Templates != nil {
		c.Registry.Templates = make([]TemplateEngine, len(s.Registry.Templates))
		for i, engine := range s.Registry.Templates {
			c.Registry.Templates[i] = engine.clone()
		}
	}

	c.CacheDurations = maps.Clone(s.CacheDurations)
	c.CMS.Templates = slices.Clone(s.CMS.Templates)
	if s.CMS.Languages != nil {
		c.CMS.Languages = cloneCMSLanguages(s.CMS.Languages)
	}
	if s.Parler.Languages != nil {
		c.Parler.Languages = cloneParlerLanguages(s.Parler.Languages)
	}

	c.StaticHeaders = cloneHeaderRules(s.StaticHeaders)
	c.MediaHeaders = cloneHeaderRules(s.MediaHeaders)

	c.PreserveExtensions = slices.Clone(s.PreserveExtensions)
	c.Processors = slices.Clone(s.Processors)
	c.SourceGenerators = slices.Clone(s.SourceGenerators)

	if s.CKEditor != nil {
		editor := *s.CKEditor
		editor.ToolbarHTMLField = slices.Clone(s.CKEditor.ToolbarHTMLField)
		editor.ContentsCSS = slices.Clone(s.CKEditor.ContentsCSS)
		c.CKEditor = &editor
	}

	c.SSOLoginWhiteList = slices.Clone(s.SSOLoginWhiteList)
	if s.RandomCommentExcludedViews != nil {
		c.RandomCommentExcludedViews = maps.Clone(s.RandomCommentExcludedViews)
	}

	return &c
}

func (e TemplateEngine) clone() TemplateEngine {
	e.Extra = maps.Clone(e.Extra)
	e.Options.ContextProcessors = slices.Clone(e.Options.ContextProcessors)
	e.Options.Loaders = slices.Clone(e.Options.Loaders)
	e.Options.Extra = maps.Clone(e.Options.Extra)
	return e
}

func cloneHeaderRules(rules models.HeaderRules) models.HeaderRules {
	if rules == nil {
		return nil
	}
	out := make(models.HeaderRules, len(rules))
	for i, rule := range rules {
		out[i] = models.HeaderRule{Pattern: rule.Pattern, Headers: maps.Clone(rule.Headers)}
	}
	return out
}

func cloneCMSLanguages(l *models.CMSLanguages) *models.CMSLanguages {
	c := &models.CMSLanguages{
		Default: l.Default,
		Sites:   make(map[int][]models.CMSLanguage, len(l.Sites)),
	}
	c.Default.Fallbacks = slices.Clone(l.Default.Fallbacks)
	for site, langs := range l.Sites {
		cloned := make([]models.CMSLanguage, len(langs))
		for i, lang := range langs {
			lang.Fallbacks = slices.Clone(lang.Fallbacks)
			cloned[i] = lang
		}
		c.Sites[site] = cloned
	}
	return c
}

func cloneParlerLanguages(l *models.ParlerLanguages) *models.ParlerLanguages {
	c := &models.ParlerLanguages{
		Default: l.Default,
		Sites:   make(map[int][]models.ParlerLanguage, len(l.Sites)),
	}
	for site, langs := range l.Sites {
		cloned := make([]models.ParlerLanguage, len(langs))
		for i, lang := range langs {
			lang.Fallbacks = slices.Clone(lang.Fallbacks)
			cloned[i] = lang
		}
		c.Sites[site] = cloned
	}
	return c
}
