// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"fmt"

	"github.com/MKhiriev/go-cms-settings/internal/settings"
)

// Anchors the addon inserts components next to.
const (
	adminApp             = "django.contrib.admin"
	appDirectoriesLoader = "django.template.loaders.app_directories.Loader"
	appDirectoriesFinder = "django.contrib.staticfiles.finders.AppDirectoriesFinder"
)

var (
	// aldryn_django_cms has to follow cms: plugins import cms.models.fields
	// while the app registry loads.
	coreApps = []string{
		"cms",
		"aldryn_django_cms",
		"menus",
		"sekizai",
		"treebeard",
		"reversion",
		"parler",
	}

	coreContextProcessors = []string{
		"sekizai.context_processors.sekizai",
		"cms.context_processors.cms_settings",
	}

	coreMiddleware = []string{
		"cms.middleware.user.CurrentUserMiddleware",
		"cms.middleware.page.CurrentPageMiddleware",
		"cms.middleware.toolbar.ToolbarMiddleware",
		"cms.middleware.language.LanguageCookieMiddleware",
	}

	pluginApps = []string{
		"djangocms_text_ckeditor",
		"djangocms_link",
		"djangocms_snippet",
		"djangocms_googlemap",
		"cmsplugin_filer_file",
		"cmsplugin_filer_image",
		// required by aldryn-forms
		"captcha",
	}
)

const (
	adminStyleApp           = "djangocms_admin_style"
	apphookReloadMiddleware = "cms.middleware.utils.ApphookReloadMiddleware"
	cmsURLs                 = "cms.urls"
	addonURLs               = "aldryn_django_cms.urls"
	addonURLsI18N           = "aldryn_django_cms.urls_i18n"
	sitemapsApp             = "django.contrib.sitemaps"
	robotsApp               = "robots"
	fixTreeCommand          = "python manage.py cms fix-tree"
)

// insertBefore wraps [settings.InsertBefore] with the name of the list.
func insertBefore(key string, list *[]string, anchor, entry string) error {
	if err := settings.InsertBefore(list, anchor, entry); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func registerCore(r *run) error {
	s := r.s

	settings.Append(&s.InstalledApps, coreApps...)
	if err := insertBefore("INSTALLED_APPS", &s.InstalledApps, adminApp, adminStyleApp); err != nil {
		return err
	}

	processors, _, err := s.TemplateLists(r.modernTemplates())
	if err != nil {
		return err
	}
	settings.Append(processors, coreContextProcessors...)

	settings.Append(&s.MiddlewareClasses, coreMiddleware...)
	settings.Prepend(&s.MiddlewareClasses, apphookReloadMiddleware)

	s.AddonURLsI18NLast = cmsURLs

	return nil
}

func registerSitemaps(r *run) error {
	settings.Append(&r.s.InstalledApps, sitemapsApp)
	return nil
}

func registerRobots(r *run) error {
	settings.Append(&r.s.InstalledApps, robotsApp)
	return nil
}

func registerPlugins(r *run) error {
	settings.Append(&r.s.InstalledApps, pluginApps...)
	return nil
}

func applyMigrations(r *run) error {
	settings.Append(&r.s.MigrationCommands, fixTreeCommand)
	return nil
}

func registerAddonURLs(r *run) error {
	settings.Append(&r.s.AddonURLs, addonURLs)
	settings.Append(&r.s.AddonURLsI18N, addonURLsI18N)
	return nil
}
