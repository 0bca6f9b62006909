// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"github.com/MKhiriev/go-cms-settings/internal/overrides"
	"github.com/MKhiriev/go-cms-settings/internal/settings"
)

const (
	boilerplatesApp    = "aldryn_boilerplates"
	boilerplatesLoader = "aldryn_boilerplates.template_loaders.AppDirectoriesLoader"
	boilerplatesFinder = "aldryn_boilerplates.staticfile_finders.AppDirectoriesFinder"
)

var boilerplateContextProcessors = []string{
	"aldryn_boilerplates.context_processors.boilerplate",
	"aldryn_snake.template_api.template_processor",
}

// applyBoilerplates selects the front-end bundle and registers the loader
// and finder that serve it ahead of the per-app ones.
func applyBoilerplates(r *run) error {
	s := r.s

	s.Boilerplates.Name = overrides.String(r.env.BoilerplateName, r.opts.BoilerplateName)
	settings.Append(&s.InstalledApps, boilerplatesApp)

	processors, loaders, err := s.TemplateLists(r.modernTemplates())
	if err != nil {
		return err
	}
	settings.Append(processors, boilerplateContextProcessors...)

	key := "TEMPLATE_LOADERS"
	if r.modernTemplates() {
		key = "TEMPLATES[0].OPTIONS.loaders"
	}
	if err := insertBefore(key, loaders, appDirectoriesLoader, boilerplatesLoader); err != nil {
		return err
	}

	return insertBefore("STATICFILES_FINDERS", &s.StaticFilesFinders, appDirectoriesFinder, boilerplatesFinder)
}
