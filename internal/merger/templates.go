// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-cms-settings/models"
)

// LegacyTemplatesFile is the template list older projects keep next to
// their code. When present it wins over every other source.
const LegacyTemplatesFile = "cms_templates.json"

// applyTemplates resolves CMS_TEMPLATES from exactly one source: the legacy
// file, the existing setting, or the options.
func (m *Merger) applyTemplates(r *run) error {
	legacy := filepath.Join(r.s.BaseDir, LegacyTemplatesFile)

	exists, err := afero.Exists(m.fs, legacy)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", legacy, err)
	}

	switch {
	case exists:
		data, err := afero.ReadFile(m.fs, legacy)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", legacy, err)
		}
		templates, err := models.ParseTemplates(data)
		if err != nil {
			return fmt.Errorf("%s: %w", legacy, err)
		}
		r.log.Warn().Str("path", legacy).Msg("using legacy template list")
		r.s.CMS.Templates = templates
	case r.s.CMS.Templates != nil:
		r.log.Debug().Int("templates", len(r.s.CMS.Templates)).Msg("keeping configured templates")
	default:
		templates, err := r.opts.Templates()
		if err != nil {
			return err
		}
		r.s.CMS.Templates = templates
	}

	return nil
}
