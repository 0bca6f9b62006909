// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"slices"

	"github.com/MKhiriev/go-cms-settings/internal/overrides"
	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/models"
)

const (
	filerURLs         = "filer.server.urls"
	filerMediaPattern = `filer_public(?:_thumbnails)?/.*`
)

var filerApps = []string{
	"filer",
	"easy_thumbnails",
	"mptt",
	"polymorphic",
}

func applyFiler(r *run) error {
	s := r.s

	settings.Append(&s.InstalledApps, filerApps...)

	s.Filer.Debug = overrides.Bool(r.env.FilerDebug, s.Debug)
	s.Filer.EnableLogging = overrides.Bool(r.env.FilerEnableLogging, true)
	s.Filer.ImageUseIcon = true

	settings.Append(&s.AddonURLs, filerURLs)
	s.MediaHeaders = slices.Insert(s.MediaHeaders, 0, models.FarFutureCacheRule(filerMediaPattern))

	return nil
}
