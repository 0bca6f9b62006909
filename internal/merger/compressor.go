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
	compressorApp       = "compressor"
	compressorFinder    = "compressor.finders.CompressorFinder"
	compressorOutputDir = "CACHE"
)

// applyCompressor keeps the compressor installed but disabled unless the
// environment turns it on. Compressed output is served with far-future
// headers when enabled.
func applyCompressor(r *run) error {
	s := r.s

	settings.Append(&s.InstalledApps, compressorApp)
	settings.Append(&s.StaticFilesFinders, compressorFinder)

	s.Compressor.Enabled = overrides.Bool(r.env.CompressEnabled, false)
	if !s.Compressor.Enabled {
		return nil
	}

	dir := s.Compressor.OutputDir
	if dir == "" {
		dir = compressorOutputDir
	}
	s.StaticHeaders = slices.Insert(s.StaticHeaders, 0, models.FarFutureCacheRule(dir+"/.*"))

	return nil
}
