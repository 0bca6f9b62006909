// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"github.com/MKhiriev/go-cms-settings/internal/overrides"
	"github.com/MKhiriev/go-cms-settings/internal/storage"
)

const defaultThumbnailQuality = 90

var (
	thumbnailPreserveExtensions = []string{"png", "gif"}

	thumbnailProcessors = []string{
		"easy_thumbnails.processors.colorspace",
		"easy_thumbnails.processors.autocrop",
		"filer.thumbnail_processors.scale_and_crop_with_subject_location",
		"easy_thumbnails.processors.filters",
	}

	thumbnailSourceGenerators = []string{
		"easy_thumbnails.source_generators.pil_image",
	}
)

// applyThumbnails configures the thumbnail pipeline. Thumbnails are stored
// with the media backend only when that backend is one the platform knows;
// otherwise the thumbnail library keeps its own default.
func applyThumbnails(r *run) error {
	t := &r.s.Thumbnails

	t.Quality = overrides.Int(r.env.ThumbnailQuality, defaultThumbnailQuality)
	// high resolution rendering times out on large uploads
	t.HighResolution = false
	t.PreserveExtensions = append([]string{}, thumbnailPreserveExtensions...)
	t.Processors = append([]string{}, thumbnailProcessors...)
	t.SourceGenerators = append([]string{}, thumbnailSourceGenerators...)
	t.CacheDimensions = true

	if backend, ok := storage.MatchBackend(r.s.DefaultFileStorage); ok {
		t.DefaultStorage = backend
	} else {
		r.log.Debug().Str("storage", r.s.DefaultFileStorage).Msg("no known thumbnail storage backend")
	}

	return nil
}
