// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can drive a
// settings composition.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Options.Validate(); err != nil {
		return err
	}

	if cfg.Settings.Path == "" || cfg.Settings.Output == "" {
		return ErrInvalidSettingsIO
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	return nil
}

// Validate checks the options record at the boundary, before any settings
// are touched.
func (o Options) Validate() error {
	if _, err := o.Templates(); err != nil {
		return err
	}

	for _, d := range []*int{o.CMSContentCacheDuration, o.CMSMenusCacheDuration} {
		if d != nil && *d < 0 {
			return fmt.Errorf("%w: %d seconds", ErrInvalidCacheDuration, *d)
		}
	}

	if _, err := o.Framework(); err != nil {
		return err
	}

	return nil
}
