// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/hashicorp/go-version"

	"github.com/MKhiriev/go-cms-settings/models"
)

// Templates decodes the CMSTemplates JSON blob.
func (o Options) Templates() (models.Templates, error) {
	templates, err := models.ParseTemplates([]byte(o.CMSTemplates))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplates, err)
	}

	return templates, nil
}

// Framework parses FrameworkVersion.
func (o Options) Framework() (*version.Version, error) {
	v, err := version.NewVersion(o.FrameworkVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrameworkVersion, err)
	}

	return v, nil
}

// WithDefaults returns o with every unset field filled from
// [DefaultOptions].
func (o Options) WithDefaults() (Options, error) {
	if err := mergo.Merge(&o, DefaultOptions(), mergo.WithoutDereference); err != nil {
		return Options{}, fmt.Errorf("error applying option defaults: %w", err)
	}

	return o, nil
}
