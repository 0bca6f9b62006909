// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the ADDON_*, SETTINGS_*, LOG_*, ROUTES and CONFIG variables
// from environ into a fresh config. A nil environ means the process
// environment. Unset variables leave their fields zero, so the later
// sources in the builder still apply.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
