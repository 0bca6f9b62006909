// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"fmt"

	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/internal/urls"
)

// ssoPublicRoutes are internal endpoints reachable without logging in.
// The page resolver is called when a user logs out from the toolbar.
var ssoPublicRoutes = []string{
	urls.RouteCheckUninstall,
	urls.RoutePageResolve,
}

// applySSO extends the SSO allow-list. Without the SSO addon the key is
// absent and nothing is written.
func (m *Merger) applySSO(r *run) error {
	if r.s.SSOLoginWhiteList == nil {
		return nil
	}

	for _, name := range ssoPublicRoutes {
		path, err := m.resolver.Reverse(name)
		if err != nil {
			return fmt.Errorf("ALDRYN_SSO_LOGIN_WHITE_LIST: %w", err)
		}
		settings.Append(&r.s.SSOLoginWhiteList, path)
	}

	return nil
}
