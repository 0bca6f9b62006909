// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package urls turns named routes of the host framework into paths.
//
// The router itself lives in the host framework; this package only knows the
// handful of routes the CMS addon has to reference while settings are being
// composed.
package urls

//go:generate mockgen -source=resolver.go -destination=../mock/url_resolver_mock.go -package=mock

import (
	"errors"
	"fmt"
	"maps"
)

// Route names referenced by the CMS addon.
const (
	RouteCheckUninstall = "cms-check-uninstall"
	RoutePageResolve    = "admin:cms_page_resolve"
)

// ErrNoReverseMatch is returned for a route name the resolver does not know.
var ErrNoReverseMatch = errors.New("no reverse match")

// Resolver resolves a named route to its path.
type Resolver interface {
	Reverse(name string) (string, error)
}

// RouteTable is a static [Resolver].
type RouteTable map[string]string

// DefaultRoutes returns the paths the CMS mounts its internal views at.
func DefaultRoutes() RouteTable {
	return RouteTable{
		RouteCheckUninstall: "/cms-check-uninstall/",
		RoutePageResolve:    "/admin/cms/page/resolve/",
	}
}

// Reverse returns the path registered for name.
func (t RouteTable) Reverse(name string) (string, error) {
	path, ok := t[name]
	if !ok {
		return "", fmt.Errorf("%w for %q", ErrNoReverseMatch, name)
	}
	return path, nil
}

// With returns a copy of t with routes added or replaced.
func (t RouteTable) With(routes map[string]string) RouteTable {
	out := maps.Clone(t)
	if out == nil {
		out = RouteTable{}
	}
	maps.Copy(out, routes)
	return out
}
