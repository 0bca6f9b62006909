// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storage lists the media storage backends the platform knows how to
// configure from a storage URL.
package storage

// Scheme binds a storage URL scheme to the backend that serves it.
type Scheme struct {
	// Name is the URL scheme, e.g. "s3".
	Name string
	// Backend is the storage class identifier.
	Backend string
}

// Schemes are the known storage schemes in lookup order.
var Schemes = []Scheme{
	{Name: "s3", Backend: "aldryn_django.storage.S3MediaStorage"},
	{Name: "djfs", Backend: "fs.django.storage.DjeeseFSStorage"},
}

// MatchBackend returns the first known backend equal to backend.
// It reports false when backend is not a known storage backend.
func MatchBackend(backend string) (string, bool) {
	for _, scheme := range Schemes {
		if scheme.Backend == backend {
			return scheme.Backend, true
		}
	}

	return "", false
}
