// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Cache classes understood by CMS_CACHE_DURATIONS.
const (
	CacheContent     = "content"
	CacheMenus       = "menus"
	CachePermissions = "permissions"
)

// CacheDurations maps a cache class to its expiration in seconds.
type CacheDurations map[string]int

// DefaultCacheDurations returns the durations used when the host settings
// do not define CMS_CACHE_DURATIONS.
func DefaultCacheDurations() CacheDurations {
	return CacheDurations{
		CacheContent:     60,
		CacheMenus:       60 * 60,
		CachePermissions: 60 * 60,
	}
}
