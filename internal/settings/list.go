// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "slices"

// OptionalList is a list whose presence matters: an empty list is written
// out, an absent (nil) one is omitted.
type OptionalList []string

// IsZero reports whether the list is absent. yaml.v3 consults it for
// omitempty.
func (l OptionalList) IsZero() bool {
	return l == nil
}

// Append adds entries to the end of list. Entries already present are added
// again; registration lists are not deduplicated.
func Append[S ~[]string](list *S, entries ...string) {
	*list = append(*list, entries...)
}

// Prepend puts entry at position 0 of list.
func Prepend[S ~[]string](list *S, entry string) {
	*list = slices.Insert(*list, 0, entry)
}

// InsertBefore puts entry immediately before the first occurrence of anchor.
//
// If anchor is not in list an [*AnchorError] is returned and list is left
// untouched.
func InsertBefore[S ~[]string](list *S, anchor, entry string) error {
	i := slices.Index(*list, anchor)
	if i < 0 {
		return &AnchorError{Anchor: anchor, Entry: entry}
	}

	*list = slices.Insert(*list, i, entry)
	return nil
}
