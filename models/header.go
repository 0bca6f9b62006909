// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FarFutureMaxAge is one year in seconds, used for immutable asset paths.
const FarFutureMaxAge = 86400 * 365

// HeaderRule attaches response headers to every served path matching Pattern.
// Rules are evaluated in order; the first match wins.
// It is encoded as a [pattern, {header: value}] array.
type HeaderRule struct {
	Pattern string
	Headers map[string]string
}

// HeaderRules is an ordered list of header rules (STATIC_HEADERS, MEDIA_HEADERS).
type HeaderRules []HeaderRule

// IsZero reports whether the list is absent. An empty list is still written.
func (r HeaderRules) IsZero() bool {
	return r == nil
}

// FarFutureCacheRule returns a rule marking pattern as publicly cacheable
// for [FarFutureMaxAge].
func FarFutureCacheRule(pattern string) HeaderRule {
	return HeaderRule{
		Pattern: pattern,
		Headers: map[string]string{
			"Cache-Control": fmt.Sprintf("public, max-age=%d", FarFutureMaxAge),
		},
	}
}

func (h HeaderRule) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{h.Pattern, h.Headers})
}

func (h *HeaderRule) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPair, err)
	}
	if len(items) != 2 {
		return fmt.Errorf("%w, got %d elements", ErrMalformedPair, len(items))
	}
	if err := json.Unmarshal(items[0], &h.Pattern); err != nil {
		return fmt.Errorf("header rule pattern: %w", err)
	}
	if err := json.Unmarshal(items[1], &h.Headers); err != nil {
		return fmt.Errorf("header rule %q: %w", h.Pattern, err)
	}
	return nil
}

func (h HeaderRule) MarshalYAML() (any, error) {
	return []any{h.Pattern, h.Headers}, nil
}

func (h *HeaderRule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d", ErrMalformedPair, node.Line)
	}
	if len(node.Content) != 2 {
		return fmt.Errorf("%w, got %d elements", ErrMalformedPair, len(node.Content))
	}
	if err := node.Content[0].Decode(&h.Pattern); err != nil {
		return fmt.Errorf("header rule pattern: %w", err)
	}
	if err := node.Content[1].Decode(&h.Headers); err != nil {
		return fmt.Errorf("header rule %q: %w", h.Pattern, err)
	}
	return nil
}
