// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformedPair is returned when a value expected to be a two-element
// [key, label] array has a different shape.
var ErrMalformedPair = errors.New("expected a two-element array")

// pair is the wire shape shared by template choices and language entries:
// a JSON/YAML array of exactly two strings.
type pair [2]string

func (p *pair) decode(items []string) error {
	if len(items) != 2 {
		return fmt.Errorf("%w, got %d elements", ErrMalformedPair, len(items))
	}
	p[0], p[1] = items[0], items[1]
	return nil
}

func (p *pair) unmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPair, err)
	}
	return p.decode(items)
}

func (p *pair) unmarshalYAML(node *yaml.Node) error {
	var items []string
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPair, err)
	}
	return p.decode(items)
}
