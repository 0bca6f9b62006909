// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultTemplatesJSON is the template list offered when the operator does
// not configure one.
const DefaultTemplatesJSON = `[["default.html", "Default"]]`

// TemplateChoice is a page template the editor can pick from.
// It is encoded as a [path, display-name] array.
type TemplateChoice struct {
	// Path is the template path relative to the template search dirs.
	Path string
	// Name is the label shown in the page settings form.
	Name string
}

// Templates is an ordered list of page templates (CMS_TEMPLATES).
type Templates []TemplateChoice

// IsZero reports whether the list is absent. An empty list is still written.
func (t Templates) IsZero() bool {
	return t == nil
}

// ParseTemplates decodes a JSON list of [path, display-name] pairs.
func ParseTemplates(data []byte) (Templates, error) {
	var templates Templates
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("error decoding templates: %w", err)
	}
	if templates == nil {
		templates = Templates{}
	}

	return templates, nil
}

func (t TemplateChoice) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Path, t.Name})
}

func (t *TemplateChoice) UnmarshalJSON(data []byte) error {
	var p pair
	if err := p.unmarshalJSON(data); err != nil {
		return err
	}
	t.Path, t.Name = p[0], p[1]
	return nil
}

func (t TemplateChoice) MarshalYAML() (any, error) {
	return []string{t.Path, t.Name}, nil
}

func (t *TemplateChoice) UnmarshalYAML(node *yaml.Node) error {
	var p pair
	if err := p.unmarshalYAML(node); err != nil {
		return err
	}
	t.Path, t.Name = p[0], p[1]
	return nil
}
