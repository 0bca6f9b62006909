// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// toolbarBreak is the toolbar entry that starts a new toolbar row.
const toolbarBreak = "/"

// ToolbarItem is one entry of an editor toolbar: either a group of buttons
// or a row break.
type ToolbarItem struct {
	Buttons []string
	Break   bool
}

// Group returns a toolbar entry holding the given buttons.
func Group(buttons ...string) ToolbarItem {
	return ToolbarItem{Buttons: buttons}
}

// RowBreak returns a toolbar entry that wraps the toolbar onto a new row.
func RowBreak() ToolbarItem {
	return ToolbarItem{Break: true}
}

func (t ToolbarItem) MarshalYAML() (any, error) {
	if t.Break {
		return toolbarBreak, nil
	}
	return t.Buttons, nil
}

func (t *ToolbarItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != toolbarBreak {
			return fmt.Errorf("unexpected toolbar entry %q at line %d", node.Value, node.Line)
		}
		*t = RowBreak()
		return nil
	case yaml.SequenceNode:
		var buttons []string
		if err := node.Decode(&buttons); err != nil {
			return err
		}
		*t = Group(buttons...)
		return nil
	default:
		return fmt.Errorf("unexpected toolbar entry at line %d", node.Line)
	}
}

// EditorSettings is the rich-text editor configuration block
// (CKEDITOR_SETTINGS).
type EditorSettings struct {
	Height           int           `yaml:"height"`
	Language         string        `yaml:"language"`
	Toolbar          string        `yaml:"toolbar"`
	Skin             string        `yaml:"skin"`
	ExtraPlugins     string        `yaml:"extraPlugins"`
	ToolbarHTMLField []ToolbarItem `yaml:"toolbar_HTMLField"`
	StylesSet        string        `yaml:"stylesSet"`
	ContentsCSS      []string      `yaml:"contentsCss"`
}
