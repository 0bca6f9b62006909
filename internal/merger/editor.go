// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"github.com/MKhiriev/go-cms-settings/internal/settings"
	"github.com/MKhiriev/go-cms-settings/models"
)

const select2App = "django_select2"

// editorAssets are the style paths a boilerplate must provide.
type editorAssets struct {
	stylesSet   string
	contentsCSS []string
}

const bootstrap3 = "bootstrap3"

var (
	bootstrap3EditorAssets = editorAssets{
		stylesSet:   "default:/static/js/addons/ckeditor.wysiwyg.js",
		contentsCSS: []string{"/static/css/base.css"},
	}
	defaultEditorAssets = editorAssets{
		stylesSet:   "default:/static/js/modules/ckeditor.wysiwyg.js",
		contentsCSS: []string{"/static/css/base.css"},
	}
)

func assetsFor(boilerplate string) editorAssets {
	if boilerplate == bootstrap3 {
		return bootstrap3EditorAssets
	}
	return defaultEditorAssets
}

// editorSettings returns the editor block for the given boilerplate.
func editorSettings(boilerplate string) *models.EditorSettings {
	assets := assetsFor(boilerplate)

	return &models.EditorSettings{
		Height:       300,
		Language:     "{{ language }}",
		Toolbar:      "CMS",
		Skin:         "moono",
		ExtraPlugins: "cmsplugins",
		ToolbarHTMLField: []models.ToolbarItem{
			models.Group("Undo", "Redo"),
			models.Group("cmsplugins", "-", "ShowBlocks"),
			models.Group("Format", "Styles"),
			models.Group("TextColor", "BGColor", "-", "PasteText", "PasteFromWord"),
			models.Group("Maximize", ""),
			models.RowBreak(),
			models.Group("Bold", "Italic", "Underline", "-", "Subscript", "Superscript", "-", "RemoveFormat"),
			models.Group("JustifyLeft", "JustifyCenter", "JustifyRight"),
			models.Group("HorizontalRule"),
			models.Group("Link", "Unlink"),
			models.Group("NumberedList", "BulletedList", "-", "Outdent", "Indent", "-", "Table"),
			models.Group("Source"),
			models.Group("Link", "Unlink", "Anchor"),
		},
		StylesSet:   assets.stylesSet,
		ContentsCSS: append([]string{}, assets.contentsCSS...),
	}
}

func applyEditor(r *run) error {
	r.s.CKEditor = editorSettings(r.s.Boilerplates.Name)
	return nil
}

// applySelect2 installs the link widget backend. The widget only works
// with framework releases before 1.9.
func applySelect2(r *run) error {
	settings.Append(&r.s.InstalledApps, select2App)
	r.s.LinkUseSelect2 = r.framework.LessThan(select2DroppedVersion)
	return nil
}
