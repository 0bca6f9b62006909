package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── HeaderRule ────────────────────────────────────────────────────────────────

func TestFarFutureCacheRule(t *testing.T) {
	rule := FarFutureCacheRule("CACHE/.*")

	assert.Equal(t, "CACHE/.*", rule.Pattern)
	assert.Equal(t, map[string]string{"Cache-Control": "public, max-age=31536000"}, rule.Headers)
}

func TestHeaderRule_YAML(t *testing.T) {
	var rules HeaderRules
	require.NoError(t, yaml.Unmarshal([]byte("- ['^media/.*', {Cache-Control: public}]\n"), &rules))
	require.Len(t, rules, 1)
	assert.Equal(t, HeaderRule{Pattern: "^media/.*", Headers: map[string]string{"Cache-Control": "public"}}, rules[0])

	out, err := yaml.Marshal(rules)
	require.NoError(t, err)

	var raw [][]any
	require.NoError(t, yaml.Unmarshal(out, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, []any{"^media/.*", map[string]any{"Cache-Control": "public"}}, raw[0])
}

func TestHeaderRule_JSON(t *testing.T) {
	var rule HeaderRule
	require.NoError(t, json.Unmarshal([]byte(`["CACHE/.*", {"Cache-Control": "public"}]`), &rule))
	assert.Equal(t, "CACHE/.*", rule.Pattern)
	assert.Equal(t, map[string]string{"Cache-Control": "public"}, rule.Headers)

	out, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.JSONEq(t, `["CACHE/.*", {"Cache-Control": "public"}]`, string(out))
}

func TestHeaderRule_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "mapping", doc: "pattern: x\nheaders: {}"},
		{name: "one element", doc: "['x']"},
		{name: "three elements", doc: "['x', {}, {}]"},
		{name: "headers not a mapping", doc: "['x', 'y']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rule HeaderRule
			assert.Error(t, yaml.Unmarshal([]byte(tt.doc), &rule))
		})
	}
}

func TestHeaderRules_IsZero(t *testing.T) {
	assert.True(t, HeaderRules(nil).IsZero())
	assert.False(t, HeaderRules{}.IsZero())
}

// ── CacheDurations ────────────────────────────────────────────────────────────

func TestDefaultCacheDurations_Fresh(t *testing.T) {
	a := DefaultCacheDurations()
	a[CacheContent] = 1

	b := DefaultCacheDurations()
	assert.Equal(t, 60, b[CacheContent])
	assert.Equal(t, 3600, b[CacheMenus])
	assert.Equal(t, 3600, b[CachePermissions])
}

// ── EditorSettings ────────────────────────────────────────────────────────────

func TestToolbarItem_YAML(t *testing.T) {
	toolbar := []ToolbarItem{
		Group("Undo", "Redo"),
		RowBreak(),
		Group("Source"),
	}

	out, err := yaml.Marshal(toolbar)
	require.NoError(t, err)

	var raw []any
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.Equal(t, []any{[]any{"Undo", "Redo"}, "/", []any{"Source"}}, raw)

	var decoded []ToolbarItem
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, toolbar, decoded)
}

func TestToolbarItem_UnmarshalYAML_Invalid(t *testing.T) {
	var decoded []ToolbarItem
	require.Error(t, yaml.Unmarshal([]byte("- Bold\n"), &decoded))
	require.Error(t, yaml.Unmarshal([]byte("- {a: b}\n"), &decoded))
}

// ── AppBuildInfo ──────────────────────────────────────────────────────────────

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
