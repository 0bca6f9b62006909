package models

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLanguagePair_YAML(t *testing.T) {
	var langs []LanguagePair
	require.NoError(t, yaml.Unmarshal([]byte("- [en, English]\n- [de, German]\n"), &langs))
	assert.Equal(t, []LanguagePair{{Code: "en", Name: "English"}, {Code: "de", Name: "German"}}, langs)

	err := yaml.Unmarshal([]byte("- [en, English, extra]\n"), &langs)
	require.ErrorIs(t, err, ErrMalformedPair)
}

func TestCMSLanguages_MarshalYAML_DefaultFirst(t *testing.T) {
	table := CMSLanguages{
		Default: CMSLanguageDefaults{Fallbacks: []string{"en"}, Public: true},
		Sites: map[int][]CMSLanguage{
			2: {{Code: "en", Name: "English", Fallbacks: []string{}, Public: true}},
			1: {{Code: "en", Name: "English", Fallbacks: []string{}, Public: true}},
		},
	}

	out, err := yaml.Marshal(table)
	require.NoError(t, err)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &node))
	mapping := node.Content[0]
	require.Len(t, mapping.Content, 6)
	assert.Equal(t, "default", mapping.Content[0].Value)
	assert.Equal(t, "1", mapping.Content[2].Value)
	assert.Equal(t, "!!int", mapping.Content[2].Tag)
	assert.Equal(t, "2", mapping.Content[4].Value)
}

func TestCMSLanguages_UnmarshalYAML(t *testing.T) {
	doc := `
default:
  fallbacks: [en, de]
  redirect_on_fallback: true
  public: true
  hide_untranslated: false
1:
  - code: en
    name: English
    fallbacks: [de]
    public: true
`
	var table CMSLanguages
	require.NoError(t, yaml.Unmarshal([]byte(doc), &table))

	assert.Equal(t, []string{"en", "de"}, table.Default.Fallbacks)
	assert.True(t, table.Default.RedirectOnFallback)
	assert.Equal(t, []CMSLanguage{{Code: "en", Name: "English", Fallbacks: []string{"de"}, Public: true}}, table.Sites[1])
}

func TestCMSLanguages_UnmarshalYAML_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not a mapping", doc: "- en\n- de\n"},
		{name: "non numeric site", doc: "main:\n  - code: en\n"},
		{name: "site not a list", doc: "1: en\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var table CMSLanguages
			err := yaml.Unmarshal([]byte(tt.doc), &table)
			require.ErrorIs(t, err, ErrMalformedSiteTable)
		})
	}
}

func TestParlerLanguages_HideUntranslatedOmittedWhenUnset(t *testing.T) {
	table := ParlerLanguages{
		Default: ParlerDefaults{Fallback: "en"},
		Sites:   map[int][]ParlerLanguage{1: {{Code: "en", Fallbacks: []string{}}}},
	}

	out, err := yaml.Marshal(table)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hide_untranslated")

	table.Default.HideUntranslated = lo.ToPtr(false)
	out, err = yaml.Marshal(table)
	require.NoError(t, err)
	assert.Contains(t, string(out), "hide_untranslated: false")

	var decoded ParlerLanguages
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, table, decoded)
}
