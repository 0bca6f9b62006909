package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTemplates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Templates
		wantErr error
	}{
		{
			name:  "default",
			input: DefaultTemplatesJSON,
			want:  Templates{{Path: "default.html", Name: "Default"}},
		},
		{
			name:  "order preserved",
			input: `[["b.html","B"],["a.html","A"]]`,
			want:  Templates{{Path: "b.html", Name: "B"}, {Path: "a.html", Name: "A"}},
		},
		{
			name:  "empty list",
			input: `[]`,
			want:  Templates{},
		},
		{
			name:  "null",
			input: `null`,
			want:  Templates{},
		},
		{
			name:    "single element pair",
			input:   `[["a.html"]]`,
			wantErr: ErrMalformedPair,
		},
		{
			name:    "object instead of pair",
			input:   `[{"path":"a.html"}]`,
			wantErr: ErrMalformedPair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTemplates([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTemplates_InvalidJSON(t *testing.T) {
	_, err := ParseTemplates([]byte(`[["a.html",`))
	require.Error(t, err)
}

func TestTemplateChoice_EncodedAsPair(t *testing.T) {
	choice := TemplateChoice{Path: "fullwidth.html", Name: "Fullwidth"}

	data, err := json.Marshal(choice)
	require.NoError(t, err)
	assert.JSONEq(t, `["fullwidth.html","Fullwidth"]`, string(data))

	out, err := yaml.Marshal(Templates{choice})
	require.NoError(t, err)

	var raw [][]string
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.Equal(t, [][]string{{"fullwidth.html", "Fullwidth"}}, raw)
}

func TestTemplateChoice_DecodeYAML(t *testing.T) {
	var templates Templates
	require.NoError(t, yaml.Unmarshal([]byte("- [a.html, A]\n- [b.html, B]\n"), &templates))
	assert.Equal(t, Templates{{Path: "a.html", Name: "A"}, {Path: "b.html", Name: "B"}}, templates)

	err := yaml.Unmarshal([]byte("- [a.html]\n"), &templates)
	require.ErrorIs(t, err, ErrMalformedPair)
}
