package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "struct data",
			tmpl: "{{ .Name }} v{{ .Version }}",
			data: struct {
				Name    string
				Version string
			}{Name: "campus", Version: "1.0"},
			want: "campus v1.0",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name: "kbd function",
			tmpl: `press {{ kbd "ctrl+k" }}`,
			want: "press `ctrl+k`",
		},
		{
			name: "kbd empty",
			tmpl: `[{{ kbd "" }}]`,
			want: "[]",
		},
		{
			name: "join function",
			tmpl: `{{ join .Items ", " }}`,
			data: map[string][]string{"Items": {"a", "b", "c"}},
			want: "a, b, c",
		},
		{
			name: "plural function",
			tmpl: `{{ plural 1 "view" }} {{ plural 3 "view" }}`,
			want: "view views",
		},
		{
			name: "upper function",
			tmpl: `{{ upper "esc" }}`,
			want: "ESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
