// Package tmpl renders text/template documents used for in-app content such
// as the onboarding tour pages.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// kbd formats a key binding as inline markdown code.
func kbd(key string) string {
	if key == "" {
		return ""
	}
	return "`" + key + "`"
}

// plural returns singular when n == 1 and singular+"s" otherwise.
func plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}

var funcs = template.FuncMap{
	"join":   strings.Join,
	"kbd":    kbd,
	"plural": plural,
	"upper":  strings.ToUpper,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - join: Join string slice with separator (e.g., join .Names ", ")
//   - kbd: Format a key binding as inline code (e.g., kbd "ctrl+k")
//   - plural: Pluralize a noun by count (e.g., plural 2 "lesson")
//   - upper: Upper-case a string
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
