package common

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/jmylchreest/tonal/pkg/tokens"
)

func execute(t *testing.T, src string, data any) (string, error) {
	t.Helper()
	tmpl, err := template.New("test").Funcs(TemplateFuncs()).Parse(src)
	if err != nil {
		t.Fatalf("Template parse error: %v", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	return buf.String(), err
}

func TestTemplateFuncs(t *testing.T) {
	cs := tokens.ColorScheme{
		"primary":            0xFFFF5733,
		"onPrimaryContainer": 0xFF000000,
		"surface":            0x80FFFFFF,
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"hex", `{{ get . "primary" | hex }}`, "#ff5733"},
		{"hexAlpha", `{{ get . "surface" | hexAlpha }}`, "#ffffff80"},
		{"hexNoHash", `{{ get . "primary" | hexNoHash }}`, "ff5733"},
		{"rgb", `{{ get . "primary" | rgb }}`, "rgb(255,87,51)"},
		{"rgba opaque", `{{ get . "primary" | rgba }}`, "rgba(255,87,51,1)"},
		{"rgba transparent", `{{ get . "primary" | withAlpha 0 | rgba }}`, "rgba(255,87,51,0)"},
		{"rgbDecimal", `{{ get . "primary" | rgbDecimal }}`, "255,87,51"},
		{"rgbSpaces", `{{ get . "primary" | rgbSpaces }}`, "255 87 51"},
		{"hsl black", `{{ get . "onPrimaryContainer" | hsl }}`, "hsl(0.0 0.0% 0.0%)"},
		{"hslValues white", `{{ get . "surface" | hslValues }}`, "0.0 0.0% 100.0%"},
		{"has", `{{ has . "primary" }} {{ has . "nope" }}`, "true false"},
		{"keys", `{{ range keys . }}{{ . }},{{ end }}`, "onPrimaryContainer,primary,surface,"},
		{"cssVar", `{{ cssVar "onPrimaryContainer" }}`, "--on-primary-container"},
		{"kebab", `{{ kebab "onPrimaryContainer" }}`, "on-primary-container"},
		{"snake", `{{ snake "onPrimaryContainer" }}`, "on_primary_container"},
		{"camel", `{{ camel "on-primary-container" }}`, "onPrimaryContainer"},
		{"trimPrefix", `{{ get . "primary" | hex | trimPrefix "#" }}`, "ff5733"},
		{"trimSuffix", `{{ "theme.css" | trimSuffix ".css" }}`, "theme"},
		{"replace", `{{ "on_primary" | replace "_" "-" }}`, "on-primary"},
		{"toUpper", `{{ get . "primary" | hex | toUpper }}`, "#FF5733"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.tmpl, cs)
			if err != nil {
				t.Fatalf("Template execute error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateFuncs_GetMissing(t *testing.T) {
	if _, err := execute(t, `{{ get . "missing" }}`, tokens.ColorScheme{}); err == nil {
		t.Error("expected error for a missing token")
	}
}

func TestWithAlphaClamps(t *testing.T) {
	if got := withAlphaFunc(2, 0x00123456); got != 0xFF123456 {
		t.Errorf("withAlpha(2) = %#x", got)
	}
	if got := withAlphaFunc(-1, 0xFF123456); got != 0x00123456 {
		t.Errorf("withAlpha(-1) = %#x", got)
	}
}
