package templater

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	outputtesting "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

func writeTemplate(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestTemplaterPlugin(t *testing.T) {
	path := writeTemplate(t, "colors.conf.tmpl", `primary={{ get .Tokens "primary" | hexNoHash }}`)
	outputtesting.RunAllTests(t, New(path), outputtesting.TestConfig{
		ExpectedName:  "template",
		ExpectedFiles: []string{"colors.conf"},
		ExpectedFlag:  "template.file",
	})
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    Spec
		wantErr bool
	}{
		{"theme/kitty.conf.tmpl", Spec{"theme/kitty.conf.tmpl", "kitty.conf"}, false},
		{"a.tmpl=out/b.conf", Spec{"a.tmpl", "out/b.conf"}, false},
		{"=x", Spec{}, true},
		{"a.tmpl=/etc/passwd", Spec{}, true},
		{"a.tmpl=../x", Spec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateRendersFuncs(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	path := writeTemplate(t, "vars.tmpl", `{{ range $k := keys .Light }}{{ if eq $k "primary" }}{{ cssVar $k }} {{ index $.Light $k | rgb }}{{ end }}{{ end }}
{{ .Theme.Variant.Label }}
{{ get .Dark "onElectricLeaf" | withAlpha 0.5 | rgba }}`)

	files, err := New(path + "=vars.txt").Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := strings.Split(string(files["vars.txt"]), "\n")
	p := data.Light["primary"]
	if want := "--primary rgb(" + itoa(colour.Red(p)) + "," + itoa(colour.Green(p)) + "," + itoa(colour.Blue(p)) + ")"; lines[0] != want {
		t.Errorf("line 1 = %q, want %q", lines[0], want)
	}
	if lines[1] != "Tonal Spot" {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",0.502)") {
		t.Errorf("line 3 = %q, want half alpha", lines[2])
	}
}

func TestGenerateErrors(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})

	if err := New().Validate(); err == nil {
		t.Error("expected error without templates")
	}

	a := writeTemplate(t, "same.tmpl", "a")
	b := writeTemplate(t, "same.tmpl", "b")
	if err := New(a, b).Validate(); err == nil {
		t.Error("expected error for two templates writing the same file")
	}

	missing := writeTemplate(t, "missing.tmpl", `{{ get .Tokens "nope" }}`)
	if _, err := New(missing).Generate(data); err == nil {
		t.Error("expected error for an unknown token")
	}

	if _, err := New(filepath.Join(t.TempDir(), "absent.tmpl")).Generate(data); err == nil {
		t.Error("expected error for a missing template file")
	}

	good := writeTemplate(t, "good.tmpl", "ok")
	for _, spec := range []string{"=x", good + "=../escape.conf"} {
		files, err := New(good, spec).Generate(data)
		if err == nil || !strings.Contains(err.Error(), "template") {
			t.Errorf("Generate() with spec %q error = %v, want template spec error", spec, err)
		}
		if files != nil {
			t.Errorf("Generate() with spec %q returned files %v", spec, files)
		}
	}
}

func itoa(v uint8) string {
	return strconv.Itoa(int(v))
}
