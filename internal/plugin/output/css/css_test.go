package css

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	outputtesting "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

func newPlugin(t *testing.T, args ...string) *Plugin {
	t.Helper()
	p := New()
	p.Loader().WithCustomBase(t.TempDir())
	cmd := &cobra.Command{Use: "test"}
	p.RegisterFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return p
}

func TestCSSPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, newPlugin(t), outputtesting.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{"tokens.css"},
	})
}

func TestGenerateTemplate(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	files, err := newPlugin(t).Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	css := string(files["tokens.css"])
	if !strings.Contains(css, ":root {") {
		t.Error("expected a :root block")
	}
	want := "  --on-primary: " + colour.ToHex(data.Tokens["onPrimary"]) + ";"
	if !strings.Contains(css, want) {
		t.Errorf("expected %q in output", want)
	}
	if strings.Contains(css, ".dark") {
		t.Error("dark block should only be written when a dark selector is set")
	}
}

func TestGenerateDarkSelector(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	data.Selector = "html"
	files, err := newPlugin(t, "--css.dark-selector", ".dark").Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	css := string(files["tokens.css"])
	if !strings.Contains(css, "html {") {
		t.Error("expected the configured light selector")
	}
	want := "  --primary: " + colour.ToHex(data.Dark["primary"]) + ";"
	if !strings.Contains(css, ".dark {") || !strings.Contains(css, want) {
		t.Errorf("expected a .dark block containing %q", want)
	}
}

func TestGenerateCompact(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	files, err := newPlugin(t, "--css.compact", "--css.file", "theme/vars.css").Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got := string(files["theme/vars.css"])
	want := tokens.SerializeCSSVarMap(tokens.CSSVarMap(data.Tokens), ":root") + "\n"
	if got != want {
		t.Errorf("compact output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerateUsesCustomTemplate(t *testing.T) {
	p := newPlugin(t)
	if err := p.Loader().DumpTemplate(templateName, false); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !p.Loader().HasCustomTemplate(templateName) {
		t.Fatal("expected dumped override")
	}

	if _, err := p.Generate(outputtesting.CreateTestData(t, tokens.ProjectOptions{})); err != nil {
		t.Fatalf("Generate() with override error = %v", err)
	}
}
