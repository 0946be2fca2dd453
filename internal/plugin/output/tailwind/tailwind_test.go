package tailwind

import (
	"strings"
	"testing"

	outputtesting "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

func newPlugin(t *testing.T, format string) *Plugin {
	t.Helper()
	p := NewWithFormat(format)
	p.Loader().WithCustomBase(t.TempDir())
	return p
}

func TestTailwindPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, newPlugin(t, FormatCSS), outputtesting.TestConfig{
		ExpectedName:  "tailwind",
		ExpectedFiles: []string{"theme.css"},
		ExpectedFlag:  "tailwind.format",
	})
}

func TestTailwindPlugin_Validate(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Valid CSS format", FormatCSS, false},
		{"Valid config format", FormatConfig, false},
		{"Valid shadcn format", FormatShadcn, false},
		{"Invalid format", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewWithFormat(tt.format).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTailwindPlugin_GenerateCSS(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	files, err := newPlugin(t, FormatCSS).Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	css := string(files["theme.css"])
	wantLight := "--color-primary: " + colour.ToHex(data.Tokens["primary"]) + ";"
	wantDark := "--color-primary: " + colour.ToHex(data.Dark["primary"]) + ";"

	if !strings.Contains(css, "@theme {") {
		t.Error("CSS should contain an @theme block")
	}
	if !strings.Contains(css, wantLight) {
		t.Errorf("CSS should contain %q", wantLight)
	}
	if !strings.Contains(css, ".dark {") || !strings.Contains(css, wantDark) {
		t.Errorf("CSS should contain a .dark block with %q", wantDark)
	}
	if !strings.Contains(css, "--color-on-electric-leaf-container:") {
		t.Error("CSS should contain custom colour tokens")
	}
}

func TestTailwindPlugin_GenerateConfig(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	files, err := newPlugin(t, FormatConfig).Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	config := string(files["tailwind.config.js"])
	for _, want := range []string{
		"module.exports",
		"darkMode: 'class'",
		"'on-primary-container': '" + colour.ToHex(data.Tokens["onPrimaryContainer"]) + "'",
	} {
		if !strings.Contains(config, want) {
			t.Errorf("config should contain %q", want)
		}
	}
}

func TestTailwindPlugin_GenerateShadcn(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	files, err := newPlugin(t, FormatShadcn).Generate(data)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	css := string(files["globals.css"])
	for _, want := range []string{
		"@tailwind base;",
		":root {",
		".dark {",
		"--background: ",
		"--destructive-foreground: ",
		"--electric-leaf: ",
		"--radius: 0.5rem;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("globals.css should contain %q", want)
		}
	}
	if strings.Count(css, "--ring: ") != 2 {
		t.Error("expected --ring in both the light and dark blocks")
	}
}

func TestBuildShadcnTheme(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	got := buildShadcnTheme(data, data.Dark)

	if got.Background != data.Dark["surface"] {
		t.Errorf("Background = %#x, want dark surface", got.Background)
	}
	if got.Destructive != data.Dark["error"] || got.DestructiveForeground != data.Dark["onError"] {
		t.Error("destructive should map to the error roles")
	}
	if len(got.Custom) != 4 || got.Custom[0].Name != "electric-leaf" {
		t.Errorf("unexpected custom colours %+v", got.Custom)
	}
}
