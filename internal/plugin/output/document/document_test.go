package document

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	outputtesting "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

func TestPlugins(t *testing.T) {
	tests := []struct {
		plugin *Plugin
		file   string
	}{
		{NewJSON(), "theme.json"},
		{NewYAML(), "theme.yaml"},
		{NewTOML(), "theme.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.plugin.Name(), func(t *testing.T) {
			outputtesting.RunAllTests(t, tt.plugin, outputtesting.TestConfig{
				ExpectedName:  tt.plugin.Name(),
				ExpectedFiles: []string{tt.file},
				ExpectedFlag:  tt.plugin.Name() + ".file",
			})
		})
	}
}

func TestDocumentsDecodeToTheSameTheme(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{PaletteTones: []float64{95}})

	decoders := map[string]func([]byte, any) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
		"toml": toml.Unmarshal,
	}
	plugins := map[string]*Plugin{"json": NewJSON(), "yaml": NewYAML(), "toml": NewTOML()}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			files, err := plugins[name].Generate(data)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			var doc output.Document
			if err := decode(files["theme."+name], &doc); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if doc.Source != colour.ToHex(outputtesting.TestSeed) {
				t.Errorf("source = %q", doc.Source)
			}
			if doc.Variant != "tonal-spot" {
				t.Errorf("variant = %q", doc.Variant)
			}
			if got, want := doc.Schemes.Dark["primary"], colour.ToHex(data.Dark["primary"]); got != want {
				t.Errorf("dark primary = %q, want %q", got, want)
			}
			if got, want := doc.Tokens["primary95"], colour.ToHex(data.Tokens["primary95"]); got != want {
				t.Errorf("primary95 token = %q, want %q", got, want)
			}
			if doc.Palettes["error"]["100"] != "#ffffff" {
				t.Errorf("error palette tone 100 = %q", doc.Palettes["error"]["100"])
			}
			if len(doc.CustomColors) != 1 || doc.CustomColors[0].Name != "Electric Leaf" {
				t.Errorf("custom colours = %+v", doc.CustomColors)
			}
		})
	}
}
