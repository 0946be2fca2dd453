package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	outputtesting "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/theme"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

type stubPlugin struct{ name string }

func (s stubPlugin) Name() string                 { return s.name }
func (s stubPlugin) Description() string          { return "stub" }
func (s stubPlugin) RegisterFlags(*cobra.Command) {}
func (s stubPlugin) Validate() error              { return nil }
func (s stubPlugin) Generate(*output.Data) (map[string][]byte, error) {
	return map[string][]byte{s.name + ".txt": []byte(s.name)}, nil
}

func TestRegistry(t *testing.T) {
	r := output.NewRegistry(stubPlugin{"json"}, stubPlugin{"css"})
	r.Register(stubPlugin{"yaml"})

	if got := r.List(); !reflect.DeepEqual(got, []string{"css", "json", "yaml"}) {
		t.Errorf("List() = %v", got)
	}
	if _, ok := r.Get("css"); !ok {
		t.Error("Get(css) should succeed")
	}
	if _, err := r.Lookup("kitty"); !errors.Is(err, output.ErrUnknownFormat) {
		t.Errorf("Lookup(kitty) error = %v, want ErrUnknownFormat", err)
	}

	all := r.All()
	delete(all, "css")
	if _, ok := r.Get("css"); !ok {
		t.Error("All() must return a copy")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	written, err := output.WriteFiles(dir, map[string][]byte{
		"b.css":        []byte("b"),
		"nested/a.css": []byte("a"),
	})
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}

	want := []string{filepath.Join(dir, "b.css"), filepath.Join(dir, "nested", "a.css")}
	if !reflect.DeepEqual(written, want) {
		t.Errorf("written = %v, want %v", written, want)
	}
	if b, err := os.ReadFile(want[1]); err != nil || string(b) != "a" {
		t.Errorf("nested file = %q, %v", b, err)
	}

	if _, err := output.WriteFiles(dir, map[string][]byte{"../escape": nil}); err == nil {
		t.Error("expected error for a path outside the output directory")
	}
}

func TestNewData(t *testing.T) {
	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{Dark: true, BrightnessVariants: true})

	if data.Tokens["primary"] != data.Dark["primary"] {
		t.Error("dark projection should drive the unsuffixed tokens")
	}
	if _, ok := data.Tokens["primaryLight"]; !ok {
		t.Error("Tokens should carry brightness variants")
	}
	if _, ok := data.Light["primaryLight"]; ok {
		t.Error("Light must not carry brightness variants")
	}
	if data.Light["electricLeaf"] != data.Theme.CustomColors[0].Light.Color {
		t.Error("Light should carry the light custom colour")
	}

	if _, err := output.NewData(nil, tokens.ProjectOptions{}, ""); err == nil {
		t.Error("expected error for a nil theme")
	}
}

func TestNewDataAppliesHookToEverySide(t *testing.T) {
	th, err := theme.ThemeFromSeed(colour.ARGB(outputtesting.TestSeed))
	if err != nil {
		t.Fatalf("ThemeFromSeed() error = %v", err)
	}

	data, err := output.NewData(th, tokens.ProjectOptions{ModifyColorScheme: tokens.AmoledFilter}, ":root")
	if err != nil {
		t.Fatalf("NewData() error = %v", err)
	}
	for name, cs := range map[string]tokens.ColorScheme{"tokens": data.Tokens, "light": data.Light, "dark": data.Dark} {
		if cs["background"] != tokens.AmoledBlack {
			t.Errorf("%s background = %#x, want black", name, cs["background"])
		}
	}
}

func TestDocumentPalettes(t *testing.T) {
	doc := outputtesting.CreateTestData(t, tokens.ProjectOptions{PaletteTones: []float64{97.5}}).Document()

	for _, name := range []string{"primary", "secondary", "tertiary", "neutral", "neutralVariant", "error"} {
		tones, ok := doc.Palettes[name]
		if !ok {
			t.Fatalf("missing palette %s", name)
		}
		if len(tones) != len(theme.DefaultPaletteTones())+1 {
			t.Errorf("%s has %d tones", name, len(tones))
		}
		if tones["0"] != "#000000" || tones["100"] != "#ffffff" {
			t.Errorf("%s extremes = %s, %s", name, tones["0"], tones["100"])
		}
		if _, ok := tones["97.5"]; !ok {
			t.Errorf("%s should include requested tone 97.5", name)
		}
	}
	if len(doc.Schemes.Light) != len(doc.Schemes.Dark) || len(doc.Schemes.Light) == 0 {
		t.Error("both schemes should list every role")
	}
}
