package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

func themeData(args map[string]any) plugin.ThemeData {
	return plugin.ThemeData{
		Theme: plugin.ThemeDocument{
			Source:  "#769cdf",
			Variant: "tonal-spot",
			Tokens: map[string]string{
				"primary":            "#415f91",
				"onPrimaryContainer": "#001b3f",
			},
		},
		PluginArgs: args,
	}
}

func TestGenerate(t *testing.T) {
	files, err := (&Exporter{}).Generate(context.Background(), themeData(nil))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := "# tonal-spot theme from #769cdf\n" +
		"export TONAL_ON_PRIMARY_CONTAINER=\"#001b3f\"\n" +
		"export TONAL_PRIMARY=\"#415f91\"\n"
	if got := string(files[defaultFile]); got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerateArgs(t *testing.T) {
	files, err := (&Exporter{}).Generate(context.Background(), themeData(map[string]any{
		"prefix": "THEME_",
		"file":   "colors.sh",
	}))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !bytes.Contains(files["colors.sh"], []byte("export THEME_PRIMARY=")) {
		t.Errorf("prefix not applied:\n%s", files["colors.sh"])
	}

	if _, err := (&Exporter{}).Generate(context.Background(), themeData(map[string]any{"prefix": 3})); err == nil {
		t.Error("expected an error for a non-string prefix")
	}
}

func TestMetadata(t *testing.T) {
	var buf bytes.Buffer
	if err := plugin.WriteInfo(&buf, (&Exporter{}).GetMetadata()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"name": "shellenv"`, `"plugin_protocol": "go-plugin"`} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("plugin info missing %s:\n%s", want, buf.String())
		}
	}
}
