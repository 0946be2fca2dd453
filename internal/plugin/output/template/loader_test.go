package template

import (
	"embed"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

//go:embed testdata/*.tmpl
var testEmbedFS embed.FS

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	return New("testplugin", testEmbedFS).WithCustomBase(t.TempDir())
}

func TestLoader_Load(t *testing.T) {
	loader := newTestLoader(t)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("testdata/test.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if len(content) == 0 {
			t.Error("expected content, got empty")
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customContent := []byte("/* custom */\n")
		customPath := loader.CustomPath("testdata/test.tmpl")
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
			t.Fatalf("failed to create custom template dir: %v", err)
		}
		if err := os.WriteFile(customPath, customContent, 0o644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load("testdata/test.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != string(customContent) {
			t.Errorf("expected custom content %q, got %q", customContent, content)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, _, err := loader.Load("nonexistent.tmpl"); err == nil {
			t.Error("expected error for non-existent template")
		}
	})
}

func TestLoader_Paths(t *testing.T) {
	loader := New("css", testEmbedFS).WithCustomBase("/home/user/.config/tonal/templates")

	if got, want := loader.CustomPath("tokens.css.tmpl"), "/home/user/.config/tonal/templates/css/tokens.css.tmpl"; got != want {
		t.Errorf("CustomPath() = %q, want %q", got, want)
	}
	if got, want := loader.CustomDir(), "/home/user/.config/tonal/templates/css"; got != want {
		t.Errorf("CustomDir() = %q, want %q", got, want)
	}
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	templates, err := newTestLoader(t).ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 2 {
		t.Errorf("expected 2 templates, got %v", templates)
	}
}

func TestLoader_DumpTemplate(t *testing.T) {
	loader := newTestLoader(t)

	if err := loader.DumpTemplate("testdata/test.tmpl", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loader.HasCustomTemplate("testdata/test.tmpl") {
		t.Error("expected dumped template to exist")
	}

	err := loader.DumpTemplate("testdata/test.tmpl", false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("expected ErrTemplateExists, got %v", err)
	}

	if err := loader.DumpTemplate("testdata/test.tmpl", true); err != nil {
		t.Errorf("unexpected error with force: %v", err)
	}

	if err := loader.DumpTemplate("nonexistent.tmpl", false); err == nil {
		t.Error("expected error for non-existent template")
	}
}

func TestLoader_DumpAllTemplates_PartialExisting(t *testing.T) {
	loader := newTestLoader(t)

	if err := loader.DumpTemplate("testdata/test.tmpl", false); err != nil {
		t.Fatalf("failed to dump first template: %v", err)
	}

	dumped, err := loader.DumpAllTemplates(false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("expected ErrTemplateExists for the existing file, got %v", err)
	}
	if len(dumped) != 1 || dumped[0] != loader.CustomPath("testdata/other.tmpl") {
		t.Errorf("expected only other.tmpl to be dumped, got %v", dumped)
	}

	dumped, err = loader.DumpAllTemplates(true)
	if err != nil {
		t.Fatalf("unexpected error with force flag: %v", err)
	}
	if len(dumped) != 2 {
		t.Errorf("expected 2 dumped templates, got %v", dumped)
	}
}

func TestLoader_GetInfo(t *testing.T) {
	loader := newTestLoader(t)

	info := loader.GetInfo("testdata/test.tmpl")
	if !info.EmbeddedExists || info.CustomExists {
		t.Errorf("unexpected info before dump: %+v", info)
	}

	if err := loader.DumpTemplate("testdata/test.tmpl", false); err != nil {
		t.Fatalf("dump: %v", err)
	}
	info = loader.GetInfo("testdata/test.tmpl")
	if !info.CustomExists || info.CustomPath != loader.CustomPath("testdata/test.tmpl") {
		t.Errorf("unexpected info after dump: %+v", info)
	}
}
