// Package templater renders user supplied text/template files against a
// theme.
package templater

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/plugin/output/common"
)

// Spec is one template and the file it renders to.
type Spec struct {
	Template string
	Output   string
}

// ParseSpec reads "path/to/src.tmpl" or "path/to/src.tmpl=out/name". Without
// an explicit output the template's base name minus ".tmpl" is used.
func ParseSpec(s string) (Spec, error) {
	src, out, _ := strings.Cut(s, "=")
	src = strings.TrimSpace(src)
	out = strings.TrimSpace(out)
	if src == "" {
		return Spec{}, fmt.Errorf("template spec %q has no template path", s)
	}
	if out == "" {
		out = strings.TrimSuffix(filepath.Base(src), ".tmpl")
	}
	if !filepath.IsLocal(out) {
		return Spec{}, fmt.Errorf("template output %q must be a relative path", out)
	}
	return Spec{Template: src, Output: out}, nil
}

// Plugin renders each configured template.
type Plugin struct {
	files []string
}

// New creates a template exporter with no templates configured.
func New(files ...string) *Plugin {
	return &Plugin{files: files}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "template"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render your own text/template files with the theme tokens"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&p.files, "template.file", p.files, "Template to render, as src.tmpl or src.tmpl=output (repeatable)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if len(p.files) == 0 {
		return fmt.Errorf("at least one --template.file is required")
	}
	seen := make(map[string]string, len(p.files))
	for _, f := range p.files {
		spec, err := ParseSpec(f)
		if err != nil {
			return err
		}
		if prev, ok := seen[spec.Output]; ok {
			return fmt.Errorf("templates %s and %s both write %s", prev, spec.Template, spec.Output)
		}
		seen[spec.Output] = spec.Template
	}
	return nil
}

// Generate renders every template. Templates see output.Data as dot.
func (p *Plugin) Generate(data *output.Data) (map[string][]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(p.files))
	for _, f := range p.files {
		spec, err := ParseSpec(f)
		if err != nil {
			return nil, err
		}
		content, err := render(spec.Template, data)
		if err != nil {
			return nil, err
		}
		files[spec.Output] = content
	}
	return files, nil
}

func render(path string, data *output.Data) ([]byte, error) {
	src, err := os.ReadFile(path) // #nosec G304 - User-specified template, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(filepath.Base(path)).
		Funcs(common.TemplateFuncs()).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
