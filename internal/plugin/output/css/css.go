// Package css provides the CSS custom property exporter.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/tonal/internal/plugin/output/template"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

//go:embed *.tmpl
var templates embed.FS

const templateName = "tokens.css.tmpl"

// Plugin writes the projected tokens as CSS custom properties.
type Plugin struct {
	filename     string
	darkSelector string
	compact      bool
	loader       *tmplloader.Loader
}

// New creates a CSS exporter.
func New() *Plugin {
	return &Plugin{
		filename: "tokens.css",
		loader:   tmplloader.New("css", templates),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "CSS custom properties, optionally with a dark block"
}

// Loader exposes the template loader for overrides and dumping.
func (p *Plugin) Loader() *tmplloader.Loader {
	return p.loader
}

// SetLogger routes template resolution messages to logger.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.loader.WithLogger(logger)
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "css.file", p.filename, "CSS file name")
	cmd.Flags().StringVar(&p.darkSelector, "css.dark-selector", "", "Also emit the dark scheme under this selector (e.g. .dark)")
	cmd.Flags().BoolVar(&p.compact, "css.compact", false, "Write each block on a single line")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" {
		return fmt.Errorf("css.file cannot be empty")
	}
	return nil
}

// Generate renders the CSS file.
func (p *Plugin) Generate(data *output.Data) (map[string][]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}

	selector := data.Selector
	if selector == "" {
		selector = ":root"
	}

	if p.compact {
		var buf bytes.Buffer
		buf.WriteString(tokens.SerializeCSSVarMap(tokens.CSSVarMap(data.Tokens), selector))
		buf.WriteByte('\n')
		if p.darkSelector != "" {
			buf.WriteString(tokens.SerializeCSSVarMap(tokens.CSSVarMap(data.Dark), p.darkSelector))
			buf.WriteByte('\n')
		}
		return map[string][]byte{p.filename: buf.Bytes()}, nil
	}

	content, _, err := p.loader.Load(templateName)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(templateName).Funcs(common.TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	view := struct {
		*output.Data
		Selector     string
		DarkSelector string
	}{data, selector, p.darkSelector}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}
	buf.WriteByte('\n')

	return map[string][]byte{p.filename: buf.Bytes()}, nil
}
