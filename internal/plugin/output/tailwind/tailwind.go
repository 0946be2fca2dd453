// Package tailwind provides a Tailwind CSS / shadcn/ui output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"cogentcore.org/core/base/strcase"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/tonal/internal/plugin/output/template"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

//go:embed *.tmpl
var templates embed.FS

// Output formats and the file each one writes.
const (
	FormatCSS    = "css"
	FormatConfig = "config"
	FormatShadcn = "shadcn"
)

var formatFiles = map[string]struct{ template, file string }{
	FormatCSS:    {"theme.css.tmpl", "theme.css"},
	FormatConfig: {"tailwind.config.js.tmpl", "tailwind.config.js"},
	FormatShadcn: {"globals.css.tmpl", "globals.css"},
}

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	format string
	loader *tmplloader.Loader
}

// New creates a new Tailwind CSS output plugin writing a v4 @theme block.
func New() *Plugin {
	return NewWithFormat(FormatCSS)
}

// NewWithFormat creates a new Tailwind CSS output plugin with a specific format.
func NewWithFormat(format string) *Plugin {
	return &Plugin{
		format: format,
		loader: tmplloader.New("tailwind", templates),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Tailwind CSS theme (v4 @theme, v3 config or shadcn/ui globals.css)"
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
	cmd.Flags().StringVar(&p.format, "tailwind.format", p.format, "Output format (css, config or shadcn)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if _, ok := formatFiles[p.format]; !ok {
		return fmt.Errorf("invalid format: %s (must be 'css', 'config' or 'shadcn')", p.format)
	}
	return nil
}

// Generate renders the file for the configured format.
func (p *Plugin) Generate(data *output.Data) (map[string][]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := formatFiles[p.format]
	content, _, err := p.loader.Load(f.template)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(f.template).Funcs(common.TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", p.format, err)
	}

	var view any = data
	if p.format == FormatShadcn {
		view = prepareShadcnData(data)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", p.format, err)
	}

	return map[string][]byte{f.file: buf.Bytes()}, nil
}

// ShadcnData holds data for the shadcn/ui globals.css template.
type ShadcnData struct {
	Light ShadcnTheme
	Dark  ShadcnTheme
}

// ShadcnTheme holds the shadcn/ui variables of one side.
type ShadcnTheme struct {
	Background            uint32
	Foreground            uint32
	Card                  uint32
	CardForeground        uint32
	Popover               uint32
	PopoverForeground     uint32
	Primary               uint32
	PrimaryForeground     uint32
	Secondary             uint32
	SecondaryForeground   uint32
	Muted                 uint32
	MutedForeground       uint32
	Accent                uint32
	AccentForeground      uint32
	Destructive           uint32
	DestructiveForeground uint32
	Border                uint32
	Input                 uint32
	Ring                  uint32
	Custom                []ShadcnCustomColour
}

// ShadcnCustomColour is an extra variable emitted after the standard set.
type ShadcnCustomColour struct {
	Name  string
	Value uint32
}

func prepareShadcnData(data *output.Data) ShadcnData {
	return ShadcnData{
		Light: buildShadcnTheme(data, data.Light),
		Dark:  buildShadcnTheme(data, data.Dark),
	}
}

// buildShadcnTheme maps Material roles onto the shadcn/ui variable set.
func buildShadcnTheme(data *output.Data, cs tokens.ColorScheme) ShadcnTheme {
	role := func(k material.RoleKey) uint32 {
		return cs[tokens.RoleTokenName(k, "")]
	}

	t := ShadcnTheme{
		Background:            role(material.Surface),
		Foreground:            role(material.OnSurface),
		Card:                  role(material.SurfaceContainerLow),
		CardForeground:        role(material.OnSurface),
		Popover:               role(material.SurfaceContainer),
		PopoverForeground:     role(material.OnSurface),
		Primary:               role(material.Primary),
		PrimaryForeground:     role(material.OnPrimary),
		Secondary:             role(material.SecondaryContainer),
		SecondaryForeground:   role(material.OnSecondaryContainer),
		Muted:                 role(material.SurfaceContainerHighest),
		MutedForeground:       role(material.OnSurfaceVariant),
		Accent:                role(material.TertiaryContainer),
		AccentForeground:      role(material.OnTertiaryContainer),
		Destructive:           role(material.Error),
		DestructiveForeground: role(material.OnError),
		Border:                role(material.OutlineVariant),
		Input:                 role(material.Outline),
		Ring:                  role(material.Primary),
	}

	for _, g := range data.Theme.CustomColors {
		for _, sub := range material.SubRoles() {
			name := tokens.FormatTokenName(string(sub), g.Spec.Name, "")
			t.Custom = append(t.Custom, ShadcnCustomColour{
				Name:  strcase.ToKebab(name),
				Value: cs[name],
			})
		}
	}
	return t
}
