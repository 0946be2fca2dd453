// Package document provides the json, yaml and toml exporters, which write
// the whole theme as a structured document.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/plugin/output"
)

type encodeFunc func(doc output.Document) ([]byte, error)

// Plugin writes output.Document in one serialization format.
type Plugin struct {
	format      string
	description string
	filename    string
	encode      encodeFunc
}

// NewJSON creates the json exporter.
func NewJSON() *Plugin {
	return &Plugin{
		format:      "json",
		description: "Theme document as JSON",
		filename:    "theme.json",
		encode: func(doc output.Document) ([]byte, error) {
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(b, '\n'), nil
		},
	}
}

// NewYAML creates the yaml exporter.
func NewYAML() *Plugin {
	return &Plugin{
		format:      "yaml",
		description: "Theme document as YAML",
		filename:    "theme.yaml",
		encode: func(doc output.Document) ([]byte, error) {
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return nil, err
			}
			if err := enc.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

// NewTOML creates the toml exporter.
func NewTOML() *Plugin {
	return &Plugin{
		format:      "toml",
		description: "Theme document as TOML",
		filename:    "theme.toml",
		encode: func(doc output.Document) ([]byte, error) {
			var buf bytes.Buffer
			enc := toml.NewEncoder(&buf)
			enc.SetIndentTables(true)
			if err := enc.Encode(doc); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return p.format
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return p.description
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, p.format+".file", p.filename, "Output file name")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" {
		return fmt.Errorf("%s.file cannot be empty", p.format)
	}
	return nil
}

// Generate encodes the theme document.
func (p *Plugin) Generate(data *output.Data) (map[string][]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}
	b, err := p.encode(data.Document())
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", p.format, err)
	}
	return map[string][]byte{p.filename: b}, nil
}
