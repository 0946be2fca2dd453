package main

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"cogentcore.org/core/base/strcase"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

const (
	defaultPrefix = "TONAL_"
	defaultFile   = "tonal.env"
	version       = "0.1.0"
)

// Exporter writes tokens as `export NAME="#rrggbb"` lines.
type Exporter struct{}

// Generate renders one assignment per token, ordered by name. The
// "prefix" and "file" plugin arguments override the variable prefix and
// output file name.
func (e *Exporter) Generate(_ context.Context, data plugin.ThemeData) (map[string][]byte, error) {
	prefix, err := stringArg(data.PluginArgs, "prefix", defaultPrefix)
	if err != nil {
		return nil, err
	}
	file, err := stringArg(data.PluginArgs, "file", defaultFile)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(data.Theme.Tokens))
	for name := range data.Theme.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s theme from %s\n", data.Theme.Variant, data.Theme.Source)
	for _, name := range names {
		fmt.Fprintf(&buf, "export %s%s=%q\n", prefix, strcase.ToSNAKE(name), data.Theme.Tokens[name])
	}
	return map[string][]byte{file: buf.Bytes()}, nil
}

// PreExecute never skips.
func (e *Exporter) PreExecute(context.Context) (bool, string, error) {
	return false, "", nil
}

// PostExecute does nothing. A real exporter might tell a running
// application to reload here.
func (e *Exporter) PostExecute(context.Context, []string) error {
	return nil
}

// GetMetadata describes the plugin.
func (e *Exporter) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "shellenv",
		Version:     version,
		Description: "Shell variable assignments",
	}
}

// GetFlagHelp documents the accepted plugin arguments.
func (e *Exporter) GetFlagHelp() []plugin.FlagHelp {
	return []plugin.FlagHelp{
		{Name: "prefix", Type: "string", Default: defaultPrefix, Description: "variable name prefix"},
		{Name: "file", Type: "string", Default: defaultFile, Description: "output file name"},
	}
}

func stringArg(args map[string]any, key, def string) (string, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("plugin argument %q must be a non-empty string", key)
	}
	return s, nil
}
