// Package output provides the interface and registry for exporters, the
// plugins that turn a theme into files.
package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

// ErrUnknownFormat is returned by Registry.Lookup for unregistered names.
var ErrUnknownFormat = errors.New("unknown output format")

// Plugin represents an exporter that generates files from a projected theme.
type Plugin interface {
	// Name returns the format name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given data.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(data *Data) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error
}

// PreExecuteHook is implemented by plugins that check their environment
// before generating. A skip with a reason is not an error.
type PreExecuteHook interface {
	PreExecute(ctx context.Context) (skip bool, reason string, err error)
}

// PostExecuteHook is implemented by plugins that act on the files they
// produced, such as reloading an application.
type PostExecuteHook interface {
	PostExecute(ctx context.Context, writtenFiles []string) error
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a registry holding plugins.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{
		plugins: make(map[string]Plugin),
	}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// Register adds a plugin to the registry, replacing any plugin of the same
// name.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// Lookup is Get with an ErrUnknownFormat error naming the known formats.
func (r *Registry) Lookup(name string) (Plugin, error) {
	if p, ok := r.plugins[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownFormat, name, r.List())
}

// List returns all registered plugin names in lexical order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered plugins.
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}

// WriteFiles writes generated files below dir, creating directories as
// needed, and returns the written paths in lexical order. File names must
// be relative and stay inside dir.
func WriteFiles(dir string, files map[string][]byte) ([]string, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		if !filepath.IsLocal(name) {
			return written, fmt.Errorf("refusing to write %q outside the output directory", name)
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		//nolint:gosec // G306: generated theme files are meant to be world readable.
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
