// Package manager discovers external exporters and decides which
// exporters may run.
package manager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/plugin/executor"
	"github.com/jmylchreest/tonal/internal/plugin/output"
)

// ErrDisabled is returned by Lookup for exporters the configuration
// disables.
var ErrDisabled = errors.New("exporter disabled")

// Config holds plugin configuration.
type Config struct {
	// Dir is searched for external exporter executables.
	Dir string

	// EnabledPlugins, when set, is an allow list. "all" allows everything.
	EnabledPlugins []string

	// DisabledPlugins never run. "all" disables everything and wins over
	// any allow list.
	DisabledPlugins []string
}

// Manager owns the exporter registry and the enable/disable state.
type Manager struct {
	config   Config
	registry *output.Registry
	logger   hclog.Logger
	runner   executor.ProcessRunner
	external []*External
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger. External exporters log through
// a named sub-logger.
func WithLogger(l hclog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithRunner sets the process runner used to query and run external
// exporters.
func WithRunner(r executor.ProcessRunner) Option {
	return func(m *Manager) { m.runner = r }
}

// New creates a manager whose registry holds builtins.
func New(config Config, builtins []output.Plugin, opts ...Option) *Manager {
	m := &Manager{
		config:   config,
		registry: output.NewRegistry(builtins...),
		logger:   hclog.NewNullLogger(),
		runner:   executor.NewRealProcessRunner(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the exporter registry, built-in and discovered.
func (m *Manager) Registry() *output.Registry {
	return m.registry
}

// External returns the discovered external exporters.
func (m *Manager) External() []*External {
	return slices.Clone(m.external)
}

// Discover registers every executable in the configured directory that
// answers --plugin-info. A missing directory is not an error. Executables
// that fail detection or clash with an already registered name are
// logged and skipped.
func (m *Manager) Discover(ctx context.Context) error {
	if m.config.Dir == "" {
		return nil
	}

	entries, err := os.ReadDir(m.config.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			m.logger.Debug("plugin directory does not exist", "dir", m.config.Dir)
			return nil
		}
		return fmt.Errorf("failed to read plugin directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fi, err := entry.Info()
		if err != nil || fi.Mode()&0o111 == 0 {
			continue
		}

		path := filepath.Join(m.config.Dir, entry.Name())
		exec, err := executor.New(ctx, path,
			executor.WithRunner(m.runner),
			executor.WithLogger(m.logger.Named(entry.Name())),
		)
		if err != nil {
			m.logger.Warn("skipping plugin", "path", path, "error", err)
			continue
		}

		ext := NewExternal(exec)
		if _, taken := m.registry.Get(ext.Name()); taken {
			m.logger.Warn("skipping plugin with duplicate name", "path", path, "name", ext.Name())
			continue
		}

		m.registry.Register(ext)
		m.external = append(m.external, ext)
		m.logger.Debug("registered plugin", "name", ext.Name(), "protocol", exec.Protocol())
	}
	return nil
}

// IsEnabled reports whether the named exporter may run.
func (m *Manager) IsEnabled(name string) bool {
	if slices.Contains(m.config.DisabledPlugins, "all") {
		return false
	}
	if slices.Contains(m.config.DisabledPlugins, name) {
		return false
	}

	if len(m.config.EnabledPlugins) == 0 {
		return true
	}
	return slices.Contains(m.config.EnabledPlugins, "all") || slices.Contains(m.config.EnabledPlugins, name)
}

// Lookup returns the named exporter if it is registered and enabled.
func (m *Manager) Lookup(name string) (output.Plugin, error) {
	p, err := m.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !m.IsEnabled(name) {
		return nil, fmt.Errorf("%w: %s", ErrDisabled, name)
	}
	return p, nil
}

// Enabled returns the enabled exporters ordered by name.
func (m *Manager) Enabled() []output.Plugin {
	var out []output.Plugin
	for _, name := range m.registry.List() {
		if m.IsEnabled(name) {
			p, _ := m.registry.Get(name)
			out = append(out, p)
		}
	}
	return out
}

// SetDisabled adds name to the disabled list, removing it from the
// enabled list.
func (m *Manager) SetDisabled(name string) {
	m.config.EnabledPlugins = slices.DeleteFunc(m.config.EnabledPlugins, func(s string) bool { return s == name })
	if !slices.Contains(m.config.DisabledPlugins, name) {
		m.config.DisabledPlugins = append(m.config.DisabledPlugins, name)
	}
}

// SetEnabled adds name to the enabled list, removing it from the disabled
// list.
func (m *Manager) SetEnabled(name string) {
	m.config.DisabledPlugins = slices.DeleteFunc(m.config.DisabledPlugins, func(s string) bool { return s == name })
	if !slices.Contains(m.config.EnabledPlugins, name) {
		m.config.EnabledPlugins = append(m.config.EnabledPlugins, name)
	}
}

// Config returns the current configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Close stops any running external exporter processes.
func (m *Manager) Close() {
	for _, ext := range m.external {
		ext.Close()
	}
}

// ParsePluginList parses a comma-separated list of plugin names.
func ParsePluginList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	sort.Strings(result)
	return slices.Compact(result)
}
