package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/executor"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/pkg/plugin"
)

const versionUnknown = "unknown"

// External wraps an external executable as an output plugin.
type External struct {
	exec   *executor.Executor
	args   map[string]any
	dryRun bool
}

// NewExternal creates a wrapper around exec.
func NewExternal(exec *executor.Executor) *External {
	return &External{exec: exec}
}

// Name returns the plugin's reported name, or its file name.
func (p *External) Name() string {
	if name := p.exec.Info().Name; name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(p.exec.Path()), filepath.Ext(p.exec.Path()))
}

// Description returns the plugin's description.
func (p *External) Description() string {
	desc := p.exec.Info().Description
	if desc == "" {
		desc = "external exporter"
	}
	return fmt.Sprintf("%s (%s)", desc, p.exec.Protocol())
}

// Version returns the plugin's version.
func (p *External) Version() string {
	if v := p.exec.Info().Version; v != "" {
		return v
	}
	return versionUnknown
}

// Protocol returns how tonal talks to the plugin.
func (p *External) Protocol() plugin.PluginType {
	return p.exec.Protocol()
}

// Path returns the plugin executable.
func (p *External) Path() string {
	return p.exec.Path()
}

// SetArgs merges args into the arguments sent to the plugin.
func (p *External) SetArgs(args map[string]any) {
	if p.args == nil {
		p.args = make(map[string]any, len(args))
	}
	maps.Copy(p.args, args)
}

// Args returns the arguments sent to the plugin.
func (p *External) Args() map[string]any {
	return maps.Clone(p.args)
}

// SetDryRun marks generation as a dry run. The plugin is told so it can
// avoid side effects.
func (p *External) SetDryRun(dryRun bool) {
	p.dryRun = dryRun
}

// Generate executes the external plugin and returns its files.
func (p *External) Generate(data *output.Data) (map[string][]byte, error) {
	files, err := p.exec.Generate(context.Background(), data.ThemeData(p.args, p.dryRun))
	if err != nil {
		return nil, fmt.Errorf("plugin %s failed: %w", p.Name(), err)
	}
	return files, nil
}

// RegisterFlags is a no-op. External exporters are discovered after flag
// parsing, so their arguments arrive through SetArgs and ParseArgs.
func (p *External) RegisterFlags(_ *cobra.Command) {}

// Validate checks that the executable is still present.
func (p *External) Validate() error {
	fi, err := os.Stat(p.exec.Path())
	if err != nil {
		return fmt.Errorf("plugin %s: %w", p.Name(), err)
	}
	if fi.Mode()&0o111 == 0 {
		return fmt.Errorf("plugin %s: %s is not executable", p.Name(), p.exec.Path())
	}
	return nil
}

// ParseArgs decodes a JSON object of plugin arguments.
func ParseArgs(raw string) (map[string]any, error) {
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid plugin arguments: %w", err)
	}
	return args, nil
}

// PreExecute calls the external plugin's pre-execute hook.
func (p *External) PreExecute(ctx context.Context) (bool, string, error) {
	return p.exec.PreExecute(ctx)
}

// PostExecute calls the external plugin's post-execute hook.
func (p *External) PostExecute(ctx context.Context, writtenFiles []string) error {
	return p.exec.PostExecute(ctx, writtenFiles)
}

// Close stops a running plugin process.
func (p *External) Close() {
	p.exec.Close()
}

var (
	_ output.Plugin          = (*External)(nil)
	_ output.PreExecuteHook  = (*External)(nil)
	_ output.PostExecuteHook = (*External)(nil)
)
