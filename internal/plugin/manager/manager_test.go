package manager

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/plugin/executor"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/plugin/output/css"
	"github.com/jmylchreest/tonal/internal/plugin/output/document"
	outputtesting "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/pkg/plugin"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

func builtins() []output.Plugin {
	return []output.Plugin{css.New(), document.NewJSON()}
}

// pluginDir creates executables named after the keys of infos and a
// runner answering --plugin-info for each with the mapped JSON.
func pluginDir(t *testing.T, infos map[string]string) (string, *executor.MockProcessRunner) {
	t.Helper()
	dir := t.TempDir()
	for name := range infos {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a plugin"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o755))

	runner := &executor.MockProcessRunner{
		RunFunc: func(_ context.Context, path string, args []string, stdin []byte) ([]byte, []byte, error) {
			if len(args) == 1 && args[0] == plugin.InfoFlag {
				info, ok := infos[filepath.Base(path)]
				if !ok {
					return nil, nil, &executor.MockExitError{Code: 2}
				}
				return []byte(info), nil, nil
			}
			if len(args) == 0 {
				var data plugin.ThemeData
				if err := json.Unmarshal(stdin, &data); err != nil {
					return nil, nil, err
				}
				return []byte(`{"files":{"` + filepath.Base(path) + `.conf":"` + data.Theme.Tokens["primary"] + `"}}`), nil, nil
			}
			return nil, nil, nil
		},
	}
	return dir, runner
}

func TestDiscover(t *testing.T) {
	dir, runner := pluginDir(t, map[string]string{
		"tonal-wob":   `{"name":"wob","description":"wob bar","version":"0.2.0"}`,
		"tonal-kitty": `{"name":"kitty","plugin_protocol":"json-stdio"}`,
		"broken":      `not json`,
		"shadow-css":  `{"name":"css"}`,
	})

	m := New(Config{Dir: dir}, builtins(), WithRunner(runner))
	require.NoError(t, m.Discover(context.Background()))

	assert.Equal(t, []string{"css", "json", "kitty", "wob"}, m.Registry().List())
	require.Len(t, m.External(), 2)

	p, err := m.Lookup("wob")
	require.NoError(t, err)
	ext := p.(*External)
	assert.Equal(t, "0.2.0", ext.Version())
	assert.Equal(t, "wob bar (json-stdio)", ext.Description())
	assert.Equal(t, filepath.Join(dir, "tonal-wob"), ext.Path())
	assert.Equal(t, plugin.PluginTypeJSON, ext.Protocol())

	_, isBuiltin := must(m.Registry().Get("css")).(*css.Plugin)
	assert.True(t, isBuiltin, "a plugin must not replace a built-in exporter")
}

func must(p output.Plugin, ok bool) output.Plugin {
	if !ok {
		panic("plugin not registered")
	}
	return p
}

func TestDiscoverMissingDir(t *testing.T) {
	m := New(Config{Dir: filepath.Join(t.TempDir(), "absent")}, builtins())
	require.NoError(t, m.Discover(context.Background()))
	assert.Empty(t, m.External())

	m = New(Config{}, builtins())
	require.NoError(t, m.Discover(context.Background()))
}

func TestExternalGenerate(t *testing.T) {
	dir, runner := pluginDir(t, map[string]string{"notify": `{"name":"notify"}`})
	m := New(Config{Dir: dir}, nil, WithRunner(runner))
	require.NoError(t, m.Discover(context.Background()))

	p, err := m.Lookup("notify")
	require.NoError(t, err)

	data := outputtesting.CreateTestData(t, tokens.ProjectOptions{})
	files, err := p.Generate(data)
	require.NoError(t, err)
	assert.Equal(t, data.Tokens.Hex()["primary"], string(files["notify.conf"]))
}

func TestExternalArgs(t *testing.T) {
	dir, runner := pluginDir(t, map[string]string{"notify": `{"name":"notify"}`})
	m := New(Config{Dir: dir}, nil, WithRunner(runner))
	require.NoError(t, m.Discover(context.Background()))
	ext := m.External()[0]
	require.NoError(t, ext.Validate())

	args, err := ParseArgs(`{"urgency":"low"}`)
	require.NoError(t, err)
	ext.SetArgs(args)
	ext.SetArgs(map[string]any{"timeout": float64(5)})
	assert.Equal(t, map[string]any{"urgency": "low", "timeout": float64(5)}, ext.Args())

	ext.SetDryRun(true)
	_, err = ext.Generate(outputtesting.CreateTestData(t, tokens.ProjectOptions{}))
	require.NoError(t, err)

	var sent plugin.ThemeData
	require.NoError(t, json.Unmarshal(runner.LastStdin, &sent))
	assert.True(t, sent.DryRun)
	assert.Equal(t, "low", sent.PluginArgs["urgency"])

	_, err = ParseArgs(`{broken`)
	assert.Error(t, err)

	require.NoError(t, os.Chmod(ext.Path(), 0o644))
	assert.Error(t, ext.Validate())
}

func TestExternalHooks(t *testing.T) {
	dir, runner := pluginDir(t, map[string]string{"notify": `{"name":"notify"}`})
	m := New(Config{Dir: dir}, nil, WithRunner(runner))
	require.NoError(t, m.Discover(context.Background()))
	ext := m.External()[0]

	skip, _, err := ext.PreExecute(context.Background())
	require.NoError(t, err)
	assert.False(t, skip)
	assert.Equal(t, []string{"--pre-execute"}, runner.LastArgs)

	require.NoError(t, ext.PostExecute(context.Background(), []string{"a.conf"}))
	assert.Equal(t, []string{"--post-execute"}, runner.LastArgs)
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		plugin  string
		enabled bool
	}{
		{"default enabled", Config{}, "css", true},
		{"disabled", Config{DisabledPlugins: []string{"css"}}, "css", false},
		{"disable all", Config{DisabledPlugins: []string{"all"}, EnabledPlugins: []string{"css"}}, "css", false},
		{"allow list", Config{EnabledPlugins: []string{"json"}}, "css", false},
		{"allow list hit", Config{EnabledPlugins: []string{"json"}}, "json", true},
		{"allow all", Config{EnabledPlugins: []string{"all"}}, "css", true},
		{"disabled wins", Config{EnabledPlugins: []string{"css"}, DisabledPlugins: []string{"css"}}, "css", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.config, builtins())
			assert.Equal(t, tt.enabled, m.IsEnabled(tt.plugin))
		})
	}
}

func TestLookup(t *testing.T) {
	m := New(Config{DisabledPlugins: []string{"json"}}, builtins())

	_, err := m.Lookup("json")
	assert.True(t, errors.Is(err, ErrDisabled))

	_, err = m.Lookup("nope")
	assert.ErrorIs(t, err, output.ErrUnknownFormat)

	names := make([]string, 0)
	for _, p := range m.Enabled() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"css"}, names)
}

func TestSetEnabledDisabled(t *testing.T) {
	m := New(Config{}, builtins())

	m.SetDisabled("css")
	assert.False(t, m.IsEnabled("css"))

	m.SetEnabled("css")
	assert.True(t, m.IsEnabled("css"))
	assert.False(t, m.IsEnabled("json"), "enabling one plugin switches to allow-list mode")
	assert.Empty(t, m.Config().DisabledPlugins)
}

func TestParsePluginList(t *testing.T) {
	assert.Equal(t, []string{"css", "json"}, ParsePluginList(" json, css,,json "))
	assert.Empty(t, ParsePluginList(""))
}
