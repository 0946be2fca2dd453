// Package executor runs external exporters regardless of their underlying
// protocol (go-plugin RPC or JSON-stdio).
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

// Timeouts for the short-lived JSON-stdio invocations.
const (
	DetectTimeout      = 5 * time.Second
	PreExecuteTimeout  = 5 * time.Second
	PostExecuteTimeout = 10 * time.Second
)

// ErrIncompatible is returned when a plugin speaks an unsupported protocol
// version.
var ErrIncompatible = errors.New("incompatible plugin")

// Detect queries path with --plugin-info and returns its metadata and
// protocol. An empty plugin_protocol means json-stdio.
func Detect(ctx context.Context, runner ProcessRunner, path string) (plugin.PluginInfo, plugin.PluginType, error) {
	ctx, cancel := context.WithTimeout(ctx, DetectTimeout)
	defer cancel()

	stdout, stderr, err := runner.Run(ctx, path, []string{plugin.InfoFlag}, nil)
	if err != nil {
		return plugin.PluginInfo{}, "", fmt.Errorf("failed to query plugin %s: %w%s", path, err, stderrSuffix(stderr))
	}

	var info plugin.PluginInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return plugin.PluginInfo{}, "", fmt.Errorf("failed to parse plugin info from %s: %w", path, err)
	}

	if info.ProtocolVersion != "" {
		if ok, err := plugin.IsCompatible(info.ProtocolVersion); !ok {
			return info, "", fmt.Errorf("%w %s: %w", ErrIncompatible, path, err)
		}
	}

	switch plugin.PluginType(info.PluginProtocol) {
	case plugin.PluginTypeGoPlugin:
		return info, plugin.PluginTypeGoPlugin, nil
	case plugin.PluginTypeJSON, "":
		return info, plugin.PluginTypeJSON, nil
	default:
		return info, "", fmt.Errorf("unknown plugin_protocol %q in %s", info.PluginProtocol, path)
	}
}

// Executor runs one external exporter.
type Executor struct {
	path     string
	info     plugin.PluginInfo
	protocol plugin.PluginType
	runner   ProcessRunner
	logger   hclog.Logger

	// go-plugin state, started lazily on first use.
	client   *goplugin.Client
	exporter plugin.Exporter
}

// Option configures an Executor.
type Option func(*Executor)

// WithRunner replaces the process runner used for detection and
// JSON-stdio calls.
func WithRunner(r ProcessRunner) Option {
	return func(e *Executor) { e.runner = r }
}

// WithLogger sets the logger handed to go-plugin.
func WithLogger(l hclog.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// New creates an Executor by detecting the plugin's protocol.
func New(ctx context.Context, path string, opts ...Option) (*Executor, error) {
	e := &Executor{
		path:   path,
		runner: NewRealProcessRunner(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	info, proto, err := Detect(ctx, e.runner, path)
	if err != nil {
		return nil, err
	}
	e.info = info
	e.protocol = proto

	e.logger.Debug("detected plugin", "path", path, "name", info.Name, "protocol", proto)
	return e, nil
}

// Path returns the plugin executable.
func (e *Executor) Path() string { return e.path }

// Info returns the metadata reported by --plugin-info.
func (e *Executor) Info() plugin.PluginInfo { return e.info }

// Protocol returns the detected protocol.
func (e *Executor) Protocol() plugin.PluginType { return e.protocol }

// Generate runs the exporter and returns the files it produced.
func (e *Executor) Generate(ctx context.Context, data plugin.ThemeData) (map[string][]byte, error) {
	switch e.protocol {
	case plugin.PluginTypeGoPlugin:
		exp, err := e.rpcExporter()
		if err != nil {
			return nil, err
		}
		return exp.Generate(ctx, data)
	case plugin.PluginTypeJSON:
		return e.generateJSON(ctx, data)
	default:
		return nil, fmt.Errorf("unsupported protocol type: %s", e.protocol)
	}
}

// PreExecute runs the exporter's pre-execution hook.
func (e *Executor) PreExecute(ctx context.Context) (skip bool, reason string, err error) {
	switch e.protocol {
	case plugin.PluginTypeGoPlugin:
		exp, err := e.rpcExporter()
		if err != nil {
			return false, "", err
		}
		return exp.PreExecute(ctx)
	case plugin.PluginTypeJSON:
		return e.preExecuteJSON(ctx)
	default:
		return false, "", fmt.Errorf("unsupported protocol type: %s", e.protocol)
	}
}

// PostExecute runs the exporter's post-execution hook.
func (e *Executor) PostExecute(ctx context.Context, writtenFiles []string) error {
	switch e.protocol {
	case plugin.PluginTypeGoPlugin:
		exp, err := e.rpcExporter()
		if err != nil {
			return err
		}
		return exp.PostExecute(ctx, writtenFiles)
	case plugin.PluginTypeJSON:
		return e.postExecuteJSON(ctx, writtenFiles)
	default:
		return fmt.Errorf("unsupported protocol type: %s", e.protocol)
	}
}

// Close kills a running go-plugin process.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.exporter = nil
	}
}

// --- go-plugin RPC ---

func (e *Executor) rpcExporter() (plugin.Exporter, error) {
	if e.exporter != nil {
		return e.exporter, nil
	}

	e.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  plugin.Handshake,
		Plugins:          plugin.PluginMap(nil),
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           e.logger.Named("plugin"),
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.PluginName)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	exp, ok := raw.(plugin.Exporter)
	if !ok {
		e.Close()
		return nil, fmt.Errorf("plugin %s dispensed %T, not an exporter", e.path, raw)
	}
	e.exporter = exp
	return exp, nil
}

// --- JSON-stdio ---

// jsonResponse is the optional structured stdout of a JSON-stdio
// exporter. Plugins that print anything else have their whole stdout
// written to "<name>.txt".
type jsonResponse struct {
	Files map[string]string `json:"files"`
}

func (e *Executor) generateJSON(ctx context.Context, data plugin.ThemeData) (map[string][]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme data: %w", err)
	}

	stdout, stderr, err := e.runner.Run(ctx, e.path, nil, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("plugin execution failed: %w%s", err, stderrSuffix(stderr))
	}

	var resp jsonResponse
	if json.Unmarshal(stdout, &resp) == nil && resp.Files != nil {
		files := make(map[string][]byte, len(resp.Files))
		for name, content := range resp.Files {
			files[name] = []byte(content)
		}
		return files, nil
	}

	files := make(map[string][]byte)
	if len(stdout) > 0 {
		files[e.fallbackName()] = stdout
	}
	return files, nil
}

func (e *Executor) fallbackName() string {
	if e.info.Name != "" {
		return e.info.Name + ".txt"
	}
	return "output.txt"
}

// Exit code 0 = continue, 1 = skip, 2+ = error.
func (e *Executor) preExecuteJSON(ctx context.Context) (bool, string, error) {
	ctx, cancel := context.WithTimeout(ctx, PreExecuteTimeout)
	defer cancel()

	stdout, stderr, err := e.runner.Run(ctx, e.path, []string{"--pre-execute"}, nil)
	if err == nil {
		return false, "", nil
	}

	var coded exitCoder
	if !errors.As(err, &coded) {
		return false, "", fmt.Errorf("pre-execute failed: %w", err)
	}

	if coded.ExitCode() == 1 {
		reason := strings.TrimSpace(string(stdout))
		if reason == "" {
			reason = "plugin requested skip"
		}
		return true, reason, nil
	}

	errMsg := strings.TrimSpace(string(stderr))
	if errMsg == "" {
		errMsg = fmt.Sprintf("exit code %d", coded.ExitCode())
	}
	return false, "", fmt.Errorf("pre-execute failed: %s", errMsg)
}

func (e *Executor) postExecuteJSON(ctx context.Context, writtenFiles []string) error {
	ctx, cancel := context.WithTimeout(ctx, PostExecuteTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]any{
		"written_files": writtenFiles,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal files: %w", err)
	}

	_, stderr, err := e.runner.Run(ctx, e.path, []string{"--post-execute"}, bytes.NewReader(payload))
	if err != nil {
		errMsg := strings.TrimSpace(string(stderr))
		if errMsg == "" {
			errMsg = err.Error()
		}
		return fmt.Errorf("post-execute failed: %s", errMsg)
	}
	return nil
}

type exitCoder interface {
	ExitCode() int
}

func stderrSuffix(stderr []byte) string {
	s := strings.TrimSpace(string(stderr))
	if s == "" {
		return ""
	}
	return "\nStderr: " + s
}
