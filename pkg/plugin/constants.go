// Package plugin provides the public API for tonal exporter plugins.
// External plugins should import this package instead of internal packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this tonal version can work with.
	MinCompatibleVersion = "0.1.0"

	// PluginName is the key exporters are dispensed under.
	PluginName = "exporter"
)

// Handshake is the handshake configuration for go-plugin protocol.
//
// go-plugin's ProtocolVersion is a single uint that must match exactly, so
// it carries the major version only. The full MAJOR.MINOR.PATCH check
// against MinCompatibleVersion happens on the --plugin-info response via
// IsCompatible.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  uint(CurrentVersion().Major),
	MagicCookieKey:   "TONAL_PLUGIN",
	MagicCookieValue: "tonal_theme_tokens",
}

// PluginType defines the type of plugin communication protocol.
type PluginType string

const (
	// PluginTypeGoPlugin indicates the plugin uses HashiCorp go-plugin RPC protocol.
	PluginTypeGoPlugin PluginType = "go-plugin"

	// PluginTypeJSON indicates the plugin uses simple JSON over stdin/stdout.
	PluginTypeJSON PluginType = "json-stdio"
)

// PluginMap returns the go-plugin plugin set for impl. Hosts pass a nil
// impl.
func PluginMap(impl Exporter) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginName: &ExporterRPC{Impl: impl},
	}
}
