package plugin

import (
	"context"
)

// Exporter is the interface that exporter plugins must implement for
// go-plugin RPC.
type Exporter interface {
	// Generate creates output file(s) from the given theme data.
	Generate(ctx context.Context, data ThemeData) (map[string][]byte, error)

	// PreExecute runs before Generate() for validation checks.
	PreExecute(ctx context.Context) (skip bool, reason string, err error)

	// PostExecute runs after successful Generate() and file writing.
	PostExecute(ctx context.Context, writtenFiles []string) error

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo

	// GetFlagHelp returns help information for plugin flags.
	GetFlagHelp() []FlagHelp
}
