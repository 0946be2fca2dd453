package plugin

// ThemeDocument is the structured form of a theme. Colours are lowercase
// #rrggbb strings.
type ThemeDocument struct {
	Source        string                       `json:"source" yaml:"source" toml:"source"`
	Variant       string                       `json:"variant" yaml:"variant" toml:"variant"`
	ContrastLevel float64                      `json:"contrastLevel" yaml:"contrastLevel" toml:"contrastLevel"`
	Schemes       Schemes                      `json:"schemes" yaml:"schemes" toml:"schemes"`
	Palettes      map[string]map[string]string `json:"palettes" yaml:"palettes" toml:"palettes"`
	CustomColors  []CustomColor                `json:"customColors,omitempty" yaml:"customColors,omitempty" toml:"customColors,omitempty"`
	Tokens        map[string]string            `json:"tokens" yaml:"tokens" toml:"tokens"`
}

// Schemes holds the role colours of each side.
type Schemes struct {
	Light map[string]string `json:"light" yaml:"light" toml:"light"`
	Dark  map[string]string `json:"dark" yaml:"dark" toml:"dark"`
}

// CustomColor is one expanded custom colour.
type CustomColor struct {
	Name  string            `json:"name" yaml:"name" toml:"name"`
	Value string            `json:"value" yaml:"value" toml:"value"`
	Blend bool              `json:"blend" yaml:"blend" toml:"blend"`
	Light map[string]string `json:"light" yaml:"light" toml:"light"`
	Dark  map[string]string `json:"dark" yaml:"dark" toml:"dark"`
}

// ThemeData is what exporters receive, over RPC or as JSON on stdin.
type ThemeData struct {
	Theme ThemeDocument `json:"theme"`
	// Dark is set when the unsuffixed tokens come from the dark scheme.
	Dark       bool           `json:"dark"`
	Selector   string         `json:"selector,omitempty"`
	PluginArgs map[string]any `json:"plugin_args,omitempty"`
	DryRun     bool           `json:"dry_run"`
}

// FlagHelp represents help information for a single plugin flag.
type FlagHelp struct {
	Name        string `json:"name"`        // Flag name (e.g., "prefix")
	Shorthand   string `json:"shorthand"`   // Short flag (e.g., "p")
	Type        string `json:"type"`        // Type (e.g., "string", "int", "bool")
	Default     string `json:"default"`     // Default value as string
	Description string `json:"description"` // Help text
	Required    bool   `json:"required"`    // Is this flag required?
}

// PluginInfo contains metadata about a plugin, printed by the plugin on
// --plugin-info.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"` // "json-stdio" or "go-plugin"
}
