// Package config loads tonal settings from a theme file, the environment
// and command line flags.
//
// Precedence, lowest first: defaults, config file, TONAL_* environment
// variables, flags that were set explicitly.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/theme"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

// Configuration keys.
const (
	KeySource         = "source"
	KeyPrimary        = "primary"
	KeySecondary      = "secondary"
	KeyTertiary       = "tertiary"
	KeyNeutral        = "neutral"
	KeyNeutralVariant = "neutral-variant"
	KeyVariant        = "variant"
	KeyContrast       = "contrast"
	KeyStaticColors   = "static-colors"

	KeyOutputDark               = "output.dark"
	KeyOutputBrightnessVariants = "output.brightness-variants"
	KeyOutputPaletteTones       = "output.palette-tones"
	KeyOutputAmoled             = "output.amoled"
	KeyOutputFormats            = "output.formats"
	KeyOutputDir                = "output.dir"
	KeyOutputSelector           = "output.selector"
	KeyOutputBundle             = "output.bundle"

	KeyPluginsDir      = "plugins.dir"
	KeyPluginsEnabled  = "plugins.enabled"
	KeyPluginsDisabled = "plugins.disabled"
)

const (
	envPrefix = "TONAL"
	// EnvConfigFile names a config file when --config is not given.
	EnvConfigFile = "TONAL_CONFIG"
	// DefaultSelector wraps the light tokens in CSS output.
	DefaultSelector = ":root"
)

var configNames = []string{"tonal.yaml", "tonal.yml", "tonal.toml"}

// FlagKeys maps command line flag names to the configuration keys they
// override.
var FlagKeys = map[string]string{
	"source":              KeySource,
	"primary":             KeyPrimary,
	"secondary":           KeySecondary,
	"tertiary":            KeyTertiary,
	"neutral":             KeyNeutral,
	"neutral-variant":     KeyNeutralVariant,
	"variant":             KeyVariant,
	"contrast":            KeyContrast,
	"dark":                KeyOutputDark,
	"brightness-variants": KeyOutputBrightnessVariants,
	"palette-tones":       KeyOutputPaletteTones,
	"amoled":              KeyOutputAmoled,
	"format":              KeyOutputFormats,
	"output-dir":          KeyOutputDir,
	"selector":            KeyOutputSelector,
	"bundle":              KeyOutputBundle,
	"plugin-dir":          KeyPluginsDir,
	"enable-plugins":      KeyPluginsEnabled,
	"disable-plugins":     KeyPluginsDisabled,
}

// Config is the decoded configuration.
type Config struct {
	Source         colour.Color        `mapstructure:"source"`
	Primary        colour.Color        `mapstructure:"primary"`
	Secondary      colour.Color        `mapstructure:"secondary"`
	Tertiary       colour.Color        `mapstructure:"tertiary"`
	Neutral        colour.Color        `mapstructure:"neutral"`
	NeutralVariant colour.Color        `mapstructure:"neutral-variant"`
	Variant        material.Variant    `mapstructure:"variant"`
	Contrast       Contrast            `mapstructure:"contrast"`
	StaticColors   []theme.CustomColor `mapstructure:"static-colors"`
	Output         Output              `mapstructure:"output"`
	Plugins        Plugins             `mapstructure:"plugins"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// Output controls token projection and the files written.
type Output struct {
	Dark               bool      `mapstructure:"dark"`
	BrightnessVariants bool      `mapstructure:"brightness-variants"`
	PaletteTones       []float64 `mapstructure:"palette-tones"`
	Amoled             bool      `mapstructure:"amoled"`
	Formats            []string  `mapstructure:"formats"`
	Dir                string    `mapstructure:"dir"`
	Selector           string    `mapstructure:"selector"`
	// Bundle, when set, is the .tar.gz or .tar.xz archive the generated
	// files are packed into.
	Bundle string `mapstructure:"bundle"`
}

// Plugins locates external exporters and filters which exporters may run.
type Plugins struct {
	Dir string `mapstructure:"dir"`
	// Enabled, when non-empty, is an allow list of exporter names. "all"
	// allows everything.
	Enabled []string `mapstructure:"enabled"`
	// Disabled exporters never run. "all" disables everything.
	Disabled []string `mapstructure:"disabled"`
}

type loadSettings struct {
	file       string
	flags      *pflag.FlagSet
	searchDirs []string
	lookupEnv  func(string) (string, bool)
}

// Option configures Load.
type Option func(*loadSettings)

// WithFile reads path instead of searching for a config file. A missing
// file is an error.
func WithFile(path string) Option {
	return func(s *loadSettings) {
		s.file = path
	}
}

// WithFlags binds the flags named in FlagKeys that exist in fs.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(s *loadSettings) {
		s.flags = fs
	}
}

// WithSearchDirs overrides the directories searched for tonal.yaml and
// tonal.toml.
func WithSearchDirs(dirs ...string) Option {
	return func(s *loadSettings) {
		s.searchDirs = dirs
	}
}

// Load builds a Config.
func Load(opts ...Option) (*Config, error) {
	settings := loadSettings{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.searchDirs == nil {
		settings.searchDirs = defaultSearchDirs()
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range allKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	path, err := resolveFile(settings)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := mergeConfigFile(v, path); err != nil {
			return nil, err
		}
	}

	if settings.flags != nil {
		for name, key := range FlagKeys {
			flag := settings.flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.File = path
	return &cfg, nil
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		numberToColourHook(),
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVariant, material.TonalSpot.String())
	v.SetDefault(KeyContrast, material.ContrastDefault)
	v.SetDefault(KeyOutputDark, false)
	v.SetDefault(KeyOutputBrightnessVariants, false)
	v.SetDefault(KeyOutputAmoled, false)
	v.SetDefault(KeyOutputFormats, []string{"css"})
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyOutputSelector, DefaultSelector)
	v.SetDefault(KeyPluginsDir, defaultPluginDir())
}

func allKeys() []string {
	return []string{
		KeySource, KeyPrimary, KeySecondary, KeyTertiary, KeyNeutral, KeyNeutralVariant,
		KeyVariant, KeyContrast,
		KeyOutputDark, KeyOutputBrightnessVariants, KeyOutputPaletteTones, KeyOutputAmoled,
		KeyOutputFormats, KeyOutputDir, KeyOutputSelector, KeyOutputBundle,
		KeyPluginsDir, KeyPluginsEnabled, KeyPluginsDisabled,
	}
}

func resolveFile(s loadSettings) (string, error) {
	if s.file != "" {
		return s.file, nil
	}
	if env, ok := s.lookupEnv(EnvConfigFile); ok && strings.TrimSpace(env) != "" {
		return env, nil
	}
	for _, dir := range s.searchDirs {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
			}
			if !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	//nolint:gosec // G304: the config file path is chosen by the user.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "yml":
		ext = "yaml"
	case "yaml", "toml", "json":
	default:
		return fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
	v.SetConfigType(ext)
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func defaultSearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "tonal"))
	}
	return dirs
}

func defaultPluginDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tonal", "plugins")
}

// ThemeOptions converts the configuration into validated theme options.
func (c *Config) ThemeOptions() (theme.Options, error) {
	opts := theme.Options{
		SourceColor:    c.Source,
		Primary:        c.Primary,
		Secondary:      c.Secondary,
		Tertiary:       c.Tertiary,
		Neutral:        c.Neutral,
		NeutralVariant: c.NeutralVariant,
		ContrastLevel:  float64(c.Contrast),
		Variant:        c.Variant,
		IsDark:         c.Output.Dark,
		StaticColors:   c.StaticColors,
	}
	if err := opts.Validate(); err != nil {
		return theme.Options{}, err
	}
	return opts, nil
}

// ProjectOptions converts the output settings into projector options.
func (c *Config) ProjectOptions() tokens.ProjectOptions {
	opts := tokens.ProjectOptions{
		Dark:               c.Output.Dark,
		BrightnessVariants: c.Output.BrightnessVariants,
		PaletteTones:       c.Output.PaletteTones,
	}
	if c.Output.Amoled {
		opts.ModifyColorScheme = tokens.AmoledFilter
	}
	return opts
}
