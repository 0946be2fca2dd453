// Package common provides shared utilities for output plugins.
package common

import (
	"fmt"
	"strings"
	"text/template"

	"cogentcore.org/core/base/strcase"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

// TemplateFuncs returns standard template functions for all output plugins.
// Colours are packed 0xAARRGGBB values as found in a tokens.ColorScheme.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Token access.
		"get":  getFunc,
		"has":  hasFunc,
		"keys": keysFunc,

		// Format conversion.
		"hex":        colour.ToHex,
		"hexAlpha":   colour.ToHexAlpha,
		"hexNoHash":  hexNoHashFunc,
		"rgb":        rgbFunc,
		"rgba":       rgbaFunc,
		"rgbDecimal": rgbDecimalFunc,
		"rgbSpaces":  rgbSpacesFunc,
		"hsl":        hslFunc,
		"hslValues":  hslValuesFunc,

		// Alpha manipulation.
		"withAlpha": withAlphaFunc,

		// Token names.
		"cssVar": tokens.FormatCSSVarName,
		"kebab":  strcase.ToKebab,
		"snake":  strcase.ToSnake,
		"camel":  strcase.ToLowerCamel,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// getFunc returns a token by name.
// Returns error if the token doesn't exist (Go template convention).
func getFunc(cs tokens.ColorScheme, name string) (uint32, error) {
	v, ok := cs[name]
	if !ok {
		return 0, fmt.Errorf("token %q not found", name)
	}
	return v, nil
}

func hasFunc(cs tokens.ColorScheme, name string) bool {
	_, ok := cs[name]
	return ok
}

// keysFunc returns the token names in lexical order so ranges are
// deterministic.
func keysFunc(cs tokens.ColorScheme) []string {
	return cs.Keys()
}

// hexNoHashFunc returns color in RRGGBB format (no # prefix).
func hexNoHashFunc(c uint32) string {
	return strings.TrimPrefix(colour.ToHex(c), "#")
}

// rgbFunc returns color in CSS rgb(r,g,b) format.
func rgbFunc(c uint32) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", colour.Red(c), colour.Green(c), colour.Blue(c))
}

// rgbaFunc returns color in CSS rgba(r,g,b,a) format with a 0-1 alpha.
func rgbaFunc(c uint32) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", colour.Red(c), colour.Green(c), colour.Blue(c), alphaString(c))
}

// rgbDecimalFunc returns color in "r,g,b" decimal format.
func rgbDecimalFunc(c uint32) string {
	return fmt.Sprintf("%d,%d,%d", colour.Red(c), colour.Green(c), colour.Blue(c))
}

// rgbSpacesFunc returns color in "r g b" space-separated format.
func rgbSpacesFunc(c uint32) string {
	return fmt.Sprintf("%d %d %d", colour.Red(c), colour.Green(c), colour.Blue(c))
}

// hslFunc returns color in CSS hsl(h s% l%) format.
func hslFunc(c uint32) string {
	return "hsl(" + hslValuesFunc(c) + ")"
}

// hslValuesFunc returns the bare "hue saturation% lightness%" triple used
// by shadcn/ui variables (e.g., "222.2 47.4% 11.2%").
func hslValuesFunc(c uint32) string {
	h, s, l := toColorful(c).Hsl()
	return fmt.Sprintf("%.1f %.1f%% %.1f%%", h, s*100, l*100)
}

// withAlphaFunc replaces the alpha channel (0.0-1.0). Alpha comes first
// so it works in pipes:
//
//	{{ get .Light "primary" | withAlpha 0.5 | rgba }}
func withAlphaFunc(alpha float64, c uint32) uint32 {
	alpha = min(max(alpha, 0), 1)
	a := uint32(alpha*255 + 0.5)
	return a<<24 | c&0x00FFFFFF
}

func alphaString(c uint32) string {
	a := float64(colour.Alpha(c)) / 255
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", a), "0"), ".")
}

func toColorful(c uint32) colorful.Color {
	return colorful.Color{
		R: float64(colour.Red(c)) / 255,
		G: float64(colour.Green(c)) / 255,
		B: float64(colour.Blue(c)) / 255,
	}
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
// Unlike strings.TrimPrefix, this takes prefix first so it works in pipes:
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc removes a suffix from a string (pipe-friendly argument order).
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
//
//	{{ value | replace "_" "-" }}
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
