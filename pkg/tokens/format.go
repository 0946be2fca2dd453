// Package tokens flattens schemes and themes into design-token maps and
// exports them as CSS custom properties.
//
// Token keys are lowerCamelCase: Material roles keep their own names
// ("onPrimaryContainer"), brightness variants append "Light" or "Dark",
// palette tones append the tone ("neutralVariant95") and custom colours
// substitute their name into the sub-role ("onElectricLeafContainer").
package tokens

import (
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/core/base/strcase"

	"github.com/jmylchreest/tonal/pkg/material"
)

// Suffixes for brightness variant tokens.
const (
	SuffixLight = "Light"
	SuffixDark  = "Dark"
)

// FormatTokenName builds a token key from a sub-role pattern, a custom
// colour name and an optional suffix. Every occurrence of "color" in the
// pattern is replaced by the camel-cased name:
//
//	FormatTokenName("onColorContainer", "Electric Leaf", "")      // onElectricLeafContainer
//	FormatTokenName("onColorContainer", "Electric Leaf", "Light") // onElectricLeafContainerLight
func FormatTokenName(pattern, name, suffix string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 4)
	for _, r := range pattern {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	s := strings.ReplaceAll(b.String(), "color", strcase.ToLowerCamel(name))
	if suffix != "" {
		s += "_" + suffix
	}
	return strcase.ToLowerCamel(s)
}

// RoleTokenName returns the token key of a Material role, optionally
// suffixed.
func RoleTokenName(key material.RoleKey, suffix string) string {
	if suffix == "" {
		return string(key)
	}
	return strcase.ToLowerCamel(string(key) + "_" + suffix)
}

// PaletteToneTokenName returns the token key of a palette tone, e.g.
// "primary95". The fraction of a fractional tone follows an underscore, so
// 99.5 becomes "primary99_5" and never meets tone 995 or 9.95.
func PaletteToneTokenName(palette string, tone float64) string {
	whole, frac, _ := strings.Cut(strconv.FormatFloat(tone, 'f', -1, 64), ".")
	name := FormatTokenName(palette, "", whole)
	if frac != "" {
		name += "_" + frac
	}
	return name
}

// FormatCSSVarName returns the CSS custom property name of a token key,
// e.g. "--on-primary-container".
func FormatCSSVarName(key string) string {
	return "--" + strcase.ToKebab(key)
}
