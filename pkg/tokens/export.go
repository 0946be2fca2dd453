package tokens

import (
	"sort"
	"strings"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
)

// AmoledBlack is the colour ApplyAmoledFilter forces onto the background
// and surface roles.
const AmoledBlack uint32 = 0xFF000000

// CSSVarMap maps each token of cs to its CSS custom property name and
// #rrggbb value.
func CSSVarMap(cs ColorScheme) map[string]string {
	out := make(map[string]string, len(cs))
	for k, v := range cs {
		out[FormatCSSVarName(k)] = colour.ToHex(v)
	}
	return out
}

// SerializeCSSVarMap renders vars as "name: value;" declarations separated
// by single spaces and ordered by name. A non-empty selector wraps them in
// a rule: ":root { --primary: #ff5733; }".
func SerializeCSSVarMap(vars map[string]string, selector string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]string, len(names))
	for i, name := range names {
		decls[i] = name + ": " + vars[name] + ";"
	}

	body := strings.Join(decls, " ")
	if selector == "" {
		return body
	}
	return selector + " { " + body + " }"
}

// ApplyAmoledFilter returns a copy of cs with background and surface set to
// opaque black.
func ApplyAmoledFilter(cs ColorScheme) ColorScheme {
	out := cs.Clone()
	out[RoleTokenName(material.Background, "")] = AmoledBlack
	out[RoleTokenName(material.Surface, "")] = AmoledBlack
	return out
}

// AmoledFilter is ApplyAmoledFilter as a ModifyFunc.
func AmoledFilter(cs ColorScheme) (ColorScheme, error) {
	return ApplyAmoledFilter(cs), nil
}
