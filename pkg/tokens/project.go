package tokens

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/theme"
)

// ErrTokenCollision is returned by CheckCustomColorNames when a custom
// colour would produce a key that is already taken.
var ErrTokenCollision = errors.New("token name collision")

// ColorScheme maps token keys to packed 0xAARRGGBB colours.
type ColorScheme map[string]uint32

// Keys returns the token keys in lexical order.
func (c ColorScheme) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Hex returns a copy with every colour as a lowercase #rrggbb string.
func (c ColorScheme) Hex() map[string]string {
	out := make(map[string]string, len(c))
	for k, v := range c {
		out[k] = colour.ToHex(v)
	}
	return out
}

// Clone returns a shallow copy.
func (c ColorScheme) Clone() ColorScheme {
	out := make(ColorScheme, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ModifyFunc transforms an assembled colour scheme. Its result replaces the
// projector's own.
type ModifyFunc func(ColorScheme) (ColorScheme, error)

// Chain runs hooks in order, each receiving the previous result. Nil hooks
// are skipped.
func Chain(hooks ...ModifyFunc) ModifyFunc {
	return func(cs ColorScheme) (ColorScheme, error) {
		var err error
		for _, h := range hooks {
			if h == nil {
				continue
			}
			if cs, err = h(cs); err != nil {
				return nil, err
			}
		}
		return cs, nil
	}
}

// ProjectOptions controls FromTheme and FromScheme.
type ProjectOptions struct {
	// Dark selects the dark scheme for the unsuffixed tokens.
	Dark bool
	// BrightnessVariants adds "Light" and "Dark" suffixed copies of every
	// role and custom colour token.
	BrightnessVariants bool
	// PaletteTones adds one token per core palette and tone.
	PaletteTones []float64
	// ModifyColorScheme, when set, receives the assembled map and returns
	// the final one.
	ModifyColorScheme ModifyFunc
}

// FromScheme projects every Material role of s. Brightness variants,
// palette tones and custom colours need a theme and are ignored here.
func FromScheme(s *material.DynamicScheme, opts ProjectOptions) (ColorScheme, error) {
	cs := make(ColorScheme, len(material.RoleKeys()))
	addRoles(cs, s, "")
	return modify(cs, opts.ModifyColorScheme)
}

// FromTheme projects a theme. The unsuffixed role tokens come from the
// light or dark scheme per opts.Dark; custom colours, palette tones and
// brightness variants are added as opts asks.
func FromTheme(th *theme.Theme, opts ProjectOptions) (ColorScheme, error) {
	base := th.Schemes.Light
	if opts.Dark {
		base = th.Schemes.Dark
	}

	cs := make(ColorScheme)
	addRoles(cs, base, "")

	for _, g := range th.CustomColors {
		for _, v := range customVariants(opts) {
			side := g.Light
			if v.dark {
				side = g.Dark
			}
			for _, sub := range material.SubRoles() {
				cs[FormatTokenName(string(sub), g.Spec.Name, v.suffix)] = side.Get(sub)
			}
		}
	}

	if len(opts.PaletteTones) > 0 {
		for _, np := range th.Palettes.Core() {
			for _, tone := range opts.PaletteTones {
				cs[PaletteToneTokenName(np.Name, tone)] = np.Palette.Tone(tone)
			}
		}
	}

	if opts.BrightnessVariants {
		addRoles(cs, th.Schemes.Light, SuffixLight)
		addRoles(cs, th.Schemes.Dark, SuffixDark)
	}

	return modify(cs, opts.ModifyColorScheme)
}

func addRoles(cs ColorScheme, s *material.DynamicScheme, suffix string) {
	for _, rv := range s.Roles() {
		cs[RoleTokenName(rv.Key, suffix)] = rv.ARGB
	}
}

type customVariant struct {
	dark   bool
	suffix string
}

// customVariants lists the sides a custom colour is projected with: the
// side matching opts.Dark unsuffixed, then both sides suffixed when
// brightness variants are on.
func customVariants(opts ProjectOptions) []customVariant {
	vs := []customVariant{{dark: opts.Dark}}
	if opts.BrightnessVariants {
		vs = append(vs, customVariant{dark: false, suffix: SuffixLight}, customVariant{dark: true, suffix: SuffixDark})
	}
	return vs
}

func modify(cs ColorScheme, hook ModifyFunc) (ColorScheme, error) {
	if hook == nil {
		return cs, nil
	}
	out, err := hook(cs)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckCustomColorNames reports whether any custom colour would produce a
// token key that clashes with a Material role, a palette tone or another
// custom colour under opts. FromTheme does not check; a clashing custom
// colour silently replaces the earlier value.
func CheckCustomColorNames(colors []theme.CustomColor, opts ProjectOptions) error {
	taken := make(map[string]string)
	for _, k := range material.RoleKeys() {
		taken[RoleTokenName(k, "")] = "role " + string(k)
		if opts.BrightnessVariants {
			taken[RoleTokenName(k, SuffixLight)] = "role " + string(k)
			taken[RoleTokenName(k, SuffixDark)] = "role " + string(k)
		}
	}
	for _, name := range []string{"primary", "secondary", "tertiary", "neutral", "neutralVariant"} {
		for _, tone := range opts.PaletteTones {
			taken[PaletteToneTokenName(name, tone)] = "palette " + name
		}
	}

	for _, c := range colors {
		owner := fmt.Sprintf("custom colour %q", c.Name)
		produced := make(map[string]bool)
		for _, v := range customVariants(opts) {
			for _, sub := range material.SubRoles() {
				key := FormatTokenName(string(sub), c.Name, v.suffix)
				if produced[key] {
					continue
				}
				produced[key] = true
				if prev, ok := taken[key]; ok {
					return fmt.Errorf("%w: %s produces %q, already used by %s", ErrTokenCollision, owner, key, prev)
				}
			}
		}
		for key := range produced {
			taken[key] = owner
		}
	}
	return nil
}
