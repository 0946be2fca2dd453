package material

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/core/base/strcase"
)

// Variant selects the algorithm that derives the secondary, tertiary and
// neutral palettes from a seed colour.
type Variant int

// Variant ids match the Material 3 scheme identifiers.
const (
	Monochrome Variant = iota
	Neutral
	TonalSpot
	Vibrant
	Expressive
	Fidelity
	Content
	Rainbow
	FruitSalad
)

var variantNames = [...]string{
	Monochrome: "monochrome",
	Neutral:    "neutral",
	TonalSpot:  "tonal-spot",
	Vibrant:    "vibrant",
	Expressive: "expressive",
	Fidelity:   "fidelity",
	Content:    "content",
	Rainbow:    "rainbow",
	FruitSalad: "fruit-salad",
}

// Variants lists every variant in id order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

// Valid reports whether v is one of the nine known variants.
func (v Variant) Valid() bool {
	return v >= Monochrome && v <= FruitSalad
}

// String returns the kebab-case name, e.g. "tonal-spot".
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// Label returns the human readable name, e.g. "Tonal Spot".
func (v Variant) Label() string {
	if !v.Valid() {
		return v.String()
	}
	return strcase.ToTitle(variantNames[v])
}

// ParseVariant accepts any casing of a variant name ("tonal-spot",
// "TONAL_SPOT", "tonalSpot", "Tonal Spot") or its numeric id.
func ParseVariant(s string) (Variant, error) {
	key := foldName(s)
	for i, name := range variantNames {
		if foldName(name) == key {
			return Variant(i), nil
		}
	}
	if id, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && Variant(id).Valid() {
		return Variant(id), nil
	}
	return TonalSpot, fmt.Errorf("unknown variant %q", s)
}

// foldName lower-cases s and drops everything but letters.
func foldName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

// Set implements pflag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Variant) Type() string {
	return "variant"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("unknown variant %d", int(v))
	}
	return []byte(v.String()), nil
}
