// Package colour provides the colour codec used throughout tonal.
//
// A Color is either a hex string or a packed 0xAARRGGBB integer. Every
// function that accepts a Color canonicalises it to the integer form with
// ToArgb before doing anything else.
package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex string does not match any of
// the accepted patterns.
var ErrInvalidColorFormat = errors.New("invalid colour format")

// hexPattern accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA with an optional '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

type kind uint8

const (
	kindNone kind = iota
	kindHex
	kindArgb
)

// Color is a colour value as supplied by a caller. The zero value means the
// colour was not supplied.
type Color struct {
	kind kind
	hex  string
	argb uint32
}

// Hex returns a Color holding a hex string. The string is validated lazily by
// ToArgb.
func Hex(s string) Color {
	return Color{kind: kindHex, hex: s}
}

// ARGB returns a Color holding a packed 0xAARRGGBB integer.
func ARGB(v uint32) Color {
	return Color{kind: kindArgb, argb: v}
}

// IsZero reports whether the colour was left unset.
func (c Color) IsZero() bool {
	return c.kind == kindNone
}

// ToArgb canonicalises c to a packed 0xAARRGGBB integer. An unset colour
// resolves to 0.
func ToArgb(c Color) (uint32, error) {
	switch c.kind {
	case kindArgb:
		return c.argb, nil
	case kindHex:
		return ParseHex(c.hex)
	default:
		return 0, nil
	}
}

// ARGB returns the canonical integer form of c. See ToArgb.
func (c Color) ARGB() (uint32, error) {
	return ToArgb(c)
}

// ParseHex converts a hex string to a packed 0xAARRGGBB integer. Short forms
// are expanded by doubling each digit; a missing alpha channel is opaque.
func ParseHex(s string) (uint32, error) {
	if !hexPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	digits := strings.TrimPrefix(s, "#")
	if len(digits) <= 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	if len(digits) == 6 {
		return 0xFF000000 | uint32(v), nil
	}
	// RRGGBBAA: rotate the alpha byte to the front.
	rgb := uint32(v) >> 8
	alpha := uint32(v) & 0xFF
	return alpha<<24 | rgb, nil
}

// MustParse is like ParseHex but panics on error. It is intended for
// package-level colour constants.
func MustParse(s string) uint32 {
	v, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the colour as the caller supplied it. Integer colours are
// written as 0xAARRGGBB so that Set reads them back unchanged.
func (c Color) String() string {
	switch c.kind {
	case kindHex:
		return c.hex
	case kindArgb:
		return fmt.Sprintf("0x%08X", c.argb)
	default:
		return ""
	}
}

// Set implements pflag.Value. Accepts hex strings or 0x-prefixed integers.
func (c *Color) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string {
	return "colour"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler. Colours are always written
// in their canonical hex form.
func (c Color) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}
	v, err := ToArgb(c)
	if err != nil {
		return nil, err
	}
	return []byte(ToHexAlpha(v)), nil
}

// Parse reads a colour from user input. Strings starting with 0x are read as
// packed integers, everything else as hex. An empty string yields the zero
// Color.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		return ARGB(uint32(v)), nil
	}
	if _, err := ParseHex(s); err != nil {
		return Color{}, err
	}
	return Hex(s), nil
}
