package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
)

// Contrast is a contrast level in [-1, 1]. As text it accepts a number or a
// named level ("reduced", "default", "medium", "high").
type Contrast float64

// String implements pflag.Value.
func (c *Contrast) String() string {
	return strconv.FormatFloat(float64(*c), 'g', -1, 64)
}

// Set implements pflag.Value.
func (c *Contrast) Set(s string) error {
	s = strings.TrimSpace(s)
	for _, level := range material.ContrastLevels() {
		if strings.EqualFold(s, level.ID) {
			*c = Contrast(level.Value)
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid contrast %q: want a number in [-1, 1] or reduced, default, medium, high", s)
	}
	*c = Contrast(v)
	return nil
}

// Type implements pflag.Value.
func (c *Contrast) Type() string {
	return "contrast"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Contrast) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

var colourType = reflect.TypeOf(colour.Color{})

// numberToColourHook lets config files give colours as packed 0xAARRGGBB
// integers (toml and yaml both read 0x literals as numbers).
func numberToColourHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != colourType {
			return data, nil
		}

		rv := reflect.ValueOf(data)
		var n float64
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			n = rv.Float()
		default:
			return data, nil
		}

		if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
			return nil, fmt.Errorf("%w: %v is not a 32-bit ARGB value", colour.ErrInvalidColorFormat, data)
		}
		return colour.ARGB(uint32(n)), nil
	}
}
