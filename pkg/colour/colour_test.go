package colour

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{"six digit with hash", "#ff5733", 0xFFFF5733},
		{"six digit without hash", "ff5733", 0xFFFF5733},
		{"upper case", "#FF5733", 0xFFFF5733},
		{"three digit", "#f53", 0xFFFF5533},
		{"four digit", "#f538", 0x88FF5533},
		{"eight digit", "#ff573380", 0x80FF5733},
		{"black", "#000", 0xFF000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	inputs := []string{"not-a-color", "", "#", "#12", "#12345", "#1234567", "#gggggg", "##ffffff", "0xFFFFFFFF"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorFormat))
			assert.Contains(t, err.Error(), in)
		})
	}
}

func TestToArgb(t *testing.T) {
	v, err := ToArgb(ARGB(0xFF769CDF))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF769CDF), v)

	v, err = ToArgb(Hex("#769cdf"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF769CDF), v)

	v, err = ToArgb(Color{})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	_, err = ToArgb(Hex("not-a-color"))
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{"#ABCDEF", "abcdef", "#abcdef", "AbCdEf"}

	for _, in := range inputs {
		v, err := ParseHex(in)
		require.NoError(t, err)
		assert.Equal(t, "#abcdef", ToHex(v), in)
	}
}

func TestColorSet(t *testing.T) {
	var c Color
	require.NoError(t, c.Set("#112233"))
	assert.Equal(t, "#112233", c.String())
	assert.Equal(t, "colour", c.Type())

	require.NoError(t, c.Set("0xFF445566"))
	v, err := c.ARGB()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF445566), v)
	assert.Equal(t, "0xFF445566", c.String())

	assert.ErrorIs(t, c.Set("purple"), ErrInvalidColorFormat)
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#FF5733")))

	out, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#ff5733ff", string(out))

	var empty Color
	out, err = empty.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestChannels(t *testing.T) {
	const c = 0x80112233
	assert.Equal(t, uint8(0x80), Alpha(c))
	assert.Equal(t, uint8(0x11), Red(c))
	assert.Equal(t, uint8(0x22), Green(c))
	assert.Equal(t, uint8(0x33), Blue(c))

	rgba := ToRGBA(c)
	assert.Equal(t, uint32(c), FromRGBA(rgba))
}

func TestConversions(t *testing.T) {
	white := uint32(0xFFFFFFFF)
	black := uint32(0xFF000000)

	assert.InDelta(t, 100, ToLstar(white), 0.5)
	assert.InDelta(t, 0, ToLstar(black), 0.5)

	xyz := ToXYZ(white)
	assert.InDelta(t, 95.05, xyz.X, 0.5)
	assert.InDelta(t, 100, xyz.Y, 0.5)
	assert.InDelta(t, 108.9, xyz.Z, 0.5)

	lab := ToLab(white)
	assert.InDelta(t, 100, lab.L, 0.5)
	assert.InDelta(t, 0, lab.A, 0.5)
	assert.InDelta(t, 0, lab.B, 0.5)

	h := ToHCT(0xFF0000FF)
	assert.InDelta(t, 282, h.Hue, 1)
	assert.Greater(t, h.Chroma, 80.0)

	back := FromHCT(h.Hue, h.Chroma, h.Tone)
	assert.Equal(t, uint8(0xFF), Alpha(back))
	assert.InDelta(t, 255, int(Blue(back)), 3)
}

func TestContrast(t *testing.T) {
	white := uint32(0xFFFFFFFF)
	black := uint32(0xFF000000)

	assert.InDelta(t, 21, ContrastRatio(white, black), 0.1)
	assert.InDelta(t, 1, ContrastRatio(white, white), 0.01)
	assert.True(t, IsContrasting(white, black, DefaultMinContrast))
	assert.False(t, IsContrasting(white, 0xFFEEEEEE, DefaultMinContrast))

	_, ok := LighterTone(100, 21)
	assert.False(t, ok)
	assert.Equal(t, 100.0, LighterToneUnsafe(100, 21))
	assert.Equal(t, 0.0, DarkerToneUnsafe(0, 21))

	c := ContrastColor(0xFF202020)
	assert.Greater(t, ToLstar(c), ToLstar(0xFF202020))
	c = ContrastColor(0xFFF0F0F0)
	assert.Less(t, ToLstar(c), ToLstar(0xFFF0F0F0))
}
