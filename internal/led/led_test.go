package led_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropad/internal/led"
)

func TestFromRGBRoundTrip(t *testing.T) {
	tests := []struct {
		rgb      uint32
		expected led.Color
	}{
		{0x000000, led.Color{}},
		{0xFF0000, led.Color{R: 255}},
		{0x004000, led.Color{G: 64}},
		{0x101010, led.Color{R: 16, G: 16, B: 16}},
		{0xFFFFFF, led.Color{R: 255, G: 255, B: 255}},
	}
	for _, tt := range tests {
		c := led.FromRGB(tt.rgb)
		assert.Equal(t, tt.expected, c)
		assert.Equal(t, tt.rgb, c.RGB())
	}
}

func TestParseHex(t *testing.T) {
	c, err := led.ParseHex("#204080")
	require.NoError(t, err)
	assert.Equal(t, led.Color{R: 0x20, G: 0x40, B: 0x80}, c)

	c, err = led.ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, led.Highlight, c)

	_, err = led.ParseHex("blue")
	assert.Error(t, err)
}

func TestDim(t *testing.T) {
	c := led.Color{R: 200, G: 100, B: 50}
	assert.Equal(t, c, c.Dim(1))
	assert.Equal(t, led.Off, c.Dim(0))

	half := c.Dim(0.5)
	assert.InDelta(t, 100, int(half.R), 1)
	assert.InDelta(t, 50, int(half.G), 1)
	assert.InDelta(t, 25, int(half.B), 1)
}
