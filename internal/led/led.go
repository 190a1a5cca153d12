// Package led models the per-key RGB indicators.
package led

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NumKeys is the number of physical keys with an LED behind them. The
// encoder button has no LED.
const NumKeys = 12

// Color is a 24-bit RGB LED color.
type Color struct {
	R, G, B uint8
}

// Off is the unlit LED color.
var Off = Color{}

// Highlight is the color a key LED is set to while its macro is held.
var Highlight = Color{R: 255, G: 255, B: 255}

// FromRGB packs a 0xRRGGBB integer into a Color.
func FromRGB(rgb uint32) Color {
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}
}

// RGB returns the 0xRRGGBB packed form.
func (c Color) RGB() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseHex parses "#RRGGBB" (or "#RGB") into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Dim scales the color towards black by the given factor in [0,1]. Used by
// render surfaces that need an "unlit but visible" shade.
func (c Color) Dim(factor float64) Color {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	blended := cf.BlendRgb(colorful.Color{}, 1-factor)
	r, g, b := blended.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Pixels is the LED strip collaborator. Set stages a color; Show pushes the
// staged state to the hardware.
type Pixels interface {
	Set(index int, c Color)
	Show()
}
