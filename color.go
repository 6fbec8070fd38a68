package winepaint

import (
	"image/color"
	"strings"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// DefaultBaseColor is the pale straw used when no usable base color is given.
var DefaultBaseColor = RGB{R: 0xF6, G: 0xF2, B: 0xAF}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGBA returns c as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color as an upper-case "#RRGGBB" string.
func (c RGB) Hex() string {
	const digits = "0123456789ABCDEF"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0x0f],
		digits[c.G>>4], digits[c.G&0x0f],
		digits[c.B>>4], digits[c.B&0x0f],
	})
}

// Brightness returns the mean channel value scaled to [0, 1].
func (c RGB) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3 / 255
}

// vec returns the channels as float32 values in [0, 255].
func (c RGB) vec() [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB".
// Any other length or a non-hex digit reports ok == false.
func ParseHexColor(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}

	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		v[i] = hi<<4 | lo
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// namedColors maps descriptive wine color names to their reference hex.
var namedColors = map[string]RGB{
	"pale straw": {0xF6, 0xF2, 0xAF},
	"straw":      {0xF5, 0xEB, 0x7C},
	"lemon":      {0xF4, 0xE0, 0x4D},
	"gold":       {0xE6, 0xC7, 0x5B},
	"amber":      {0xD4, 0x8A, 0x3A},
	"rose":       {0xF4, 0xA6, 0xB0},
	"salmon":     {0xF2, 0xA2, 0x9B},
	"onion skin": {0xD4, 0x8C, 0x78},
	"ruby":       {0x8B, 0x1A, 0x1A},
	"garnet":     {0x7B, 0x2D, 0x26},
	"brick":      {0x8B, 0x3A, 0x2B},
	"purple":     {0x5B, 0x2C, 0x6F},
	"tawny":      {0xA0, 0x52, 0x2D},
}

// LookupColor resolves a descriptive color name such as "garnet" or
// "Pale Straw". Accents and case are ignored, so "rosé" finds "rose".
func LookupColor(name string) (RGB, bool) {
	c, ok := namedColors[foldName(name)]
	return c, ok
}

// resolveColor accepts a hex string or a named color.
func resolveColor(s string) (RGB, bool) {
	if c, ok := ParseHexColor(s); ok {
		return c, true
	}
	return LookupColor(s)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
