package plotdraw

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is conceptually in the range [0, 1]. Values outside that
// range are kept as-is and handed to the output backends unchanged.
//
// Color is a plain value: two colors are equal when all four channels are.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Named colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 0.5, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Orange      = RGB(1, 0.647, 0)
	Purple      = RGB(0.5, 0, 0.5)
	Brown       = RGB(0.647, 0.165, 0.165)
	Pink        = RGB(1, 0.753, 0.796)
	Gray        = RGB(0.5, 0.5, 0.5)
	LightGray   = RGB(0.75, 0.75, 0.75)
	DarkGray    = RGB(0.25, 0.25, 0.25)
	Transparent = RGBA(0, 0, 0, 0)
)

// namedColors is the lookup table used by ColorNamed. Keys are case-folded.
var namedColors = map[string]Color{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"orange":      Orange,
	"purple":      Purple,
	"brown":       Brown,
	"pink":        Pink,
	"gray":        Gray,
	"grey":        Gray,
	"lightgray":   LightGray,
	"lightgrey":   LightGray,
	"darkgray":    DarkGray,
	"darkgrey":    DarkGray,
	"none":        Transparent,
	"transparent": Transparent,
}

// ColorNamed looks up a color by name, ignoring case.
//
//	c, ok := plotdraw.ColorNamed("LightGrey")
//
// The second result is false for unknown names.
func ColorNamed(name string) (Color, bool) {
	c, ok := namedColors[cases.Fold().String(name)]
	return c, ok
}

// ParseHex parses a "RRGGBB" or "RRGGBBAA" hex string. Surrounding
// whitespace and a single leading '#' are ignored. Six digits produce an
// opaque color.
//
// The second result is false if the string is not exactly 6 or 8 hex
// digits; the returned Color is then the zero value.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}

	return Color{
		R: float64(v>>24&0xFF) / 255,
		G: float64(v>>16&0xFF) / 255,
		B: float64(v>>8&0xFF) / 255,
		A: float64(v&0xFF) / 255,
	}, true
}

// ParseColor accepts either a color name or a hex string.
func ParseColor(s string) (Color, bool) {
	if c, ok := ColorNamed(strings.TrimSpace(s)); ok {
		return c, true
	}
	return ParseHex(s)
}

// Hex returns the color as "#RRGGBB". Channels are truncated, not rounded,
// so 0.5 becomes 7F.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// HexAlpha returns the color as "#RRGGBBAA".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02X%02X%02X%02X",
		channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.HexAlpha()
}

// IsTransparent reports whether c is exactly the Transparent color.
// A color with zero alpha but non-zero RGB is not considered transparent.
func (c Color) IsTransparent() bool {
	return c == Transparent
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// channelByte truncates a channel to a byte, clamped so the hex form always
// has two digits.
func channelByte(v float64) uint8 {
	n := int(v * 255)
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}
