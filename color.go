package turtle

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default pen color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NRGBA converts the color to a standard straight-alpha color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseColor resolves a color spec: a hex string ("#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA", leading '#' optional) or an SVG 1.1 color name such as
// "mediumpurple". Resolution is defensive: anything unrecognized yields
// opaque black rather than an error.
func ParseColor(spec string) Color {
	s := strings.TrimSpace(spec)
	if s == "" {
		return ColorBlack
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return fromRGBA8(named)
	}
	// Bare hex without the leading '#'.
	if c, ok := tryHexColor(s); ok {
		return c
	}
	logger().Warn("turtle: unrecognized color, using black", "spec", spec)
	return ColorBlack
}

func fromRGBA8(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func parseHexColor(hex string) Color {
	if c, ok := tryHexColor(hex); ok {
		return c
	}
	logger().Warn("turtle: malformed hex color, using black", "spec", "#"+hex)
	return ColorBlack
}

// tryHexColor parses the digits of a 3, 4, 6, or 8 digit hex color.
func tryHexColor(hex string) (Color, bool) {
	var r, g, b uint32
	a := uint32(255)
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) || !parseHex(hex[3:4], &a) {
			return Color{}, false
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}, false
		}
	case 8: // RRGGBBAA
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) || !parseHex(hex[6:8], &a) {
			return Color{}, false
		}
	default:
		return Color{}, false
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
