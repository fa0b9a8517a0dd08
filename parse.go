package tint

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. A malformed string returns ErrInvalidArgument.
func ParseHex(hex string) (RGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: hex color %q", ErrInvalidArgument, hex)
	}

	return RGBA{
		rgb:   RGB{R: uint8(r), G: uint8(g), B: uint8(b)},
		alpha: float32(a) / 255,
	}, nil
}

// parseHex accumulates hex digits into val and reports whether every
// character was a hex digit.
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

// Named returns the SVG 1.1 color with the given name, ignoring case.
func Named(name string) (RGBA, error) {
	nc, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGBA{}, fmt.Errorf("%w: color name %q", ErrInvalidArgument, name)
	}
	return RGBA{rgb: RGB{R: nc.R, G: nc.G, B: nc.B}, alpha: float32(nc.A) / 255}, nil
}

// Parse accepts a hex string, with or without '#', or a color name.
func Parse(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	if c, err := Named(s); err == nil {
		return c, nil
	}
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	return RGBA{}, fmt.Errorf("%w: color %q is neither hex nor a known name", ErrInvalidArgument, s)
}
