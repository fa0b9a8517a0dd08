package tint

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is implemented by every color value in this package. Each value
// knows its canonical RGB and its alpha; both are fixed at construction.
//
// Every Color is also an image/color.Color, so it can be drawn into the
// standard library's image types.
type Color interface {
	color.Color

	// RGB returns the canonical byte triple of the color.
	RGB() RGB

	// Alpha returns the alpha in [0, 1].
	Alpha() float32
}

// Convertible is a Color type that can build itself from a canonical RGB
// and an alpha. The method is unexported, so only this package's types
// satisfy it and a conversion to any other type fails to compile.
type Convertible[T any] interface {
	Color
	fromRGB(c RGB, alpha float32) T
}

// To converts c to the color type T through the canonical RGB hub.
// Alpha passes through unchanged. If c already is a T it is returned as is.
//
// Example:
//
//	hsl := tint.To[tint.HSL](tint.Opaque(255, 0, 0)) // hsl(0, 100%, 50%)
func To[T Convertible[T]](c Color) T {
	if t, ok := c.(T); ok {
		return t
	}
	var zero T
	return zero.fromRGB(c.RGB(), c.Alpha())
}

// Space identifies a color space for dynamic conversion with Convert.
type Space uint8

const (
	// SpaceRGB is gamma-encoded sRGB with alpha (RGBA).
	SpaceRGB Space = iota

	// SpaceHSL is hue, saturation, lightness (HSL).
	SpaceHSL

	// SpaceXYZ is CIE 1931 XYZ, D65 white (XYZ).
	SpaceXYZ

	// SpaceXYY is CIE xyY chromaticity plus luminance (XYY).
	SpaceXYY

	// SpaceLMS is the cone response space (LMS).
	SpaceLMS

	spaceCount
)

var spaceNames = [spaceCount]string{
	SpaceRGB: "rgb",
	SpaceHSL: "hsl",
	SpaceXYZ: "xyz",
	SpaceXYY: "xyy",
	SpaceLMS: "lms",
}

// String returns the lowercase name of the space.
func (s Space) String() string {
	if s < spaceCount {
		return spaceNames[s]
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// ParseSpace returns the Space with the given name, ignoring case.
func ParseSpace(name string) (Space, error) {
	for s, n := range spaceNames {
		if strings.EqualFold(n, name) {
			return Space(s), nil
		}
	}
	return 0, fmt.Errorf("%w: space %q", ErrConversionUnsupported, name)
}

// converters is the closed registry behind Convert, one entry per Space.
var converters = [spaceCount]func(Color) Color{
	SpaceRGB: convertTo[RGBA],
	SpaceHSL: convertTo[HSL],
	SpaceXYZ: convertTo[XYZ],
	SpaceXYY: convertTo[XYY],
	SpaceLMS: convertTo[LMS],
}

func convertTo[T Convertible[T]](c Color) Color {
	return To[T](c)
}

// Convert converts c to the given space. It is the dynamic counterpart of
// To for callers that pick the target at run time. An unknown space
// returns ErrConversionUnsupported.
func Convert(c Color, to Space) (Color, error) {
	if to >= spaceCount {
		return nil, fmt.Errorf("%w: %v", ErrConversionUnsupported, to)
	}
	return converters[to](c), nil
}

// SpaceOf reports the space of a color created by this package.
func SpaceOf(c Color) (Space, bool) {
	switch c.(type) {
	case RGBA:
		return SpaceRGB, true
	case HSL:
		return SpaceHSL, true
	case XYZ:
		return SpaceXYZ, true
	case XYY:
		return SpaceXYY, true
	case LMS:
		return SpaceLMS, true
	}
	return 0, false
}

// ARGB packs any color into 0xAARRGGBB.
func ARGB(c Color) uint32 {
	return c.RGB().ARGB(c.Alpha())
}

// Hex renders any color as "#RRGGBB", or "#RRGGBBAA" when its alpha is
// below 0.999.
func Hex(c Color) string {
	h := c.RGB().Hex()
	if a := c.Alpha(); a < 0.999 {
		h += fmt.Sprintf("%02X", alphaByte(a))
	}
	return h
}

// RGBAString renders any color in CSS form, e.g. "rgba(17, 95, 37, 0.50)".
func RGBAString(c Color) string {
	rgb := c.RGB()
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", rgb.R, rgb.G, rgb.B, c.Alpha())
}

// FromColor converts a standard library color to RGBA. Colors from this
// package keep their canonical RGB and alpha exactly.
func FromColor(c color.Color) RGBA {
	if tc, ok := c.(Color); ok {
		return To[RGBA](tc)
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		rgb: RGB{
			R: narrow16(n.R),
			G: narrow16(n.G),
			B: narrow16(n.B),
		},
		alpha: float32(n.A) / 0xffff,
	}
}

// Model converts any color.Color to this package's RGBA.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// narrow16 rounds a 16-bit channel to 8 bits.
func narrow16(v uint16) uint8 {
	return uint8((uint32(v)*255 + 0x7fff) / 0xffff)
}
