package tint

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/tint/internal/gamma"
)

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// RGB is the canonical byte-precision sRGB triple every color space
// converts through. It is comparable with ==.
type RGB struct {
	R, G, B uint8
}

// Round converts float channels in [0, 255] to an RGB. Each channel is
// clamped before rounding half away from zero; NaN becomes 0.
func Round(r, g, b float64) RGB {
	return RGB{R: roundByte(r), G: roundByte(g), B: roundByte(b)}
}

// roundByte clamps v to [0, 255] and rounds half away from zero.
func roundByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}

// FromARGB unpacks a 32-bit 0xAARRGGBB value. Alpha is the top byte / 255.
func FromARGB(argb uint32) (RGB, float32) {
	c := RGB{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
	return c, float32(uint8(argb>>24)) / 255
}

// ARGB packs c and alpha into 0xAARRGGBB. The alpha byte is
// round(alpha·255) clamped to [0, 255].
func (c RGB) ARGB(alpha float32) uint32 {
	return uint32(alphaByte(alpha))<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Invert returns 255 - channel for every channel.
func (c RGB) Invert() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Luminance returns the Rec. 709 weighted luminance of the gamma-encoded
// channels as a byte.
func (c RGB) Luminance() uint8 {
	return roundByte(lumR*float64(c.R) + lumG*float64(c.G) + lumB*float64(c.B))
}

// Linear returns the channels with sRGB gamma removed, each in [0, 1].
// It reads the process-wide lookup table.
func (c RGB) Linear() Vec3 {
	return Vec3{
		X: float64(gamma.ToLinear(c.R)),
		Y: float64(gamma.ToLinear(c.G)),
		Z: float64(gamma.ToLinear(c.B)),
	}
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// WithAlpha returns an RGBA with the given alpha, clamped to [0, 1].
// Use NewRGBA to reject out-of-range alpha instead.
func (c RGB) WithAlpha(alpha float32) RGBA {
	return RGBA{rgb: c, alpha: clampAlpha(alpha)}
}

// RGBA is an sRGB color with a separate normalized alpha. It is the color
// entity for SpaceRGB. Values are immutable and compare with ==.
type RGBA struct {
	rgb   RGB
	alpha float32
}

// NewRGBA creates a color from byte channels and an alpha in [0, 1].
// An alpha outside that range, or NaN, returns ErrInvalidArgument.
func NewRGBA(r, g, b uint8, alpha float32) (RGBA, error) {
	if err := checkAlpha(alpha); err != nil {
		return RGBA{}, err
	}
	return RGBA{rgb: RGB{R: r, G: g, B: b}, alpha: alpha}, nil
}

// Opaque creates a fully opaque color.
func Opaque(r, g, b uint8) RGBA {
	return RGBA{rgb: RGB{R: r, G: g, B: b}, alpha: 1}
}

// R returns the red channel.
func (c RGBA) R() uint8 { return c.rgb.R }

// G returns the green channel.
func (c RGBA) G() uint8 { return c.rgb.G }

// B returns the blue channel.
func (c RGBA) B() uint8 { return c.rgb.B }

// RGB returns the canonical byte triple.
func (c RGBA) RGB() RGB { return c.rgb }

// Alpha returns the alpha in [0, 1].
func (c RGBA) Alpha() float32 { return c.alpha }

// Invert inverts the channels and keeps alpha.
func (c RGBA) Invert() RGBA {
	return RGBA{rgb: c.rgb.Invert(), alpha: c.alpha}
}

// RGBA implements image/color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return nrgba64(c.rgb, c.alpha).RGBA()
}

// String returns the hex form, with an alpha suffix when not opaque.
func (c RGBA) String() string {
	return Hex(c)
}

func (RGBA) fromRGB(c RGB, alpha float32) RGBA {
	return RGBA{rgb: c, alpha: alpha}
}

// nrgba64 widens c to 16 bits per channel for the image/color interop.
func nrgba64(c RGB, alpha float32) color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(c.R) * 0x101,
		G: uint16(c.G) * 0x101,
		B: uint16(c.B) * 0x101,
		A: uint16(math.Round(float64(clampAlpha(alpha)) * 0xffff)),
	}
}

func checkAlpha(alpha float32) error {
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("%w: alpha %v outside [0, 1]", ErrInvalidArgument, alpha)
	}
	return nil
}

func clampAlpha(alpha float32) float32 {
	return float32(clamp(float64(alpha), 0, 1))
}

func alphaByte(alpha float32) uint8 {
	return roundByte(float64(alpha) * 255)
}
