package tint

import (
	"fmt"

	"github.com/gogpu/tint/internal/gamma"
)

var (
	// rgbToXYZ maps linear sRGB to CIE XYZ under the D65 white point.
	rgbToXYZ = M3(
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	)

	xyzToRGB = rgbToXYZ.Inverse()

	// whiteXYZ is linear white (1, 1, 1) in XYZ: the row sums of rgbToXYZ.
	whiteXYZ = rgbToXYZ.Transform(V3(1, 1, 1))
)

// XYZ is a color in the CIE 1931 XYZ space with a D65 reference white.
// Y is relative luminance, 1 for sRGB white.
type XYZ struct {
	v     Vec3
	alpha float32
	rgb   RGB
}

// NewXYZ creates an XYZ color. Alpha must be in [0, 1], otherwise
// ErrInvalidArgument is returned. Components outside the sRGB gamut are
// accepted; their canonical RGB is clamped.
func NewXYZ(x, y, z float64, alpha float32) (XYZ, error) {
	if err := checkAlpha(alpha); err != nil {
		return XYZ{}, err
	}
	return newXYZ(V3(x, y, z), alpha), nil
}

func newXYZ(v Vec3, alpha float32) XYZ {
	return XYZ{v: v, alpha: alpha, rgb: XYZToRGB(v)}
}

// RGBToXYZ converts a byte triple to XYZ using the exact sRGB transfer
// function.
func RGBToXYZ(c RGB) Vec3 {
	return rgbToXYZ.Transform(Vec3{
		X: gamma.Remove(float64(c.R) / 255),
		Y: gamma.Remove(float64(c.G) / 255),
		Z: gamma.Remove(float64(c.B) / 255),
	})
}

// XYZToRGB converts XYZ back to a byte triple: inverse matrix, exact sRGB
// gamma, then Round.
func XYZToRGB(v Vec3) RGB {
	l := xyzToRGB.Transform(v)
	return Round(
		gamma.Apply(l.X)*255,
		gamma.Apply(l.Y)*255,
		gamma.Apply(l.Z)*255,
	)
}

// LinearToXYZ converts linear sRGB to XYZ.
func LinearToXYZ(l Vec3) Vec3 {
	return rgbToXYZ.Transform(l)
}

// XYZToLinear converts XYZ to linear sRGB. The result is not clamped.
func XYZToLinear(v Vec3) Vec3 {
	return xyzToRGB.Transform(v)
}

// X returns the X tristimulus value.
func (c XYZ) X() float64 { return c.v.X }

// Y returns the luminance.
func (c XYZ) Y() float64 { return c.v.Y }

// Z returns the Z tristimulus value.
func (c XYZ) Z() float64 { return c.v.Z }

// Vec returns the components as a vector.
func (c XYZ) Vec() Vec3 { return c.v }

// RGB returns the canonical byte triple.
func (c XYZ) RGB() RGB { return c.rgb }

// Alpha returns the alpha in [0, 1].
func (c XYZ) Alpha() float32 { return c.alpha }

// RGBA implements image/color.Color.
func (c XYZ) RGBA() (r, g, b, a uint32) {
	return nrgba64(c.rgb, c.alpha).RGBA()
}

// XYY converts directly to xyY without going through RGB, so no precision
// is lost to byte rounding.
func (c XYZ) XYY() XYY {
	x, y, lum := XYZToXYY(c.v)
	return XYY{x: x, y: y, lum: lum, alpha: c.alpha, rgb: c.rgb}
}

// String implements fmt.Stringer.
func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%.4f, %.4f, %.4f)", c.v.X, c.v.Y, c.v.Z)
}

func (XYZ) fromRGB(rgb RGB, alpha float32) XYZ {
	return XYZ{v: RGBToXYZ(rgb), alpha: alpha, rgb: rgb}
}
