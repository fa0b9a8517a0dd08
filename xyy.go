package tint

import "fmt"

// XYY is a color in CIE xyY: chromaticity x, y and luminance Y.
type XYY struct {
	x, y, lum float64
	alpha     float32
	rgb       RGB
}

// NewXYY creates an xyY color. Alpha must be in [0, 1], otherwise
// ErrInvalidArgument is returned. See XYYToXYZ for chromaticity y = 0.
func NewXYY(x, y, lum float64, alpha float32) (XYY, error) {
	if err := checkAlpha(alpha); err != nil {
		return XYY{}, err
	}
	return XYY{x: x, y: y, lum: lum, alpha: alpha, rgb: XYZToRGB(XYYToXYZ(x, y, lum))}, nil
}

// XYZToXYY returns the chromaticity and luminance of v. When
// X+Y+Z is zero the chromaticity is (0, 0).
func XYZToXYY(v Vec3) (x, y, lum float64) {
	n := v.X + v.Y + v.Z
	if n == 0 {
		return 0, 0, v.Y
	}
	return v.X / n, v.Y / n, v.Y
}

// XYYToXYZ is the inverse of XYZToXYY.
//
// Chromaticity y = 0 carries no luminance information; the result is then
// the neutral gray of luminance lum, which is black for lum = 0.
func XYYToXYZ(x, y, lum float64) Vec3 {
	if y == 0 {
		return whiteXYZ.Mul(lum)
	}
	return Vec3{
		X: x * lum / y,
		Y: lum,
		Z: (1 - x - y) * lum / y,
	}
}

// X returns the x chromaticity coordinate.
func (c XYY) X() float64 { return c.x }

// Y returns the y chromaticity coordinate.
func (c XYY) Y() float64 { return c.y }

// Lum returns the luminance Y.
func (c XYY) Lum() float64 { return c.lum }

// RGB returns the canonical byte triple.
func (c XYY) RGB() RGB { return c.rgb }

// Alpha returns the alpha in [0, 1].
func (c XYY) Alpha() float32 { return c.alpha }

// RGBA implements image/color.Color.
func (c XYY) RGBA() (r, g, b, a uint32) {
	return nrgba64(c.rgb, c.alpha).RGBA()
}

// XYZ converts directly to XYZ without going through RGB.
func (c XYY) XYZ() XYZ {
	return XYZ{v: XYYToXYZ(c.x, c.y, c.lum), alpha: c.alpha, rgb: c.rgb}
}

// String implements fmt.Stringer.
func (c XYY) String() string {
	return fmt.Sprintf("xyY(%.4f, %.4f, %.4f)", c.x, c.y, c.lum)
}

func (XYY) fromRGB(rgb RGB, alpha float32) XYY {
	x, y, lum := XYZToXYY(RGBToXYZ(rgb))
	return XYY{x: x, y: y, lum: lum, alpha: alpha, rgb: rgb}
}
