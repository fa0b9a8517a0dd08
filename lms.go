package tint

import (
	"fmt"

	"github.com/gogpu/tint/internal/gamma"
)

var (
	// linearToLMS maps linear sRGB to cone responses (Hunt-Pointer-Estevez
	// primaries, normalized so that white is approximately (1, 1, 1)).
	linearToLMS = M3(
		0.31399022, 0.63951294, 0.04649755,
		0.15537241, 0.75789446, 0.08670142,
		0.01775239, 0.10944209, 0.87256922,
	)

	// lmsToLinear is the published inverse of linearToLMS.
	lmsToLinear = M3(
		5.47221206, -4.6419601, 0.16963708,
		-1.1252419, 2.29317094, -0.1678952,
		0.02980165, -0.19318073, 1.16364789,
	)
)

// LinearToLMS converts linear sRGB to LMS.
func LinearToLMS(l Vec3) Vec3 {
	return linearToLMS.Transform(l)
}

// LMSToLinear converts LMS to linear sRGB. The result is not clamped.
func LMSToLinear(v Vec3) Vec3 {
	return lmsToLinear.Transform(v)
}

// LinearToRGB encodes linear sRGB as bytes through the quantized lookup
// table. Each channel is clamped to [0, 1] first.
func LinearToRGB(l Vec3) RGB {
	return RGB{
		R: gamma.FromLinear(float32(l.X)),
		G: gamma.FromLinear(float32(l.Y)),
		B: gamma.FromLinear(float32(l.Z)),
	}
}

// RGBToLMS converts a byte triple to LMS.
func RGBToLMS(c RGB) Vec3 {
	return linearToLMS.Transform(c.Linear())
}

// LMSToRGB converts LMS to a byte triple.
func LMSToRGB(v Vec3) RGB {
	return LinearToRGB(lmsToLinear.Transform(v))
}

// LMS is a color in the long, medium, short cone response space.
type LMS struct {
	v     Vec3
	alpha float32
	rgb   RGB
}

// NewLMS creates an LMS color. Alpha must be in [0, 1], otherwise
// ErrInvalidArgument is returned.
func NewLMS(l, m, s float64, alpha float32) (LMS, error) {
	if err := checkAlpha(alpha); err != nil {
		return LMS{}, err
	}
	v := V3(l, m, s)
	return LMS{v: v, alpha: alpha, rgb: LMSToRGB(v)}, nil
}

// L returns the long-wavelength cone response.
func (c LMS) L() float64 { return c.v.X }

// M returns the medium-wavelength cone response.
func (c LMS) M() float64 { return c.v.Y }

// S returns the short-wavelength cone response.
func (c LMS) S() float64 { return c.v.Z }

// Vec returns the components as a vector.
func (c LMS) Vec() Vec3 { return c.v }

// RGB returns the canonical byte triple.
func (c LMS) RGB() RGB { return c.rgb }

// Alpha returns the alpha in [0, 1].
func (c LMS) Alpha() float32 { return c.alpha }

// RGBA implements image/color.Color.
func (c LMS) RGBA() (r, g, b, a uint32) {
	return nrgba64(c.rgb, c.alpha).RGBA()
}

// String implements fmt.Stringer.
func (c LMS) String() string {
	return fmt.Sprintf("lms(%.4f, %.4f, %.4f)", c.v.X, c.v.Y, c.v.Z)
}

func (LMS) fromRGB(rgb RGB, alpha float32) LMS {
	return LMS{v: RGBToLMS(rgb), alpha: alpha, rgb: rgb}
}
