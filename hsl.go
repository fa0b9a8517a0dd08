package tint

import (
	"fmt"
	"math"
)

// goldenRatio spaces the hues produced by HSL.Range.
const goldenRatio = 0.618033988749895

// HSL is a color in the hue, saturation, lightness model.
//
// Hue is in degrees [0, 360); saturation and lightness are percentages
// [0, 100]. The zero value is transparent black.
type HSL struct {
	h, s, l float64
	alpha   float32
	rgb     RGB
}

// NewHSL creates an HSL color. Any finite hue is wrapped into [0, 360).
// Saturation and lightness must be in [0, 100] and alpha in [0, 1];
// otherwise ErrInvalidArgument is returned.
func NewHSL(hue, saturation, lightness float64, alpha float32) (HSL, error) {
	if !isFinite(hue) {
		return HSL{}, fmt.Errorf("%w: hue %v", ErrInvalidArgument, hue)
	}
	if !(saturation >= 0 && saturation <= 100) {
		return HSL{}, fmt.Errorf("%w: saturation %v outside [0, 100]", ErrInvalidArgument, saturation)
	}
	if !(lightness >= 0 && lightness <= 100) {
		return HSL{}, fmt.Errorf("%w: lightness %v outside [0, 100]", ErrInvalidArgument, lightness)
	}
	if err := checkAlpha(alpha); err != nil {
		return HSL{}, err
	}
	return newHSL(wrapHue(hue), saturation, lightness, alpha), nil
}

func newHSL(h, s, l float64, alpha float32) HSL {
	return HSL{h: h, s: s, l: l, alpha: alpha, rgb: hslToRGB(h, s, l)}
}

// Hue returns the hue in degrees, in [0, 360).
func (c HSL) Hue() float64 { return c.h }

// Saturation returns the saturation in percent.
func (c HSL) Saturation() float64 { return c.s }

// Lightness returns the lightness in percent.
func (c HSL) Lightness() float64 { return c.l }

// RGB returns the canonical byte triple.
func (c HSL) RGB() RGB { return c.rgb }

// Alpha returns the alpha in [0, 1].
func (c HSL) Alpha() float32 { return c.alpha }

// RGBA implements image/color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return nrgba64(c.rgb, c.alpha).RGBA()
}

// String implements fmt.Stringer.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.2f, %.2f%%, %.2f%%)", c.h, c.s, c.l)
}

func (HSL) fromRGB(rgb RGB, alpha float32) HSL {
	h, s, l := rgbToHSL(rgb)
	return HSL{h: h, s: s, l: l, alpha: alpha, rgb: rgb}
}

// Lerp interpolates between c and end. Hue travels the shorter way round
// the color wheel; saturation, lightness and alpha interpolate linearly.
// t must be in [0, 1], otherwise ErrInvalidArgument is returned.
func (c HSL) Lerp(end HSL, t float64) (HSL, error) {
	if !(t >= 0 && t <= 1) {
		return HSL{}, fmt.Errorf("%w: interpolation value %v outside [0, 1]", ErrInvalidArgument, t)
	}
	h1, h2 := c.h, end.h
	switch d := h2 - h1; {
	case d > 180:
		h1 += 360
	case d < -180:
		h2 += 360
	}
	h := wrapHue(lerp(h1, h2, t))
	s := lerp(c.s, end.s, t)
	l := lerp(c.l, end.l, t)
	a := float32(lerp(float64(c.alpha), float64(end.alpha), t))
	return newHSL(h, s, l, a), nil
}

// Range returns count colors that share c's saturation, lightness and
// alpha, starting at c's hue and stepping by the golden ratio of a turn so
// that consecutive colors stay far apart. A count <= 0 returns nil.
func (c HSL) Range(count int) []HSL {
	if count <= 0 {
		return nil
	}
	out := make([]HSL, count)
	h := c.h
	for i := range out {
		out[i] = newHSL(h, c.s, c.l, c.alpha)
		h = math.Mod(h+360*goldenRatio, 360)
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// wrapHue maps a finite hue into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -tiny + 360 rounds up to 360
		h = 0
	}
	return h
}

// rgbToHSL returns hue in degrees and saturation and lightness in percent.
func rgbToHSL(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(math.Max(r, g), b)
	minC := math.Min(math.Min(r, g), b)
	d := maxC - minC
	l = (maxC + minC) / 2

	if math.Abs(d) > 1e-5 {
		if l < 0.5 {
			s = d / (maxC + minC)
		} else {
			s = d / (2 - maxC - minC)
		}
		switch maxC {
		case r:
			h = 60 * ((g - b) / d)
		case g:
			h = 60 * (2 + (b-r)/d)
		default:
			h = 60 * (4 + (r-g)/d)
		}
	}
	return wrapHue(h), s * 100, l * 100
}

// hslToRGB inverts rgbToHSL using the two-segment interpolation between
// t1 and t2, sampled a third of a turn apart for each channel.
func hslToRGB(h, s, l float64) RGB {
	s /= 100
	l /= 100
	if s < 1e-5 {
		v := roundByte(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var t2 float64
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = (l + s) - l*s
	}
	t1 := 2*l - t2
	th := h / 360

	return RGB{
		R: roundByte(hueChannel(th+1.0/3, t1, t2) * 255),
		G: roundByte(hueChannel(th, t1, t2) * 255),
		B: roundByte(hueChannel(th-1.0/3, t1, t2) * 255),
	}
}

// hueChannel evaluates the piecewise channel ramp at position c of a turn.
func hueChannel(c, t1, t2 float64) float64 {
	if c < 0 {
		c++
	}
	if c > 1 {
		c--
	}
	switch {
	case 6*c < 1:
		return t1 + (t2-t1)*6*c
	case 2*c < 1:
		return t2
	case 3*c < 2:
		return t1 + (t2-t1)*(2.0/3-c)*6
	}
	return t1
}
