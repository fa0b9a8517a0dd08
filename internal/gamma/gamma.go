// Package gamma implements the sRGB transfer functions used by tint.
//
// Two forms are provided. The float64 functions Remove and Apply evaluate
// the piecewise sRGB curves exactly and back the XYZ conversions. The
// table-driven functions ToLinear and FromLinear trade precision for O(1)
// lookups and back the LMS conversions and colorblindness simulation.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - IEC 61966-2-1:1999
package gamma

import (
	"math"

	"github.com/chewxy/math32"
)

// Remove converts a gamma-encoded sRGB component to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// Input and output are nominally in [0,1]; values outside that range are
// not clamped.
func Remove(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Apply converts a linear component to gamma-encoded sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// Negative input stays on the linear segment and yields a negative result.
func Apply(l float64) float64 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// remove32 is the float32 form of Remove used to fill the lookup tables.
func remove32(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// apply32 is the float32 form of Apply used to fill the lookup tables.
func apply32(l float32) float32 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}
