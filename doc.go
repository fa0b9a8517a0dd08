// Package tint represents colors in sRGB, HSL, CIE XYZ, CIE xyY and LMS,
// and converts between them.
//
// # Overview
//
// Every color value in tint is immutable and carries its canonical sRGB
// byte triple (RGB) and its alpha. Conversions route through that triple,
// so any space converts to any other and alpha is never altered.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	c, _ := tint.ParseHex("#115F25")
//	hsl := tint.To[tint.HSL](c)       // hsl(135.38, 69.64%, 21.96%)
//	xyz := tint.To[tint.XYZ](hsl)     // xyz(0.0466, 0.0844, 0.0313)
//	fmt.Println(tint.Hex(xyz))        // #115F25
//
// When the target space is only known at run time, use Convert with a
// Space:
//
//	v, err := tint.Convert(c, tint.SpaceLMS)
//
// # Color spaces
//
//   - RGBA: gamma-encoded sRGB bytes plus alpha
//   - HSL: hue in degrees, saturation and lightness in percent
//   - XYZ: CIE 1931 tristimulus values, D65 white
//   - XYY: CIE chromaticity x, y and luminance Y
//   - LMS: long, medium, short cone responses
//
// XYZ uses the exact sRGB transfer function. LMS uses the lookup tables in
// internal/gamma, which is what the colorblindness simulators in the cvd
// package are tuned for.
//
// # Interop
//
// Every tint color implements image/color.Color, and Model converts any
// color.Color to tint's RGBA.
//
// # Simulation
//
// Package cvd simulates color vision deficiencies and daltonizes colors.
package tint
