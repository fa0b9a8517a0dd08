// Package cvd simulates color vision deficiencies and daltonizes colors.
//
// Two simulation methods are available. Simulate uses confusion lines in
// CIE xyY: the chromaticity of a color is moved along the line through
// the deficiency's copunctal point until it meets the axis line, luminance
// is kept, and the result is pulled toward neutral gray until it fits the
// sRGB gamut. SimulateVienot projects in LMS cone space with the matrices
// of Viénot, Brettel and Mollon (1999).
//
// Weak (anomalous) deficiencies are approximated by blending the complete
// simulation back toward the original color, 1.75 parts simulated to one
// part original.
//
// # Quick Start
//
//	c := tint.Opaque(200, 100, 50)
//	seen, _ := cvd.Simulate(c, cvd.Deuteranopia) // #A0792F
//
// # Many colors
//
// A Simulator memoizes results per color. A ColorMap precomputes all
// 16,777,216 colors for one deficiency. SimulateAll spreads a slice of
// colors over goroutines.
//
//	m, err := cvd.NewColorMap(ctx, cvd.Protanopia)
//	out := m.Lookup(tint.RGB{R: 66, G: 222, B: 173})
//
// # Daltonization
//
// Daltonize does not simulate. It recolors so that the affected viewer
// sees more contrast:
//
//	fixed, err := cvd.Daltonize(c, cvd.Deuteranopia, 1)
package cvd
