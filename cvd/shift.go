package cvd

import "fmt"

// Shift describes a deficiency axis for the confusion-line simulation.
//
// X and Y are the chromaticity of the copunctal point that every confusion
// line of the axis passes through. M and YI are the slope and y-intercept
// of the line the simulated chromaticities are projected onto.
type Shift struct {
	X, Y  float64
	M, YI float64
}

var (
	// Protan is the red axis.
	Protan = Shift{X: 0.7465, Y: 0.2535, M: 1.273463, YI: -0.073894}
	// Deutan is the green axis.
	Deutan = Shift{X: 1.4, Y: -0.4, M: 0.968437, YI: 0.003331}
	// Tritan is the blue axis.
	Tritan = Shift{X: 0.1748, Y: 0, M: 0.062921, YI: 0.292119}
	// Custom is an extra axis no Deficiency maps to. It is available for
	// direct use with SimulateShift.
	Custom = Shift{X: 0.735, Y: 0.265, M: -1.059259, YI: 1.026914}
)

// ShiftFor returns the axis of a dichromacy or anomalous trichromacy.
// Monochromacy has no axis and returns ErrUnsupportedCategory.
func ShiftFor(d Deficiency) (Shift, error) {
	switch d {
	case Protanomaly, Protanopia:
		return Protan, nil
	case Deuteranomaly, Deuteranopia:
		return Deutan, nil
	case Tritanomaly, Tritanopia:
		return Tritan, nil
	}
	return Shift{}, fmt.Errorf("%w: no confusion line for %v", ErrUnsupportedCategory, d)
}
