package cvd

import (
	"fmt"

	"github.com/gogpu/tint"
)

// Confusion matrices in LMS after Viénot, Brettel and Mollon (1999). Each
// one rebuilds the missing cone response from the other two.
var (
	protanLMS = tint.M3(
		0, 0.90822864, 0.008192,
		0, 1, 0,
		0, 0, 1,
	)
	deutanLMS = tint.M3(
		1, 0, 0,
		1.10104433, 0, -0.00901975,
		0, 0, 1,
	)
	tritanLMS = tint.M3(
		1, 0, 0,
		0, 1, 0,
		-0.15773032, 1.19465634, 0,
	)
	achromatLMS = newAchromatLMS()
)

// daltonSpread moves the error lost on the affected axis into the channels
// the viewer can still tell apart.
var daltonSpread = tint.M3(
	0, 0, 0,
	0.7, 1, 0,
	0.7, 0, 1,
)

// newAchromatLMS builds the matrix that sends every LMS response to the
// luminance of the color it encodes, so all three cones agree.
func newAchromatLMS() tint.Matrix3 {
	w := tint.V3(monoR, monoG, monoB)
	row := tint.V3(
		w.Dot(tint.LMSToLinear(tint.V3(1, 0, 0))),
		w.Dot(tint.LMSToLinear(tint.V3(0, 1, 0))),
		w.Dot(tint.LMSToLinear(tint.V3(0, 0, 1))),
	)
	return tint.NewMatrix3(row, row, row)
}

// ConfusionMatrix returns the LMS projection for d. Weak and complete
// variants share a matrix; they differ in the amount passed to SimulateLMS.
func ConfusionMatrix(d Deficiency) (tint.Matrix3, error) {
	switch d {
	case Protanomaly, Protanopia:
		return protanLMS, nil
	case Deuteranomaly, Deuteranopia:
		return deutanLMS, nil
	case Tritanomaly, Tritanopia:
		return tritanLMS, nil
	case Achromatomaly, Achromatopsia:
		return achromatLMS, nil
	}
	return tint.Matrix3{}, fmt.Errorf("%w: no confusion matrix for %v", ErrUnsupportedCategory, d)
}

// SimulateLMS projects c through the confusion matrix of d in LMS space.
// amount in [0, 1] mixes the result with c: 0 returns c, 1 the full
// projection.
func SimulateLMS(c tint.Color, d Deficiency, amount float64) (tint.RGBA, error) {
	sim, err := ConfusionMatrix(d)
	if err != nil {
		return tint.RGBA{}, err
	}
	if err := checkAmount(amount); err != nil {
		return tint.RGBA{}, err
	}
	return lmsRGB(c.RGB(), sim, amount).WithAlpha(c.Alpha()), nil
}

// SimulateVienot is SimulateLMS with the amount implied by d: the full
// projection for complete deficiencies, the anomalous blend for weak ones.
func SimulateVienot(c tint.Color, d Deficiency) (tint.RGBA, error) {
	fn, err := simulator(d, MethodLMS)
	if err != nil {
		return tint.RGBA{}, err
	}
	return fn(c.RGB()).WithAlpha(c.Alpha()), nil
}

// Daltonize shifts c so that a viewer with deficiency d can tell it apart
// from its neighbors. The error between c and its simulation is spread
// into the remaining channels and added back. amount in [0, 1] mixes the
// result with c.
func Daltonize(c tint.Color, d Deficiency, amount float64) (tint.RGBA, error) {
	sim, err := ConfusionMatrix(d)
	if err != nil {
		return tint.RGBA{}, err
	}
	if err := checkAmount(amount); err != nil {
		return tint.RGBA{}, err
	}
	return daltonizeRGB(c.RGB(), sim, amount).WithAlpha(c.Alpha()), nil
}

func lmsRGB(c tint.RGB, sim tint.Matrix3, amount float64) tint.RGB {
	out := tint.LinearToRGB(projectLinear(sim, c.Linear()))
	return mix(c, out, amount)
}

func daltonizeRGB(c tint.RGB, sim tint.Matrix3, amount float64) tint.RGB {
	lin := c.Linear()
	seen := projectLinear(sim, lin)
	corrected := lin.Add(daltonSpread.Transform(lin.Sub(seen)))
	return mix(c, tint.LinearToRGB(corrected), amount)
}

// projectLinear returns the linear color seen through sim. The achromat
// rows all hold the luminance, which is copied to every channel so the
// result stays gray; LMSToLinear rows do not sum to exactly 1.
func projectLinear(sim tint.Matrix3, lin tint.Vec3) tint.Vec3 {
	lms := sim.Transform(tint.LinearToLMS(lin))
	if sim == achromatLMS {
		return tint.V3(lms.X, lms.X, lms.X)
	}
	return tint.LMSToLinear(lms)
}

// mix returns orig*(1-amount) + out*amount per channel.
func mix(orig, out tint.RGB, amount float64) tint.RGB {
	keep := 1 - amount
	return tint.Round(
		float64(orig.R)*keep+float64(out.R)*amount,
		float64(orig.G)*keep+float64(out.G)*amount,
		float64(orig.B)*keep+float64(out.B)*amount,
	)
}

func checkAmount(amount float64) error {
	if !(amount >= 0 && amount <= 1) {
		return fmt.Errorf("%w: amount %v outside [0, 1]", tint.ErrInvalidArgument, amount)
	}
	return nil
}
