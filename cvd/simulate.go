package cvd

import (
	"math"

	"github.com/gogpu/tint"
)

const (
	// anomalyWeight is how strongly a weak variant leans toward the
	// complete deficiency: (anomalyWeight*simulated + original) / (anomalyWeight+1).
	anomalyWeight = 1.75

	// displayGamma encodes the simulated linear color.
	displayGamma = 2.2
)

// Monochromacy luminance weights, applied to the encoded channels.
const (
	monoR = 0.212656
	monoG = 0.715158
	monoB = 0.072186
)

// Chromaticity of the D65 white point.
const (
	whiteX = 0.312713
	whiteY = 0.329016
	whiteZ = 0.358271
)

// Simulate returns c as seen with deficiency d, using the confusion-line
// method for the color axes and a luminance gray for monochromacy.
// The alpha of c is kept.
func Simulate(c tint.Color, d Deficiency) (tint.RGBA, error) {
	fn, err := simulator(d, MethodShift)
	if err != nil {
		return tint.RGBA{}, err
	}
	return fn(c.RGB()).WithAlpha(c.Alpha()), nil
}

// SimulateShift projects c onto the confusion line of s. With weak set the
// result is blended back toward c as for an anomalous trichromat.
func SimulateShift(c tint.Color, s Shift, weak bool) tint.RGBA {
	return shiftRGB(c.RGB(), s, weak).WithAlpha(c.Alpha())
}

// SimulateMonochromacy collapses c to a gray of equal perceived
// luminance. With weak set the gray is blended back toward c.
func SimulateMonochromacy(c tint.Color, weak bool) tint.RGBA {
	return monochromacyRGB(c.RGB(), weak).WithAlpha(c.Alpha())
}

func shiftRGB(c tint.RGB, s Shift, weak bool) tint.RGB {
	xyz := tint.RGBToXYZ(c)
	sum := xyz.X + xyz.Y + xyz.Z
	if sum == 0 {
		// Only black has no chromaticity; it is its own simulation.
		return c
	}
	x, y, lum := xyz.X/sum, xyz.Y/sum, xyz.Y

	// Line through the color and the copunctal point.
	slope := (y - s.Y) / (x - s.X)
	yi := y - x*slope

	// Its intersection with the axis line is the simulated chromaticity.
	dx := (s.YI - yi) / (slope - s.M)
	dy := slope*dx + yi
	sim := tint.V3(dx*lum/dy, lum, (1-(dx+dy))*lum/dy)

	// Neutral gray of the same luminance.
	gray := tint.V3(whiteX*lum/whiteY, lum, whiteZ*lum/whiteY)

	lin := tint.XYZToLinear(sim)
	toGray := tint.XYZToLinear(tint.V3(gray.X-sim.X, 0, gray.Z-sim.Z))

	// Move toward gray just far enough to bring every channel into gamut.
	adjust := 0.0
	for _, ch := range [3][2]float64{{lin.X, toGray.X}, {lin.Y, toGray.Y}, {lin.Z, toGray.Z}} {
		v, d := ch[0], ch[1]
		if d == 0 {
			continue
		}
		bound := 1.0
		if v < 0 {
			bound = 0
		}
		if a := (bound - v) / d; a >= 0 && a <= 1 && a > adjust {
			adjust = a
		}
	}
	lin = lin.Add(toGray.Mul(adjust))

	out := tint.V3(encode(lin.X), encode(lin.Y), encode(lin.Z))
	if weak {
		out = blend(out, c)
	}
	return tint.Round(out.X, out.Y, out.Z)
}

// encode applies the display gamma to a linear channel and scales it to
// [0, 255]. NaN encodes as 0.
func encode(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return 255 * math.Pow(v, 1/displayGamma)
}

// blend moves sim back toward the original color per channel.
func blend(sim tint.Vec3, orig tint.RGB) tint.Vec3 {
	const n = anomalyWeight + 1
	return tint.V3(
		(anomalyWeight*sim.X+float64(orig.R))/n,
		(anomalyWeight*sim.Y+float64(orig.G))/n,
		(anomalyWeight*sim.Z+float64(orig.B))/n,
	)
}

func monochromacyRGB(c tint.RGB, weak bool) tint.RGB {
	z := monoR*float64(c.R) + monoG*float64(c.G) + monoB*float64(c.B)
	gray := tint.Round(z, z, z)
	if !weak {
		return gray
	}
	g := float64(gray.R)
	out := blend(tint.V3(g, g, g), c)
	return tint.Round(out.X, out.Y, out.Z)
}
