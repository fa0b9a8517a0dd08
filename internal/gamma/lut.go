package gamma

import (
	"sync"

	"github.com/chewxy/math32"
)

// Buckets is the number of quantized linear intensities in the
// linear → sRGB table.
const Buckets = 1024

// tables holds both lookup tables. They are built together, exactly once,
// and never written afterwards.
type tables struct {
	// toLinear maps an sRGB byte [0-255] to linear float32 [0.0-1.0].
	toLinear [256]float32

	// toSRGB maps a bucket of linear intensity to an sRGB byte.
	// Bucket i covers the intensity i/(Buckets-1).
	toSRGB [Buckets]uint8
}

// luts returns the process-wide tables, building them on first use.
// sync.OnceValue guarantees no reader observes a partially built table.
var luts = sync.OnceValue(buildTables)

func buildTables() *tables {
	t := new(tables)
	for i := range t.toLinear {
		t.toLinear[i] = remove32(float32(i) / 255)
	}
	for i := range t.toSRGB {
		s := apply32(float32(i) / (Buckets - 1))
		t.toSRGB[i] = clampByte(math32.Round(s * 255))
	}
	return t
}

// ToLinear converts an sRGB byte to linear float32 using the lookup table.
//
// Example:
//
//	l := ToLinear(128) // ~0.2159 (not 0.5!)
func ToLinear(s uint8) float32 {
	return luts().toLinear[s]
}

// FromLinear converts a linear intensity to an sRGB byte using the
// 1024-bucket lookup table.
//
// Input is clamped to [0.0, 1.0]; NaN maps to 0.
//
// Example:
//
//	s := FromLinear(0.5) // 188 (not 128!)
func FromLinear(l float32) uint8 {
	if !(l > 0) {
		return luts().toSRGB[0]
	}
	if l > 1 {
		l = 1
	}
	return luts().toSRGB[bucket(l)]
}

// bucket maps an intensity in (0, 1] to its table index.
func bucket(l float32) int {
	i := int(float64(l*(Buckets-1)) + 0.5)
	if i > Buckets-1 {
		i = Buckets - 1
	}
	return i
}

// ToLinearExact is the reference for ToLinear, computed with math.Pow.
// Used for testing and verification only.
func ToLinearExact(s uint8) float32 {
	return float32(Remove(float64(s) / 255))
}

// FromLinearExact is the unquantized reference for FromLinear.
// Used for testing and verification only.
func FromLinearExact(l float32) uint8 {
	lf := float64(l)
	if !(lf > 0) {
		lf = 0
	}
	if lf > 1 {
		lf = 1
	}
	return clampByte(float32(Apply(lf)*255 + 0.5))
}

func clampByte(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
