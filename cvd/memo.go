package cvd

import (
	"github.com/gogpu/tint"
	"github.com/gogpu/tint/cache"
)

// Simulator simulates one deficiency and remembers every color it has
// seen, so repeated pixel colors are computed once.
//
// Simulator is safe for concurrent use.
type Simulator struct {
	deficiency Deficiency
	method     Method
	fn         simFunc
	memo       *cache.ShardedCache[uint32, tint.RGB]
}

// NewSimulator returns a Simulator for d. It honors WithMethod and
// WithCacheCapacity.
func NewSimulator(d Deficiency, opts ...Option) (*Simulator, error) {
	o := buildOptions(opts)
	fn, err := simulator(d, o.method)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		deficiency: d,
		method:     o.method,
		fn:         fn,
		memo:       cache.NewSharded[uint32, tint.RGB](o.cacheCapacity, cache.Uint32Hasher),
	}, nil
}

// Deficiency returns the simulated deficiency.
func (s *Simulator) Deficiency() Deficiency { return s.deficiency }

// Method returns the simulation algorithm.
func (s *Simulator) Method() Method { return s.method }

// Simulate returns c as seen with the Simulator's deficiency, keeping
// its alpha.
func (s *Simulator) Simulate(c tint.Color) tint.RGBA {
	return s.SimulateRGB(c.RGB()).WithAlpha(c.Alpha())
}

// SimulateRGB is Simulate for a bare byte triple.
func (s *Simulator) SimulateRGB(c tint.RGB) tint.RGB {
	return s.memo.GetOrCreate(pack(c), func() tint.RGB { return s.fn(c) })
}

// Stats reports the memo's hit rate and size.
func (s *Simulator) Stats() cache.Stats {
	return s.memo.Stats()
}

// Reset forgets every remembered color.
func (s *Simulator) Reset() {
	s.memo.Clear()
	s.memo.ResetStats()
}

// pack returns c as 0xRRGGBB.
func pack(c tint.RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// unpack is the inverse of pack.
func unpack(u uint32) tint.RGB {
	return tint.RGB{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u)}
}
