package cvd

import (
	"context"
	"time"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/internal/parallel"
)

// ColorSpaceSize is the number of distinct 24-bit colors.
const ColorSpaceSize = 1 << 24

// mapChunk is the number of colors one worker computes per task.
const mapChunk = 1 << 16

// ColorMap holds the simulation of every 24-bit color for one deficiency.
// Building it costs about 48 MiB and a few seconds of CPU; afterwards a
// lookup is a single index. Use it when most of the gamut will be looked
// up, and a Simulator for sparse colors.
//
// ColorMap is immutable after NewColorMap returns and safe for concurrent
// use.
type ColorMap struct {
	deficiency Deficiency
	method     Method
	table      []tint.RGB
}

// NewColorMap simulates every 24-bit color for d in parallel. It honors
// WithMethod and WithWorkers. If ctx is cancelled before the table is
// complete, NewColorMap returns ctx.Err() and no map.
func NewColorMap(ctx context.Context, d Deficiency, opts ...Option) (*ColorMap, error) {
	o := buildOptions(opts)
	fn, err := simulator(d, o.method)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	table := make([]tint.RGB, ColorSpaceSize)

	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	err = pool.Range(ctx, ColorSpaceSize, mapChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			table[i] = fn(unpack(uint32(i)))
		}
	})
	if err != nil {
		return nil, err
	}

	tint.Logger().Debug("cvd: color map built",
		"deficiency", d.String(),
		"method", o.method.String(),
		"workers", pool.Workers(),
		"elapsed", time.Since(start))

	return &ColorMap{deficiency: d, method: o.method, table: table}, nil
}

// Deficiency returns the simulated deficiency.
func (m *ColorMap) Deficiency() Deficiency { return m.deficiency }

// Method returns the simulation algorithm used to build the map.
func (m *ColorMap) Method() Method { return m.method }

// Lookup returns the simulation of c.
func (m *ColorMap) Lookup(c tint.RGB) tint.RGB {
	return m.table[pack(c)]
}

// Simulate returns c as seen with the map's deficiency, keeping its alpha.
func (m *ColorMap) Simulate(c tint.Color) tint.RGBA {
	return m.Lookup(c.RGB()).WithAlpha(c.Alpha())
}

// ARGB maps a packed 0xAARRGGBB color, keeping its alpha byte.
func (m *ColorMap) ARGB(argb uint32) uint32 {
	out := m.table[argb&0xFFFFFF]
	return argb&0xFF000000 | pack(out)
}
