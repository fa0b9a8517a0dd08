package cvd

import (
	"context"
	"fmt"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/internal/parallel"
)

// batchChunk is the number of colors one worker handles per task.
const batchChunk = 1024

// SimulateAll simulates every color in colors for d in parallel, keeping
// each color's alpha. Repeated colors are computed once. It honors
// WithMethod, WithWorkers and WithCacheCapacity. A nil color returns
// tint.ErrInvalidArgument before any work starts.
func SimulateAll(ctx context.Context, colors []tint.Color, d Deficiency, opts ...Option) ([]tint.RGBA, error) {
	sim, err := NewSimulator(d, opts...)
	if err != nil {
		return nil, err
	}
	for i, c := range colors {
		if c == nil {
			return nil, fmt.Errorf("%w: nil color at index %d", tint.ErrInvalidArgument, i)
		}
	}
	o := buildOptions(opts)

	out := make([]tint.RGBA, len(colors))
	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	err = pool.Range(ctx, len(colors), batchChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = sim.Simulate(colors[i])
		}
	})
	if err != nil {
		return nil, err
	}

	tint.Logger().Debug("cvd: batch simulated",
		"deficiency", d.String(),
		"colors", len(colors),
		"cache", sim.Stats())
	return out, nil
}
