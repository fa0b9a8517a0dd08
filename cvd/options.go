package cvd

import (
	"fmt"
	"strings"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/cache"
)

// Method selects the simulation algorithm.
type Method uint8

const (
	// MethodShift is the confusion-line method in CIE xyY (Simulate).
	MethodShift Method = iota
	// MethodLMS is the Viénot LMS projection (SimulateVienot).
	MethodLMS
)

var methodNames = [...]string{
	MethodShift: "shift",
	MethodLMS:   "lms",
}

// String returns "shift" or "lms".
func (m Method) String() string {
	if int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
	return methodNames[m]
}

// ParseMethod returns the method named by String. Matching ignores case.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if strings.EqualFold(name, n) {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", tint.ErrInvalidArgument, name)
}

// Option configures a Simulator, a ColorMap or a batch call.
//
// Example:
//
//	// Viénot simulation on four workers
//	m, err := cvd.NewColorMap(ctx, cvd.Deuteranopia,
//		cvd.WithMethod(cvd.MethodLMS), cvd.WithWorkers(4))
type Option func(*options)

// options holds the configuration shared by the batch entry points.
type options struct {
	method        Method
	workers       int
	cacheCapacity int
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		method:        MethodShift,
		workers:       0, // GOMAXPROCS
		cacheCapacity: cache.Unbounded,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMethod selects the simulation algorithm. The default is MethodShift.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithWorkers sets the number of goroutines used by parallel work.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCacheCapacity bounds a Simulator's memo to roughly n entries,
// evicting the least recently used colors. Zero or negative keeps every
// color, which guarantees each distinct color is simulated once.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.cacheCapacity = cache.Unbounded
			return
		}
		// The cache bounds each shard.
		o.cacheCapacity = max(1, (n+cache.ShardCount-1)/cache.ShardCount)
	}
}

// simFunc simulates one color, ignoring alpha.
type simFunc func(tint.RGB) tint.RGB

// simulator returns the per-color function for d under m.
func simulator(d Deficiency, m Method) (simFunc, error) {
	if err := checkDeficiency(d); err != nil {
		return nil, err
	}
	weak := d.IsWeak()

	switch m {
	case MethodShift:
		if d.IsMonochromacy() {
			return func(c tint.RGB) tint.RGB { return monochromacyRGB(c, weak) }, nil
		}
		s, err := ShiftFor(d)
		if err != nil {
			return nil, err
		}
		return func(c tint.RGB) tint.RGB { return shiftRGB(c, s, weak) }, nil

	case MethodLMS:
		sim, err := ConfusionMatrix(d)
		if err != nil {
			return nil, err
		}
		amount := 1.0
		if weak {
			amount = anomalyWeight / (anomalyWeight + 1)
		}
		return func(c tint.RGB) tint.RGB { return lmsRGB(c, sim, amount) }, nil
	}
	return nil, fmt.Errorf("%w: unknown method %v", tint.ErrInvalidArgument, m)
}
