package cvd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/tint"
)

func TestSimulatorMemoizes(t *testing.T) {
	s, err := NewSimulator(Deuteranopia)
	require.NoError(t, err)
	assert.Equal(t, Deuteranopia, s.Deficiency())
	assert.Equal(t, MethodShift, s.Method())

	c, err := tint.NewRGBA(200, 100, 50, 0.75)
	require.NoError(t, err)

	first := s.Simulate(c)
	second := s.Simulate(c)
	assert.Equal(t, first, second)
	assert.Equal(t, rgb(160, 121, 47), first.RGB())
	assert.Equal(t, float32(0.75), first.Alpha())

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, 1, st.Len)

	s.Reset()
	st = s.Stats()
	assert.Zero(t, st.Len)
	assert.Zero(t, st.Hits+st.Misses)
}

func TestSimulatorMethodLMS(t *testing.T) {
	s, err := NewSimulator(Protanomaly, WithMethod(MethodLMS))
	require.NoError(t, err)

	want, err := SimulateVienot(tint.Opaque(66, 222, 173), Protanomaly)
	require.NoError(t, err)
	assert.Equal(t, want, s.Simulate(tint.Opaque(66, 222, 173)))
}

func TestSimulatorBounded(t *testing.T) {
	s, err := NewSimulator(Tritanopia, WithCacheCapacity(64))
	require.NoError(t, err)

	for n := uint32(0); n < 5000; n++ {
		c := unpack(n * 3371)
		want := shiftRGB(c, Tritan, false)
		require.Equal(t, want, s.SimulateRGB(c), "color %v", c)
	}
	st := s.Stats()
	assert.LessOrEqual(t, st.Len, st.TotalCapacity)
	assert.Positive(t, st.Evictions)
}

func TestNewSimulatorErrors(t *testing.T) {
	_, err := NewSimulator(0)
	assert.ErrorIs(t, err, ErrUnsupportedCategory)

	_, err = NewSimulator(Protanopia, WithMethod(Method(7)))
	assert.ErrorIs(t, err, tint.ErrInvalidArgument)
}

func TestSimulateAll(t *testing.T) {
	palette := []tint.RGB{rgb(66, 222, 173), rgb(200, 100, 50), rgb(0, 0, 0), rgb(12, 34, 56)}
	colors := make([]tint.Color, 3000)
	for i := range colors {
		colors[i] = palette[i%len(palette)].WithAlpha(float32(i%5) / 4)
	}

	for _, m := range []Method{MethodShift, MethodLMS} {
		got, err := SimulateAll(context.Background(), colors, Achromatomaly, WithMethod(m), WithWorkers(3))
		require.NoError(t, err)
		require.Len(t, got, len(colors))

		fn, err := simulator(Achromatomaly, m)
		require.NoError(t, err)
		for i, c := range colors {
			want := fn(c.RGB()).WithAlpha(c.Alpha())
			if got[i] != want {
				t.Fatalf("%v: color %d = %v, want %v", m, i, got[i], want)
			}
		}
	}
}

func TestSimulateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	colors := []tint.Color{tint.Opaque(1, 2, 3)}
	_, err := SimulateAll(ctx, colors, Protanopia)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

	_, err = SimulateAll(context.Background(), colors, Deficiency(99))
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestSimulateAllNilColor(t *testing.T) {
	colors := make([]tint.Color, 2000)
	for i := range colors {
		colors[i] = tint.Opaque(uint8(i), 2, 3)
	}
	colors[1500] = nil

	got, err := SimulateAll(context.Background(), colors, Deuteranopia, WithWorkers(2))
	require.ErrorIs(t, err, tint.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "index 1500")
	assert.Nil(t, got)
}

func TestSimulateAllLogsStats(t *testing.T) {
	var buf bytes.Buffer
	tint.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer tint.SetLogger(nil)

	colors := []tint.Color{tint.Opaque(1, 2, 3), tint.Opaque(1, 2, 3)}
	_, err := SimulateAll(context.Background(), colors, Tritanopia, WithWorkers(1))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="cvd: batch simulated"`)
	assert.Contains(t, out, "deficiency=tritanopia")
	assert.Contains(t, out, "cache.misses=1")
	assert.Contains(t, out, "cache.hits=1")
}
