package cvd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/tint"
)

func TestColorMap(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a full 24-bit table")
	}

	m, err := NewColorMap(context.Background(), Deuteranopia)
	require.NoError(t, err)
	assert.Equal(t, Deuteranopia, m.Deficiency())
	assert.Equal(t, MethodShift, m.Method())

	assert.Equal(t, rgb(160, 121, 47), m.Lookup(rgb(200, 100, 50)))
	assert.Equal(t, rgb(222, 190, 182), m.Lookup(rgb(66, 222, 173)))

	for n := uint32(0); n < ColorSpaceSize; n += 65521 {
		c := unpack(n)
		require.Equal(t, shiftRGB(c, Deutan, false), m.Lookup(c), "color %v", c)
	}

	c, err := tint.NewRGBA(200, 100, 50, 0.3)
	require.NoError(t, err)
	got := m.Simulate(c)
	assert.Equal(t, rgb(160, 121, 47), got.RGB())
	assert.Equal(t, float32(0.3), got.Alpha())

	assert.Equal(t, uint32(0x80A0792F), m.ARGB(0x80C86432))
}

func TestColorMapLMS(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a full 24-bit table")
	}

	m, err := NewColorMap(context.Background(), Achromatopsia, WithMethod(MethodLMS), WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, rgb(198, 198, 198), m.Lookup(rgb(66, 222, 173)))
}

func TestColorMapCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := NewColorMap(ctx, Protanopia)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, m)
}

func TestColorMapUnsupported(t *testing.T) {
	_, err := NewColorMap(context.Background(), 0)
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestPack(t *testing.T) {
	c := rgb(0x12, 0x34, 0x56)
	assert.Equal(t, uint32(0x123456), pack(c))
	assert.Equal(t, c, unpack(pack(c)))
	assert.Equal(t, c, unpack(0xFF123456), "high byte ignored")
}
