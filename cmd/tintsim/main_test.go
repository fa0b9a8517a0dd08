package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/tint"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunColors(t *testing.T) {
	out, _, err := runCLI(t, "--no-color", "-d", "deuteranopia,green-weak", "#C86432")
	require.NoError(t, err)

	assert.Contains(t, out, "#C86432")
	assert.Contains(t, out, "#A0792F", "deuteranopia")
	assert.Contains(t, out, "#AF7130", "deuteranomaly")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestRunAllDeficiencies(t *testing.T) {
	out, _, err := runCLI(t, "--no-color", "#42DEAD")
	require.NoError(t, err)

	assert.Equal(t, 9, strings.Count(out, "\n"))
	assert.Contains(t, out, "#B9B9B9", "achromatopsia")
	assert.Contains(t, out, "Achromatopsia (Complete Monochromacy)")
}

func TestRunSpaceAndMethod(t *testing.T) {
	out, _, err := runCLI(t, "--no-color", "-m", "lms", "-d", "achromatopsia", "-s", "hsl", "#42DEAD")
	require.NoError(t, err)
	assert.Contains(t, out, "#C6C6C6")
	assert.Contains(t, out, "hsl(0.00, 0.00%, 77.65%)")

	out, _, err = runCLI(t, "--no-color", "--daltonize", "-d", "protanopia", "#42DEAD")
	require.NoError(t, err)
	assert.Contains(t, out, "#42CD89")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no colors", nil},
		{"bad color", []string{"nope-not-a-color"}},
		{"bad deficiency", []string{"-d", "purple-blind", "#fff"}},
		{"bad method", []string{"-m", "brettel", "#fff"}},
		{"bad space", []string{"-s", "cmyk", "#fff"}},
		{"bad amount", []string{"--daltonize", "-a", "3", "#fff"}},
		{"unknown flag", []string{"--frobnicate", "#fff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, append([]string{"--no-color"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestRunHelp(t *testing.T) {
	_, stderr, err := runCLI(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stderr, "--deficiency")
}

func TestRunVerbose(t *testing.T) {
	prev := slog.New(slog.NewTextHandler(io.Discard, nil))
	tint.SetLogger(prev)
	defer tint.SetLogger(nil)

	dir := t.TempDir()
	_, stderr, err := runCLI(t, "--no-color", "-v", "-d", "tritanopia", "-o", filepath.Join(dir, "s.png"), "#123456")
	require.NoError(t, err)
	assert.Contains(t, stderr, "tintsim: wrote swatch")
	assert.Same(t, prev, tint.Logger(), "run must restore the previous logger")

	// A failed swatch write restores it too.
	_, _, err = runCLI(t, "--no-color", "-v", "-o", filepath.Join(dir, "missing", "s.png"), "#123456")
	require.Error(t, err)
	assert.Same(t, prev, tint.Logger())
}

func TestRunSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	_, _, err := runCLI(t, "--no-color", "-d", "deuteranopia", "-o", path, "#C86432", "#42DEAD")
	require.NoError(t, err)

	img := decodePNG(t, path)
	require.Equal(t, image.Pt(2*swatchCell, 2*swatchCell), img.Bounds().Size())

	at := func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, at(1, 1))
	assert.Equal(t, color.NRGBA{R: 160, G: 121, B: 47, A: 255}, at(swatchCell+1, 1))
	assert.Equal(t, color.NRGBA{R: 222, G: 190, B: 182, A: 255}, at(swatchCell+1, swatchCell+1))
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}
