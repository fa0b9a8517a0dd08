package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/tint"
)

// swatchCell is the side of one color cell in a swatch PNG.
const swatchCell = 48

// writeSwatch renders one row per color: the original followed by each
// selected deficiency.
func writeSwatch(cfg *config) error {
	cols := 1 + len(cfg.deficiencies)
	small := image.NewNRGBA(image.Rect(0, 0, cols, len(cfg.colors)))

	for y, c := range cfg.colors {
		small.Set(0, y, c)
		for x, d := range cfg.deficiencies {
			res, err := transform(cfg, d)(c)
			if err != nil {
				return err
			}
			small.Set(x+1, y, res)
		}
	}

	big := image.NewNRGBA(image.Rect(0, 0, cols*swatchCell, len(cfg.colors)*swatchCell))
	draw.Draw(big, big.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Over, nil)

	f, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, big); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", cfg.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	tint.Logger().Debug("tintsim: wrote swatch", "path", cfg.out, "size", big.Bounds().Size())
	return nil
}
