// Command tintsim shows how colors look with color vision deficiencies.
//
// Usage:
//
//	tintsim [flags] COLOR...
//
// Colors are hex codes (#42DEAD, F0A) or CSS names (tomato). Each color is
// printed with its simulation for every selected deficiency. With --out
// the same table is also written as a PNG swatch.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/cvd"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tintsim:", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	deficiencies []cvd.Deficiency
	method       cvd.Method
	daltonize    bool
	amount       float64
	amountSet    bool
	space        tint.Space
	showSpace    bool
	out          string
	noColor      bool
	verbose      bool
	colors       []tint.RGBA
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := pflag.NewFlagSet("tintsim", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tintsim [flags] COLOR...")
		fs.PrintDefaults()
	}

	var (
		deficiency = fs.StringP("deficiency", "d", "all", "deficiency name, description (green-blind) or \"all\"")
		method     = fs.StringP("method", "m", "shift", "simulation method: shift or lms")
		daltonize  = fs.Bool("daltonize", false, "daltonize instead of simulating")
		amount     = fs.Float64P("amount", "a", 1, "strength in [0, 1] for lms and --daltonize")
		space      = fs.StringP("space", "s", "", "also print results in this space: rgb, hsl, xyz, xyy, lms")
		out        = fs.StringP("out", "o", "", "also write a PNG swatch of the results")
		noColor    = fs.Bool("no-color", false, "do not draw terminal swatches")
		verbose    = fs.BoolP("verbose", "v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		daltonize: *daltonize,
		amount:    *amount,
		amountSet: fs.Changed("amount"),
		out:       *out,
		noColor:   *noColor,
		verbose:   *verbose,
	}

	if strings.EqualFold(*deficiency, "all") {
		cfg.deficiencies = cvd.All()
	} else {
		for _, name := range strings.Split(*deficiency, ",") {
			d, err := cvd.ParseDeficiency(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			cfg.deficiencies = append(cfg.deficiencies, d)
		}
	}

	m, err := cvd.ParseMethod(*method)
	if err != nil {
		return nil, err
	}
	cfg.method = m

	if *space != "" {
		s, err := tint.ParseSpace(*space)
		if err != nil {
			return nil, err
		}
		cfg.space, cfg.showSpace = s, true
	}

	for _, arg := range fs.Args() {
		c, err := tint.Parse(arg)
		if err != nil {
			return nil, err
		}
		cfg.colors = append(cfg.colors, c)
	}

	if len(cfg.colors) == 0 {
		fs.Usage()
		return nil, errors.New("no colors given")
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.verbose {
		prev := tint.Logger()
		tint.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer tint.SetLogger(prev)
	}

	if err := printColors(stdout, cfg); err != nil {
		return err
	}
	if cfg.out != "" {
		return writeSwatch(cfg)
	}
	return nil
}

// transform returns the per-color operation selected by cfg.
func transform(cfg *config, d cvd.Deficiency) func(tint.Color) (tint.RGBA, error) {
	switch {
	case cfg.daltonize:
		return func(c tint.Color) (tint.RGBA, error) { return cvd.Daltonize(c, d, cfg.amount) }
	case cfg.method == cvd.MethodLMS && cfg.amountSet:
		return func(c tint.Color) (tint.RGBA, error) { return cvd.SimulateLMS(c, d, cfg.amount) }
	case cfg.method == cvd.MethodLMS:
		return func(c tint.Color) (tint.RGBA, error) { return cvd.SimulateVienot(c, d) }
	}
	return func(c tint.Color) (tint.RGBA, error) { return cvd.Simulate(c, d) }
}

func printColors(w io.Writer, cfg *config) error {
	opts := []termenv.OutputOption{}
	if cfg.noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)

	swatch := func(c tint.Color) string {
		hex := c.RGB().Hex()
		return out.String("  ").Background(out.Color(hex)).String() + " " + tint.Hex(c)
	}

	for _, c := range cfg.colors {
		fmt.Fprintln(w, out.String(swatch(c)).Bold())
		for _, d := range cfg.deficiencies {
			res, err := transform(cfg, d)(c)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("  %s  %s", swatch(res), d.Title())
			if cfg.showSpace {
				v, err := tint.Convert(res, cfg.space)
				if err != nil {
					return err
				}
				line += fmt.Sprintf("  %v", v)
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
