// SPDX-License-Identifier: MIT

// Command simbench sweeps matrix dimensions and reports how long the
// similarity-transform engine needs to find the dominant eigenpair.
//
// Usage:
//
//	simbench [-min 32] [-max 1024] [-kind random|hilbert|identity] [-seed 1]
//	         [-wg 0] [-workers 0] [-lanes 0] [-eps 1e-3] [-maxitr 1000] [-check] [-verbose]
//
// Dimensions double from -min to -max. With -check each result is compared
// with gonum's eigen solver.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/perron/device"
	"github.com/katalvlaran/perron/matrix"
	"github.com/katalvlaran/perron/similarity"
	"github.com/katalvlaran/perron/validate"
)

// config holds the parsed command-line flags.
type config struct {
	minN, maxN int
	wg         int
	workers    int
	lanes      int
	eps        float64
	maxItr     int
	kind       string
	seed       int64
	check      bool
	verbose    bool
}

var errBadFlags = errors.New("simbench: invalid flags")

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("simbench", flag.ContinueOnError)
	fs.IntVar(&c.minN, "min", 32, "smallest matrix dimension")
	fs.IntVar(&c.maxN, "max", 1024, "largest matrix dimension")
	fs.IntVar(&c.wg, "wg", 0, "work-group size (0 = automatic)")
	fs.IntVar(&c.workers, "workers", 0, "worker goroutines per launch (0 = GOMAXPROCS)")
	fs.IntVar(&c.lanes, "lanes", 0, "cluster lane width, a power of two ≤ 16 (0 = detected from the CPU)")
	fs.Float64Var(&c.eps, "eps", similarity.DefaultEpsilon, "convergence tolerance")
	fs.IntVar(&c.maxItr, "maxitr", similarity.DefaultMaxIterations, "iteration cap")
	fs.StringVar(&c.kind, "kind", "random", "input matrix: random, hilbert or identity")
	fs.Int64Var(&c.seed, "seed", 1, "random seed for -kind random")
	fs.BoolVar(&c.check, "check", false, "compare each result with gonum's eigen solver")
	fs.BoolVar(&c.verbose, "verbose", false, "log every iteration")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	switch {
	case c.minN < 2 || c.maxN < c.minN:
		return c, fmt.Errorf("%w: need 2 ≤ -min ≤ -max, got %d and %d", errBadFlags, c.minN, c.maxN)
	case c.kind != "random" && c.kind != "hilbert" && c.kind != "identity":
		return c, fmt.Errorf("%w: unknown -kind %q", errBadFlags, c.kind)
	}

	return c, nil
}

// generate builds the n×n input selected by -kind.
func generate(kind string, n int, rng *rand.Rand) (*matrix.Dense, error) {
	switch kind {
	case "hilbert":
		return matrix.NewHilbert(n)
	case "identity":
		return matrix.NewIdentity(n)
	default:
		return matrix.NewRandomPositive(n, rng)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("simbench: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if err = run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	dev, err := device.New(device.WithWorkers(cfg.workers), device.WithLanes(cfg.lanes))
	if err != nil {
		return fmt.Errorf("%w: %w", errBadFlags, err)
	}
	log.Printf("device: %s", dev.Name())
	if detected := dev.Features().Lanes(); detected != dev.Lanes() {
		log.Printf("lanes: forced to %d, %s suggests %d", dev.Lanes(), dev.Features(), detected)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := "N\tW\titerations\tstate\teigenvalue\telapsed\t"
	if cfg.check {
		header += "reference\tresidual\t"
	}
	fmt.Fprintln(tw, header)

	for n := cfg.minN; n <= cfg.maxN; n *= 2 {
		m, err := generate(cfg.kind, n, rng)
		if err != nil {
			return fmt.Errorf("N=%d: %w", n, err)
		}

		opts := []similarity.Option{
			similarity.WithDevice(dev),
			similarity.WithEpsilon(cfg.eps),
			similarity.WithMaxIterations(cfg.maxItr),
			similarity.WithWorkGroupSize(cfg.wg),
		}
		if cfg.verbose {
			opts = append(opts, similarity.WithOnIteration(func(it similarity.Iteration) {
				log.Printf("N=%d iteration=%d max=%g converged=%t elapsed=%s",
					n, it.Index, it.Max, it.Converged, it.Elapsed)
			}))
		}

		res, err := similarity.Run(m, opts...)
		if err != nil {
			return fmt.Errorf("N=%d: %w", n, err)
		}

		row := fmt.Sprintf("%d\t%d\t%d\t%s\t%.6f\t%s\t",
			n, res.WorkGroupSize, res.Iterations, res.State, res.Value, res.Elapsed.Round(time.Microsecond))
		if cfg.check {
			ref, _, err := validate.Dominant(m)
			if err != nil {
				return fmt.Errorf("N=%d: %w", n, err)
			}
			resid, err := validate.Residual(m, res.Value, res.Vector)
			if err != nil {
				return fmt.Errorf("N=%d: %w", n, err)
			}
			row += fmt.Sprintf("%.6f\t%.2e\t", ref, resid)
		}
		fmt.Fprintln(tw, row)
	}

	return tw.Flush()
}
