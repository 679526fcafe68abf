// SPDX-License-Identifier: MIT

// Package main is the pairmatch command: it reads team-forming cases and
// prints the minimum total distance of each, or generates random cases.
//
// Usage:
//
//	pairmatch [--algo memo|bottomup|brute|greedy] [--verify] [--pairs] [FILE]
//	pairmatch generate [--cases N] [--teams T] [--span S] [--seed X]
package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/casefile"
	"github.com/katalvlaran/pairmatch/driver"
	"github.com/katalvlaran/pairmatch/geom"
	"github.com/katalvlaran/pairmatch/matching"
)

const (
	// Flags.
	flagAlgo      = "algo"
	flagVerify    = "verify"
	flagPairs     = "pairs"
	flagPrecision = "precision"
	flagDebug     = "debug"

	generateFlagCases = "cases"
	generateFlagTeams = "teams"
	generateFlagSpan  = "span"
	generateFlagSeed  = "seed"
)

func main() {
	if err := newApp(os.Stdin).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the CLI. Output goes to app.Writer; stdin is used when no
// FILE argument is given.
func newApp(stdin io.Reader) *cli.App {
	var logger *zap.SugaredLogger

	return &cli.App{
		Name:      "pairmatch",
		Usage:     "split 2n points into n teams with minimum total distance",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagAlgo,
				Aliases: []string{"a"},
				Value:   matching.Memoized.String(),
				Usage:   "solver: memo, bottomup, brute or greedy",
				EnvVars: []string{"PAIRMATCH_ALGO"},
			},
			&cli.BoolFlag{
				Name:  flagVerify,
				Usage: "cross-check every case against brute force",
			},
			&cli.BoolFlag{
				Name:  flagPairs,
				Usage: "print the formed teams after each result",
			},
			&cli.IntFlag{
				Name:  flagPrecision,
				Value: casefile.DefaultPrecision,
				Usage: "decimals in result lines",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool(flagDebug) {
				logger = zap.NewNop().Sugar()
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			logger = l.Sugar().Named("pairmatch")

			return nil
		},
		After: func(c *cli.Context) error {
			if logger != nil {
				// stderr sync fails on some platforms; nothing useful to report
				_ = logger.Sync()
			}

			return nil
		},
		Action: func(c *cli.Context) error {
			return solveAction(c, stdin, logger)
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "write random cases in the input format",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: generateFlagCases, Value: 5, Usage: "number of cases"},
					&cli.IntFlag{Name: generateFlagTeams, Value: matching.MaxPoints / 2, Usage: "teams per case"},
					&cli.IntFlag{Name: generateFlagSpan, Value: 1000, Usage: "coordinates are drawn from [0, span]"},
					&cli.Int64Flag{Name: generateFlagSeed, Usage: "random seed (0 = fixed default)"},
				},
				Action: generateAction,
			},
		},
	}
}

// solveAction runs the driver over FILE or stdin.
func solveAction(c *cli.Context, stdin io.Reader, logger *zap.SugaredLogger) (err error) {
	if c.Args().Len() > 1 {
		return errors.Errorf("expected at most one input file, got %d", c.Args().Len())
	}
	algo, err := matching.ParseAlgorithm(c.String(flagAlgo))
	if err != nil {
		return err
	}

	cfg := driver.DefaultConfig()
	cfg.Algo = algo
	cfg.Verify = c.Bool(flagVerify)
	cfg.ShowPairs = c.Bool(flagPairs)
	cfg.Precision = c.Int(flagPrecision)
	d, err := driver.New(cfg, logger)
	if err != nil {
		return err
	}

	in := stdin
	if path := c.Args().First(); path != "" {
		f, openErr := os.Open(path)
		if openErr != nil {
			return errors.Wrap(openErr, "open input")
		}
		defer func() {
			err = multierr.Combine(err, f.Close())
		}()
		in = f
		logger.Debugw("reading cases", "file", path)
	}

	return d.Run(c.Context, in, c.App.Writer)
}

// generateAction writes random cases followed by the terminating 0.
func generateAction(c *cli.Context) error {
	cases, teams, span := c.Int(generateFlagCases), c.Int(generateFlagTeams), c.Int(generateFlagSpan)
	if cases < 0 {
		return errors.Errorf("--%s must be non-negative, got %d", generateFlagCases, cases)
	}
	if teams < 1 || 2*teams > matching.MaxPoints {
		return errors.Errorf("--%s must be in [1, %d], got %d", generateFlagTeams, matching.MaxPoints/2, teams)
	}
	if span < 0 || span > geom.MaxSpan {
		return errors.Errorf("--%s must be in [0, %d], got %d", generateFlagSpan, geom.MaxSpan, span)
	}

	var (
		base = geom.NewRand(c.Int64(generateFlagSeed))
		w    = casefile.NewWriter(c.App.Writer)
	)
	for i := 0; i < cases; i++ {
		pts := geom.RandomPoints(geom.DeriveRand(base, uint64(i)), 2*teams, span)
		if err := w.WriteCase(casefile.Case{Index: i + 1, Teams: teams, Points: pts}); err != nil {
			return err
		}
	}
	if err := w.WriteTerminator(); err != nil {
		return err
	}

	return w.Flush()
}
