// SPDX-License-Identifier: MIT

// Package driver runs the read → solve → print loop over a case stream.
//
// Each case is solved independently and to completion before the next one
// is read. Any failure (malformed input, capacity error, verification
// mismatch) stops the run and is returned wrapped with the case index.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/pairmatch/casefile"
	"github.com/katalvlaran/pairmatch/geom"
	"github.com/katalvlaran/pairmatch/matching"
)

// ErrVerificationFailed is returned when a result disagrees with the oracle.
var ErrVerificationFailed = errors.New("driver: verification failed")

// Driver solves case streams with a fixed Config.
type Driver struct {
	cfg    Config
	logger *zap.SugaredLogger
}

// New returns a Driver. A nil logger is replaced by a no-op one.
func New(cfg Config, logger *zap.SugaredLogger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Driver{cfg: cfg, logger: logger}, nil
}

// Run reads cases from in until the terminating 0 and writes one result
// line per case to out. ctx is checked between cases.
func (d *Driver) Run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	var (
		r      = casefile.NewReader(in)
		w      = bufio.NewWriter(out)
		solved int
	)
	defer func() {
		err = multierr.Append(err, errors.Wrap(w.Flush(), "flush output"))
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := r.Next()
		if err == io.EOF {
			d.logger.Debugw("input done", "cases", solved, "lines", r.Line())
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}

		res, err := d.solveCase(c)
		if err != nil {
			return errors.Wrapf(err, "case %d", c.Index)
		}
		if _, err := fmt.Fprintln(w, casefile.FormatResult(c.Index, res.Cost, d.cfg.Precision)); err != nil {
			return errors.Wrap(err, "write result")
		}
		if d.cfg.ShowPairs && res.Pairs != nil {
			if _, err := fmt.Fprintln(w, PairsTable(c, res)); err != nil {
				return errors.Wrap(err, "write pairs")
			}
		}
		solved++
	}
}

// solveCase runs the configured solver and the optional oracle check.
func (d *Driver) solveCase(c casefile.Case) (matching.Result, error) {
	opts := matching.DefaultOptions()
	opts.Algo = d.cfg.Algo
	opts.Pairs = d.cfg.ShowPairs

	start := time.Now()
	res, err := matching.Solve(c.Points, opts)
	if err != nil {
		return matching.Result{}, err
	}
	d.logger.Debugw("case solved",
		"case", c.Index,
		"points", len(c.Points),
		"bound", geom.Bound(c.Points),
		"algo", d.cfg.Algo.String(),
		"cost", res.Cost,
		"subsets", res.Stats.Computed,
		"memoHits", res.Stats.Hits,
		"elapsed", time.Since(start),
	)
	if !res.Exact {
		d.logger.Warnw("reporting a heuristic result", "case", c.Index, "algo", d.cfg.Algo.String())
	}

	if d.cfg.Verify {
		if err := d.verify(c, res); err != nil {
			return matching.Result{}, err
		}
	}

	return res, nil
}

// verify compares res against the brute-force optimum of c.
func (d *Driver) verify(c casefile.Case, res matching.Result) error {
	oracle, err := matching.Solve(c.Points, matching.Options{Algo: matching.BruteForce})
	if err != nil {
		return errors.Wrap(err, "oracle")
	}

	ok := scalar.EqualWithinAbsOrRel(res.Cost, oracle.Cost, verifyAbsTol, verifyRelTol)
	if !res.Exact {
		ok = ok || res.Cost > oracle.Cost
	}
	if !ok {
		d.logger.Errorw("oracle disagrees", "case", c.Index, "got", res.Cost, "want", oracle.Cost)
		return errors.Wrapf(ErrVerificationFailed, "%s cost %.9f, brute force %.9f", d.cfg.Algo, res.Cost, oracle.Cost)
	}
	d.logger.Debugw("verified", "case", c.Index, "cost", oracle.Cost)

	return nil
}

// PairsTable renders the teams of res as a table, using the case's point
// names when present.
func PairsTable(c casefile.Case, res matching.Result) string {
	name := func(i int) string {
		if i < len(c.Names) && c.Names[i] != "" {
			return c.Names[i]
		}

		return fmt.Sprintf("#%d", i+1)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Team", "Member", "Position", "Member", "Position", "Distance"})
	for k, p := range res.Pairs {
		t.AppendRow(table.Row{
			k + 1,
			name(p.A), c.Points[p.A].String(),
			name(p.B), c.Points[p.B].String(),
			fmt.Sprintf("%.2f", p.Dist),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", fmt.Sprintf("%.2f", res.Cost)})

	return t.Render()
}
