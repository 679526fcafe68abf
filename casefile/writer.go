// SPDX-License-Identifier: MIT

package casefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultPrecision is the number of decimals in a result line.
const DefaultPrecision = 2

// FormatResult renders the answer line of a case, e.g. "Case 1: 6.00".
// A negative precision falls back to DefaultPrecision.
func FormatResult(index int, cost float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}

	return "Case " + strconv.Itoa(index) + ": " + strconv.FormatFloat(cost, 'f', precision, 64)
}

// Writer emits cases in the stream format. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a buffered Writer over w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }

// WriteCase writes the team count and one line per point. Missing names
// are replaced by "p<i>" (1-based).
func (w *Writer) WriteCase(c Case) error {
	if len(c.Points)%2 != 0 {
		return errors.Wrapf(ErrMalformed, "case %d: odd number of points %d", c.Index, len(c.Points))
	}
	if _, err := fmt.Fprintf(w.w, "%d\n", len(c.Points)/2); err != nil {
		return errors.Wrap(err, "write team count")
	}
	names := lo.Times(len(c.Points), func(i int) string {
		if i < len(c.Names) && c.Names[i] != "" {
			return c.Names[i]
		}

		return "p" + strconv.Itoa(i+1)
	})
	for i, p := range c.Points {
		if _, err := fmt.Fprintf(w.w, "%s %d %d\n", names[i], p.X, p.Y); err != nil {
			return errors.Wrapf(err, "write point %d", i+1)
		}
	}

	return nil
}

// WriteTerminator writes the closing 0.
func (w *Writer) WriteTerminator() error {
	_, err := w.w.WriteString("0\n")

	return errors.Wrap(err, "write terminator")
}

// Flush flushes buffered output.
func (w *Writer) Flush() error { return errors.Wrap(w.w.Flush(), "flush") }
