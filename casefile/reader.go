// SPDX-License-Identifier: MIT

package casefile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pairmatch/geom"
)

var (
	// ErrMalformed is returned for a line that does not follow the format.
	ErrMalformed = errors.New("casefile: malformed input")

	// ErrUnexpectedEOF is returned when input ends before the terminating 0.
	ErrUnexpectedEOF = errors.New("casefile: unexpected end of input")
)

// MaxTeams bounds the team count a header may declare. Larger counts are
// malformed; the solver's own capacity check applies to smaller ones.
const MaxTeams = 1 << 20

// preallocPoints caps the up-front allocation per case; larger cases grow
// while their point lines are read.
const preallocPoints = 64

// Case is one test case: 2·Teams named points.
type Case struct {
	// Index is the 1-based position of the case in the stream.
	Index  int
	Teams  int
	Names  []string
	Points []geom.Point
}

// Reader reads cases from a stream. It is not safe for concurrent use.
type Reader struct {
	sc    *bufio.Scanner
	line  int
	index int
	done  bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Line is the number of the last line consumed (1-based).
func (r *Reader) Line() int { return r.line }

// nextFields returns the fields of the next non-blank line.
func (r *Reader) nextFields() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		if f := strings.Fields(r.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read after line %d", r.line)
	}

	return nil, io.EOF
}

// Next returns the next case, or io.EOF once the terminating 0 was read.
func (r *Reader) Next() (Case, error) {
	if r.done {
		return Case{}, io.EOF
	}

	f, err := r.nextFields()
	if err == io.EOF {
		return Case{}, errors.Wrapf(ErrUnexpectedEOF, "missing terminating 0 after line %d", r.line)
	}
	if err != nil {
		return Case{}, err
	}
	if len(f) != 1 {
		return Case{}, errors.Wrapf(ErrMalformed, "line %d: want team count, got %q", r.line, strings.Join(f, " "))
	}
	teams, err := strconv.Atoi(f[0])
	if err != nil || teams < 0 {
		return Case{}, errors.Wrapf(ErrMalformed, "line %d: invalid team count %q", r.line, f[0])
	}
	if teams > MaxTeams {
		return Case{}, errors.Wrapf(ErrMalformed, "line %d: team count %d exceeds %d", r.line, teams, MaxTeams)
	}
	if teams == 0 {
		r.done = true

		return Case{}, io.EOF
	}

	r.index++
	n := 2 * teams
	c := Case{
		Index:  r.index,
		Teams:  teams,
		Names:  make([]string, 0, min(n, preallocPoints)),
		Points: make([]geom.Point, 0, min(n, preallocPoints)),
	}
	for i := 0; i < n; i++ {
		name, p, err := r.readPoint()
		if err != nil {
			return Case{}, errors.Wrapf(err, "case %d point %d", c.Index, i+1)
		}
		c.Names = append(c.Names, name)
		c.Points = append(c.Points, p)
	}

	return c, nil
}

// readPoint parses a "<name> <x> <y>" line. Extra tokens are rejected.
func (r *Reader) readPoint() (string, geom.Point, error) {
	f, err := r.nextFields()
	if err == io.EOF {
		return "", geom.Point{}, errors.Wrapf(ErrUnexpectedEOF, "after line %d", r.line)
	}
	if err != nil {
		return "", geom.Point{}, err
	}
	if len(f) != 3 {
		return "", geom.Point{}, errors.Wrapf(ErrMalformed, "line %d: want \"name x y\", got %d fields", r.line, len(f))
	}
	x, errX := strconv.Atoi(f[1])
	y, errY := strconv.Atoi(f[2])
	if errX != nil || errY != nil {
		return "", geom.Point{}, errors.Wrapf(ErrMalformed, "line %d: non-integer coordinates %q %q", r.line, f[1], f[2])
	}

	return f[0], geom.Pt(x, y), nil
}

// ReadAll reads every case up to the terminating 0.
func ReadAll(r io.Reader) ([]Case, error) {
	var (
		cr  = NewReader(r)
		out []Case
	)
	for {
		c, err := cr.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}
