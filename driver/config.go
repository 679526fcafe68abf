// SPDX-License-Identifier: MIT

package driver

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/pairmatch/matching"
)

// Verification tolerances between the selected solver and the oracle.
const (
	verifyAbsTol = 1e-9
	verifyRelTol = 1e-12
)

// Config drives one Run.
type Config struct {
	// Algo is the solver used for the reported answer.
	Algo matching.Algorithm

	// Verify re-solves every case with the brute-force oracle and fails the
	// run on any disagreement. With Algo == Greedy the check only requires
	// the greedy cost not to undercut the optimum.
	Verify bool

	// ShowPairs prints the formed teams below each result line.
	ShowPairs bool

	// Precision is the number of decimals in result lines.
	Precision int
}

// DefaultConfig returns the configuration matching the classic output.
func DefaultConfig() Config {
	return Config{
		Algo:      matching.Memoized,
		Precision: 2,
	}
}

// Validate checks cfg for unusable values.
func (c Config) Validate() error {
	if _, err := matching.ParseAlgorithm(c.Algo.String()); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.Precision < 0 || c.Precision > 15 {
		return errors.Errorf("config: precision %d out of range [0, 15]", c.Precision)
	}

	return nil
}
