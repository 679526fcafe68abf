// SPDX-License-Identifier: MIT

package driver_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pairmatch/casefile"
	"github.com/katalvlaran/pairmatch/driver"
	"github.com/katalvlaran/pairmatch/geom"
	"github.com/katalvlaran/pairmatch/matching"
)

const sample = `5
sohel 10 10
mahmud 20 10
sanny 5 5
prince 1 1
per 120 3
mf 6 6
kugel 50 60
joey 3 24
limon 6 9
manzoor 0 0
1
derek 9 9
jimmy 10 10
0
`

func observed() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func run(t *testing.T, cfg driver.Config, in string) (string, error) {
	t.Helper()
	logger, _ := observed()
	d, err := driver.New(cfg, logger)
	require.NoError(t, err)

	var out bytes.Buffer
	err = d.Run(context.Background(), strings.NewReader(in), &out)

	return out.String(), err
}

func TestRun_Sample(t *testing.T) {
	for _, algo := range []matching.Algorithm{matching.Memoized, matching.BottomUp, matching.BruteForce} {
		cfg := driver.DefaultConfig()
		cfg.Algo = algo
		out, err := run(t, cfg, sample)
		require.NoError(t, err, "algo %v", algo)
		require.Equal(t, "Case 1: 118.40\nCase 2: 1.41\n", out, "algo %v", algo)
	}
}

func TestRun_Rectangle(t *testing.T) {
	out, err := run(t, driver.DefaultConfig(), "2\na 0 0\nb 0 3\nc 4 0\nd 4 3\n0\n")
	require.NoError(t, err)
	require.Equal(t, "Case 1: 6.00\n", out)
}

func TestRun_Verify(t *testing.T) {
	for _, algo := range []matching.Algorithm{matching.Memoized, matching.BottomUp, matching.Greedy} {
		cfg := driver.DefaultConfig()
		cfg.Algo = algo
		cfg.Verify = true
		_, err := run(t, cfg, sample)
		require.NoError(t, err, "algo %v", algo)
	}
}

func TestRun_ShowPairs(t *testing.T) {
	cfg := driver.DefaultConfig()
	cfg.ShowPairs = true
	out, err := run(t, cfg, "1\nderek 9 9\njimmy 10 10\n0\n")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Case 1: 1.41\n"), out)
	require.Contains(t, out, "derek")
	require.Contains(t, out, "jimmy")
	require.Contains(t, out, "(10, 10)")
	require.Contains(t, out, "1.41")
}

func TestRun_Precision(t *testing.T) {
	cfg := driver.DefaultConfig()
	cfg.Precision = 4
	out, err := run(t, cfg, "1\nderek 9 9\njimmy 10 10\n0\n")
	require.NoError(t, err)
	require.Equal(t, "Case 1: 1.4142\n", out)
}

func TestRun_CapacityErrorStopsRun(t *testing.T) {
	var b strings.Builder
	b.WriteString("1\na 0 0\nb 3 4\n")
	b.WriteString("9\n")
	for i := 0; i < 18; i++ {
		fmt.Fprintf(&b, "p%d %d %d\n", i, i, i)
	}
	b.WriteString("0\n")

	out, err := run(t, driver.DefaultConfig(), b.String())
	require.ErrorIs(t, err, matching.ErrTooManyPoints)
	require.Contains(t, err.Error(), "case 2")
	// results before the failure are still flushed
	require.Equal(t, "Case 1: 5.00\n", out)
}

func TestRun_MalformedInput(t *testing.T) {
	_, err := run(t, driver.DefaultConfig(), "1\na 0 0\nb x 4\n0\n")
	require.ErrorIs(t, err, casefile.ErrMalformed)

	_, err = run(t, driver.DefaultConfig(), "1\na 0 0\nb 1 4\n")
	require.ErrorIs(t, err, casefile.ErrUnexpectedEOF)
}

func TestRun_HugeTeamCount(t *testing.T) {
	for _, header := range []string{"4611686018427387904", "100000000"} {
		var (
			out string
			err error
		)
		require.NotPanics(t, func() {
			out, err = run(t, driver.DefaultConfig(), "1\na 0 0\nb 3 4\n"+header+"\na 0 0\n")
		})
		require.ErrorIs(t, err, casefile.ErrMalformed, header)
		require.Contains(t, err.Error(), "line 4")
		require.Equal(t, "Case 1: 5.00\n", out)
	}
}

func TestRun_Canceled(t *testing.T) {
	d, err := driver.New(driver.DefaultConfig(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err = d.Run(ctx, strings.NewReader(sample), &out)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestRun_Logging(t *testing.T) {
	logger, logs := observed()
	cfg := driver.DefaultConfig()
	cfg.Algo = matching.Greedy
	d, err := driver.New(cfg, logger)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, d.Run(context.Background(), strings.NewReader(sample), &out))

	require.Equal(t, 2, logs.FilterMessage("case solved").Len())
	require.Equal(t, 2, logs.FilterMessage("reporting a heuristic result").Len())
	require.Equal(t, 1, logs.FilterMessage("input done").Len())

	first := logs.FilterMessage("case solved").All()[0].ContextMap()
	require.Equal(t, int64(1), first["case"])
	require.Equal(t, int64(10), first["points"])
	require.Equal(t, "greedy", first["algo"])
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, driver.DefaultConfig().Validate())

	cfg := driver.DefaultConfig()
	cfg.Precision = -1
	require.Error(t, cfg.Validate())

	cfg = driver.DefaultConfig()
	cfg.Algo = matching.Algorithm(17)
	_, err := driver.New(cfg, nil)
	require.ErrorIs(t, err, matching.ErrUnsupportedAlgorithm)
}

func TestPairsTable(t *testing.T) {
	c := casefile.Case{
		Index:  1,
		Teams:  2,
		Names:  []string{"a", "", "c", "d"},
		Points: []geom.Point{geom.Pt(0, 0), geom.Pt(0, 3), geom.Pt(4, 0), geom.Pt(4, 3)},
	}
	res, err := matching.Solve(c.Points, matching.DefaultOptions())
	require.NoError(t, err)

	s := driver.PairsTable(c, res)
	require.Contains(t, s, "#2")
	require.Contains(t, s, "3.00")
	require.Contains(t, s, "6.00")
	require.Contains(t, s, "TOTAL") // go-pretty upper-cases footers by default
}
