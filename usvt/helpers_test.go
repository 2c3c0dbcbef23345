// SPDX-License-Identifier: MIT
package usvt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphon/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a *Dense from a row literal or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// complete returns the adjacency matrix of K_n.
func complete(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				require.NoError(tb, m.Set(i, j, 1))
			}
		}
	}

	return m
}

// blockAdjacency samples a deterministic two-block stochastic block model:
// edges inside a block appear with probability in, across blocks with across.
func blockAdjacency(tb testing.TB, n int, in, across float64, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(tb, err)
	half := n / 2
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := across
			if (i < half) == (j < half) {
				p = in
			}
			if rng.Float64() < p {
				require.NoError(tb, m.Set(i, j, 1))
				require.NoError(tb, m.Set(j, i, 1))
			}
		}
	}

	return m
}

// requireClose asserts want ≈ got within atol.
func requireClose(tb testing.TB, want, got matrix.Matrix, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// requireInUnitRange asserts every entry of m lies in [0,1].
func requireInUnitRange(tb testing.TB, m *matrix.Dense) {
	tb.Helper()
	for i, row := range m.ToRows() {
		for j, v := range row {
			require.Truef(tb, v >= 0 && v <= 1, "entry (%d,%d) = %g outside [0,1]", i, j, v)
		}
	}
}
