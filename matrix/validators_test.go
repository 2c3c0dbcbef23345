// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/graphon/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, mustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", mustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", mustDense(t, 2, 3), mustDense(t, 2, 3), nil},
		{"row mismatch", mustDense(t, 2, 3), mustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustDense(t, 2, 3), mustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", mustDense(t, 1, 1), nil},
		{"3x3", mustDense(t, 3, 3), nil},
		{"2x3", mustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateSymmetric checks tolerance handling on both paths.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{0, 1}, {1 + 1e-12, 0}})
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(hide{m}, -1e-9)) // negative tol is normalized
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(hide{m}, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(mustDense(t, 2, 3), 0), matrix.ErrNonSquare)
}

// TestValidateAdjacency walks every adjacency violation class.
func TestValidateAdjacency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"single vertex", [][]float64{{0}}, nil},
		{"edge", [][]float64{{0, 1}, {1, 0}}, nil},
		{"empty graph", [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, nil},
		{"triangle", [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, nil},
		{"non-square", [][]float64{{0, 1, 0}, {1, 0, 0}}, matrix.ErrNonSquare},
		{"asymmetric", [][]float64{{0, 1}, {0, 0}}, matrix.ErrAsymmetry},
		{"weighted", [][]float64{{0, 0.5}, {0.5, 0}}, matrix.ErrNonBinary},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, matrix.ErrNonBinary},
		{"self-loop", [][]float64{{1, 0}, {0, 0}}, matrix.ErrNonZeroDiagonal},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustRows(t, tc.rows)
			for _, in := range []matrix.Matrix{m, hide{m}} {
				err := matrix.ValidateAdjacency(in)
				if tc.want == nil {
					require.NoError(t, err)
					require.True(t, matrix.IsValidAdjacency(in))
					continue
				}
				require.ErrorIs(t, err, tc.want)
				require.False(t, matrix.IsValidAdjacency(in))
			}
		})
	}

	require.ErrorIs(t, matrix.ValidateAdjacency(nil), matrix.ErrNilMatrix)
	require.False(t, matrix.IsValidAdjacency(nil))

	// A 0×0 matrix has no vertices and is not an adjacency matrix.
	empty, err := mustDense(t, 2, 2).Induced(nil, nil)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateAdjacency(empty), matrix.ErrInvalidDimensions)
	require.False(t, matrix.IsValidAdjacency(empty))
}

// TestValidateVecLen covers nil and mismatched vectors.
func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}
