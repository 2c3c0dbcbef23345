// SPDX-License-Identifier: MIT

package usvt

import (
	"fmt"

	"github.com/katalvlaran/graphon/matrix"
)

// Reconstruct rebuilds the n×n matrix Σ sₖ·uₖvₖᵀ over the retained positions.
//
//   - no position:   the all-zero n×n matrix.
//   - one position:  sₖ·uₖvₖᵀ as an explicit outer product.
//   - several:       U_r·diag(s_r)·V_rᵀ.
//
// Positions must index into d.Values; a malformed decomposition is reported
// as ErrDecomposition.
func Reconstruct(d *Decomposition, retained []int) (*matrix.Dense, error) {
	if d == nil || d.U == nil || d.V == nil {
		return nil, fmt.Errorf("%w: incomplete decomposition", ErrDecomposition)
	}
	n := d.U.Rows()
	for _, k := range retained {
		if k < 0 || k >= len(d.Values) {
			return nil, fmt.Errorf("%w: retained position %d of %d: %w",
				ErrDecomposition, k, len(d.Values), matrix.ErrOutOfRange)
		}
	}

	var (
		p   *matrix.Dense
		err error
	)
	switch len(retained) {
	case 0:
		p, err = matrix.NewDense(n, n)
	case 1:
		p, err = reconstructRankOne(d, retained[0])
	default:
		p, err = reconstructLowRank(d, retained)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reconstruct: %w", ErrDecomposition, err)
	}

	return p, nil
}

// reconstructRankOne returns s_k·u_k·v_kᵀ.
func reconstructRankOne(d *Decomposition, k int) (*matrix.Dense, error) {
	u, err := d.U.Column(k)
	if err != nil {
		return nil, err
	}
	v, err := d.V.Column(k)
	if err != nil {
		return nil, err
	}
	uv, err := matrix.Outer(u, v)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(uv, d.Values[k])
}

// reconstructLowRank returns U_r·diag(s_r)·V_rᵀ for the selected columns.
// An empty selection multiplies n×0 by 0×n and yields zeros.
func reconstructLowRank(d *Decomposition, idx []int) (*matrix.Dense, error) {
	rows := seq(d.U.Rows())
	ur, err := d.U.Induced(rows, idx)
	if err != nil {
		return nil, err
	}
	vr, err := d.V.Induced(seq(d.V.Rows()), idx)
	if err != nil {
		return nil, err
	}
	s := make([]float64, len(idx))
	for i, k := range idx {
		s[i] = d.Values[k]
	}
	us, err := matrix.ScaleColumns(ur, s)
	if err != nil {
		return nil, err
	}
	vt, err := matrix.Transpose(vr)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(us, vt)
}

// seq returns 0, 1, …, n-1.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
