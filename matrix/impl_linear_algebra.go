// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, transpose, scalar scaling, outer products and averaging.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - *Dense operands unlock flat-slice fast paths; other implementations fall
//     back to At/Set with the same i→j loop order.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opOuter     = "Outer"
	opMean      = "Mean"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a·b into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: *Dense fast path (i-k-j order, skipping zero a[i,k]); generic i-j-k otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation); ErrInvalidDimensions when
//     a has no rows or b has no columns.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
//
// Notes:
//   - An inner dimension of zero (a is r×0, b is 0×c) produces the r×c zero matrix;
//     this is the natural value of an empty sum of outer products.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrNilMatrix; zero-area inputs produce a zero-area transpose.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[base+j]
			}
		}
		return res, nil
	}
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense.
//
// Errors: ErrNilMatrix; ErrNaNInf for non-finite alpha.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range out.data {
		out.data[idx] *= alpha
	}

	return out, nil
}

// Outer returns the outer product u·vᵀ as a len(u)×len(v) Dense.
//
// Implementation:
//   - Stage 1: reject nil/empty vectors and non-finite entries.
//   - Stage 2: out[i,j] = u[i]*v[j] in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix for nil vectors; ErrInvalidDimensions for empty vectors; ErrNaNInf.
//
// Complexity:
//   - Time O(len(u)*len(v)), Space the same.
//
// Notes:
//   - This is the rank-one building block of low-rank reconstructions; it never
//     relies on 1-column matrix products.
func Outer(u, v []float64) (*Dense, error) {
	if u == nil || v == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	out, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	c := len(v)
	for i, ui := range u {
		if isNonFinite(ui) {
			return nil, matrixErrorf(opOuter, ErrNaNInf)
		}
		for j, vj := range v {
			if isNonFinite(vj) {
				return nil, matrixErrorf(opOuter, ErrNaNInf)
			}
			out.data[i*c+j] = ui * vj
		}
	}

	return out, nil
}

// Mean returns the elementwise arithmetic mean of one or more equally shaped matrices.
//
// Implementation:
//   - Stage 1: reject an empty list; every member must be non-nil and share the first member's shape.
//   - Stage 2: accumulate sums in a single Dense (flat fast path for *Dense members).
//   - Stage 3: divide once by the member count.
//
// Errors:
//   - ErrInvalidDimensions (empty list), ErrNilMatrix, ErrDimensionMismatch; messages name the member index.
//
// Determinism:
//   - Members are summed in list order, so the result is bitwise stable for a given input.
//
// Complexity:
//   - Time O(k*r*c), Space O(r*c).
//
// Notes:
//   - k copies of the same binary matrix average back to it exactly: the integer
//     sums are exact in float64 and k*x/k == x for x ∈ {0,1}.
func Mean(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMean, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMean, fmt.Errorf("member 0: %w", err))
	}
	r, c := ms[0].Rows(), ms[0].Cols()
	acc, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMean, err)
	}

	var i, j int
	var v float64
	for idx, m := range ms {
		if err = ValidateBinarySameShape(ms[0], m); err != nil {
			return nil, matrixErrorf(opMean, fmt.Errorf("member %d: %w", idx, err))
		}
		if d, ok := m.(*Dense); ok {
			for off, x := range d.data {
				acc.data[off] += x
			}
			continue
		}
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opMean, fmt.Errorf("member %d: %w", idx, err))
				}
				acc.data[i*c+j] += v
			}
		}
	}

	k := float64(len(ms))
	for off := range acc.data {
		acc.data[off] /= k
	}

	return acc, nil
}
