// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a fresh *mat.Dense (row-major, same shape).
// Errors: ErrNilMatrix, ErrInvalidDimensions, or any At error. Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	if d.r == 0 || d.c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", d.r, d.c, ErrInvalidDimensions)
	}
	// DenseCopyOf returned an independent buffer; gonum may own it.
	return mat.NewDense(d.r, d.c, d.data), nil
}

// FromGonum copies a gonum matrix into a fresh *Dense.
// Errors: ErrNilMatrix for nil; ErrInvalidDimensions for empty shapes;
// ErrNaNInf for non-finite entries. Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if isNonFinite(v) {
				return nil, fmt.Errorf("FromGonum: %w", denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
