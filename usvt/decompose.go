// SPDX-License-Identifier: MIT

package usvt

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/graphon/matrix"
	"gonum.org/v1/gonum/mat"
)

// Decomposition is a full singular value decomposition A = U·diag(Values)·Vᵀ.
// Values are non-negative and sorted descending; column i of U and V belongs
// to Values[i].
type Decomposition struct {
	Values []float64
	U, V   *matrix.Dense
}

// Decomposer computes the full SVD of a square matrix.
type Decomposer interface {
	Decompose(a matrix.Matrix) (*Decomposition, error)
}

// Compile-time checks.
var (
	_ Decomposer = GonumSVD{}
	_ Decomposer = JacobiSVD{}
)

// GonumSVD decomposes through gonum's dense SVD (mat.SVDFull).
type GonumSVD struct{}

// Decompose implements Decomposer. Gonum already orders singular values
// descending, so no permutation is applied.
func (GonumSVD) Decompose(a matrix.Matrix) (*Decomposition, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	g, err := matrix.ToGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDFull); !ok {
		return nil, fmt.Errorf("%w: gonum SVD did not converge", ErrDecomposition)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)

	u, err := matrix.FromGonum(&gu)
	if err != nil {
		return nil, fmt.Errorf("%w: U: %w", ErrDecomposition, err)
	}
	v, err := matrix.FromGonum(&gv)
	if err != nil {
		return nil, fmt.Errorf("%w: V: %w", ErrDecomposition, err)
	}

	return &Decomposition{Values: svd.Values(nil), U: u, V: v}, nil
}

// JacobiSVD decomposes a symmetric matrix through the Jacobi eigen solver.
// For A = Q·diag(λ)·Qᵀ the singular values are |λᵢ|, the left vectors qᵢ and
// the right vectors sign(λᵢ)·qᵢ (sign(0) = +1).
//
// Zero fields select matrix.DefaultEigenTol and matrix.DefaultEigenRotations(n).
type JacobiSVD struct {
	Tol          float64
	MaxRotations int
}

// Decompose implements Decomposer. Asymmetric input and non-convergence
// are reported as ErrDecomposition.
func (j JacobiSVD) Decompose(a matrix.Matrix) (*Decomposition, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	n := a.Rows()
	tol, budget := j.Tol, j.MaxRotations
	if tol == 0 {
		tol = matrix.DefaultEigenTol
	}
	if budget == 0 {
		budget = matrix.DefaultEigenRotations(n)
	}

	lambda, q, err := matrix.Eigen(a, tol, budget)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}

	// Stable descending order by |λ|; ties keep diagonal order.
	order := seq(n)
	slices.SortStableFunc(order, func(x, y int) int {
		return cmp.Compare(math.Abs(lambda[y]), math.Abs(lambda[x]))
	})

	values := make([]float64, n)
	signs := make([]float64, n)
	for k, idx := range order {
		values[k] = math.Abs(lambda[idx])
		signs[k] = 1
		if lambda[idx] < 0 {
			signs[k] = -1
		}
	}

	u, err := q.Induced(seq(n), order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	v, err := matrix.ScaleColumns(u, signs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}

	return &Decomposition{Values: values, U: u, V: v}, nil
}
