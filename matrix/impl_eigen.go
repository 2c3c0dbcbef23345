// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate a symmetric square input (within DefaultEpsilon) and copy it into a Dense work buffer.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and annihilate it
//     with a plane rotation, accumulating the rotations into Q.
//   - Stage 3: stop when max |A[p,q]| ≤ tol; fail if the rotation budget is exhausted first.
//
// Behavior highlights:
//   - The input is never mutated.
//   - Eigenvalues are returned in diagonal order, NOT sorted; callers that need an
//     ordering must permute values and Q's columns together.
//
// Inputs:
//   - m: symmetric Matrix; n := m.Rows().
//   - tol: convergence threshold for the largest off-diagonal magnitude (finite, > 0).
//   - maxRotations: rotation budget (> 0); see DefaultEigenRotations.
//
// Returns:
//   - []float64: eigenvalues λ₀..λₙ₋₁.
//   - *Dense: Q whose column i is the unit eigenvector of λᵢ; m = Q·diag(λ)·Qᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (validation), ErrNaNInf (bad tol),
//     ErrInvalidDimensions (maxRotations ≤ 0), ErrEigenFailed (budget exhausted).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxRotations * n²) worst case (pivot scan dominates), Space O(n²).
func Eigen(m Matrix, tol float64, maxRotations int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, DefaultEpsilon); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if isNonFinite(tol) || tol <= 0 {
		return nil, nil, matrixErrorf(opEigen, ErrNaNInf)
	}
	if maxRotations <= 0 {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("maxRotations=%d: %w", maxRotations, ErrInvalidDimensions))
	}

	a, err := DenseCopyOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		rot, i, j, p, q2 int
		maxOff, off      float64
		app, aqq, apq    float64
		aip, aiq         float64
		theta, t, c, s   float64
		converged        bool
	)
	for rot = 0; rot <= maxRotations; rot++ {
		// Pivot search over the strict upper triangle.
		maxOff = ZeroSum
		for i = 0; i < n; i++ {
			base := i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, q2 = off, i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		if rot == maxRotations {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[q2*n+q2]
		apq = a.data[p*n+q2]
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(t²+1); s = t·c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q2 {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q2]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q2] = s*aip + c*aiq
			a.data[q2*n+i] = a.data[i*n+q2]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q2*n+q2] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q2], a.data[q2*n+p] = 0, 0

		for i = 0; i < n; i++ {
			aip = q.data[i*n+p]
			aiq = q.data[i*n+q2]
			q.data[i*n+p] = c*aip - s*aiq
			q.data[i*n+q2] = s*aip + c*aiq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("max off-diagonal %g > tol %g after %d rotations: %w", maxOff, tol, maxRotations, ErrEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
