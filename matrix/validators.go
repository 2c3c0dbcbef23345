// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//   - Host the adjacency predicate (square, symmetric, binary, zero diagonal)
//     consumed by graphon estimators.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound of a legal tolerance.
const zeroTol = 0.0

// Binary entry values of an adjacency matrix.
const (
	edgeAbsent  = 0.0
	edgePresent = 1.0
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures both inputs are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: square Matrix m, finite tolerance tol (negative values are normalized to |tol|).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < zeroTol {
		tol = -tol
	}

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var (
		i, j     int
		aij, aji float64
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
					return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
				}
			}
		}
		return nil
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // errors are not expected after shape validation
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateAdjacency checks that m is a simple-graph adjacency matrix:
// square, entries exactly in {0,1}, zero diagonal, symmetric.
//
// Implementation:
//   - Stage 1: NotNil → Square → at least one vertex.
//   - Stage 2: single i→j scan; per entry: finite → binary → (diagonal zero) → mirror equal.
//
// Errors (first violation in i→j order wins, then by the order above):
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0), ErrNaNInf, ErrNonBinary,
//     ErrNonZeroDiagonal, ErrAsymmetry.
//
// Determinism:
//   - Fixed i→j scan: the reported coordinates are stable for a given input.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// Notes:
//   - Entries are compared exactly: observed networks are binary, no tolerance applies.
func ValidateAdjacency(m Matrix) error {
	const tag = "ValidateAdjacency"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	n := m.Rows()
	if n == 0 {
		return validatorErrorf(tag, ErrInvalidDimensions)
	}
	var (
		i, j   int
		v, vt  float64
		err    error
		dense  *Dense
		isFast bool
	)
	dense, isFast = m.(*Dense)
	read := func(r, c int) (float64, error) {
		if isFast {
			return dense.data[r*n+c], nil
		}
		return m.At(r, c)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = read(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			if v != edgeAbsent && v != edgePresent {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNonBinary))
			}
			if i == j {
				if v != edgeAbsent {
					return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNonZeroDiagonal))
				}
				continue
			}
			if j < i {
				continue // mirror already compared from the upper triangle
			}
			if vt, err = read(j, i); err != nil {
				return validatorErrorf(tag, err)
			}
			if v != vt {
				return validatorErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// IsValidAdjacency reports whether m is square, symmetric, binary with a zero diagonal.
// It is the boolean form of ValidateAdjacency.
// Complexity: O(n²).
func IsValidAdjacency(m Matrix) bool {
	return ValidateAdjacency(m) == nil
}
