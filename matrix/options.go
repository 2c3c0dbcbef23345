// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Notes:
//   - No global mutable state: defaults are constants, every constructor
//     copies them into the instance it builds.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// on computed (non-binary) matrices, e.g. symmetry of an averaged matrix.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Jacobi eigen solver defaults.
const (
	// DefaultEigenTol is the off-diagonal convergence threshold for Eigen.
	DefaultEigenTol = 1e-12

	// DefaultEigenRotationsPerEntry scales the rotation budget with n²:
	// maxRotations = DefaultEigenRotationsPerEntry * n * n (at least DefaultEigenMinRotations).
	DefaultEigenRotationsPerEntry = 30

	// DefaultEigenMinRotations is the floor of the rotation budget for tiny matrices.
	DefaultEigenMinRotations = 100
)

// DefaultEigenRotations returns the default Jacobi rotation budget for an n×n matrix.
// Complexity: O(1).
func DefaultEigenRotations(n int) int {
	budget := DefaultEigenRotationsPerEntry * n * n
	if budget < DefaultEigenMinRotations {
		return DefaultEigenMinRotations
	}

	return budget
}
