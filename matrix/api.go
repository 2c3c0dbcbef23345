// SPDX-License-Identifier: MIT

// Package matrix: public facades over the private element-wise kernels.
package matrix

// ScaleColumns returns X·diag(scale): out[i,j] = X[i,j]*scale[j].
// len(scale) must equal Cols(X). An r×0 input yields an r×0 result.
// Time: O(r*c). Space: O(r*c). Deterministic.
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) {
	return ewScaleCols(X, scale)
}

// Clip returns a copy of m with elements clamped into [lo, hi] (both finite).
//
//	out[i,j] = min(max(A[i,j], lo), hi).
//
// Policy: If lo > hi, bounds are swapped (normalized). NaN/Inf bounds are rejected.
// Clip(P, 0, 1) is the canonical way to force estimates into the probability range.
// Time: O(r*c). Space: O(r*c).
func Clip(m Matrix, lo, hi float64) (*Dense, error) {
	return ewClipRange(m, lo, hi)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// rtol, atol are treated as |rtol|, |atol|.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
