// SPDX-License-Identifier: MIT

package usvt

import "math"

// Threshold returns the spectral cut-off (2+eta)·√n.
func Threshold(n int, eta float64) float64 {
	return (2 + eta) * math.Sqrt(float64(n))
}

// Retained returns, in ascending order, every position i with values[i] ≥ thr.
// The result is never nil; an empty slice means nothing survives the cut.
func Retained(values []float64, thr float64) []int {
	kept := make([]int, 0, len(values))
	for i, s := range values {
		if s >= thr {
			kept = append(kept, i)
		}
	}

	return kept
}
