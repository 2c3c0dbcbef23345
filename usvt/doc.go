// SPDX-License-Identifier: MIT

// Package usvt estimates a graphon from observed adjacency matrices with
// Universal Singular Value Thresholding (USVT).
//
// Overview:
//
//   - One or several binary adjacency observations of the same n vertices are
//     averaged into a single matrix A.
//   - A full singular value decomposition A = U·diag(s)·Vᵀ is computed.
//   - Every singular triplet with sᵢ ≥ (2+eta)·√n is retained.
//   - The retained triplets are summed back into a low-rank matrix which is
//     clipped into [0,1], giving the estimated edge-probability matrix.
//
// Options:
//
//   - WithEta:        control parameter, finite and strictly inside (0,1). Default DefaultEta.
//   - WithDecomposer: spectral backend. Default GonumSVD; JacobiSVD handles symmetric input
//     without LAPACK-style routines.
//   - WithLogger:     logrus.FieldLogger receiving Debug diagnostics. Default logrus.StandardLogger().
//
// Errors (sentinel):
//
//   - ErrInvalidInput:     an observation is not a valid adjacency matrix, or a collection
//     is malformed. The precise matrix sentinel (matrix.ErrAsymmetry, matrix.ErrNonBinary…)
//     is wrapped alongside it.
//   - ErrEmptyCollection:  a MultipleObservations with no members (also ErrInvalidInput).
//   - ErrInvalidParameter: eta is NaN, infinite or outside (0,1).
//   - ErrDecomposition:    the spectral decomposition failed; fatal for the call.
//
// Example usage:
//
//	res, err := usvt.EstimateMatrix(adj, usvt.WithEta(0.05))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Rank, res.Threshold)
//	fmt.Print(res.Probability)
package usvt
