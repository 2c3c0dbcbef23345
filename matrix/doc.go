// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra substrate for graphon estimation.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe At/Set accessors (errors, never panics).
//   - Validators, including the adjacency predicate ValidateAdjacency / IsValidAdjacency
//     (square, symmetric, entries in {0,1}, zero diagonal).
//   - Kernels: Mul, Transpose, Scale, ScaleColumns, Outer, Mean, Clip, AllClose.
//   - Eigen: a deterministic Jacobi eigen solver for symmetric matrices.
//   - AdjacencyFromEdges: binary adjacency from an undirected edge list with a
//     lexicographic vertex order.
//   - ToGonum / FromGonum: copies to and from gonum.org/v1/gonum/mat.
//
// All errors are package sentinels (see errors.go) matched with errors.Is.
package matrix
