// Package graphon estimates edge-probability structure of exchangeable
// random graphs from observed adjacency matrices.
//
// What is in the box?
//
//	A small, dependency-conscious toolkit that brings together:
//		• matrix/: dense float64 matrices, validators (including the adjacency
//		  predicate), linear-algebra kernels, a Jacobi eigen solver and a gonum bridge
//		• usvt/: the Universal Singular Value Thresholding estimator
//		• cmd/usvt: a command-line front end reading YAML, JSON or edge lists
//
// The estimator in five steps:
//
//	average observations → full SVD → keep sᵢ ≥ (2+η)·√n → rebuild → clip to [0,1]
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
//	res, err := usvt.EstimateMatrix(a, usvt.WithEta(0.1))
//	// res.Threshold ≈ 2.9698, res.Rank == 0, res.Probability is all zeros.
//
//	go get github.com/katalvlaran/graphon
package graphon
