// SPDX-License-Identifier: MIT

package usvt

import "errors"

// Sentinel errors returned by the estimator.
var (
	// ErrInvalidInput indicates an observation or collection that violates the adjacency invariants.
	ErrInvalidInput = errors.New("usvt: invalid input")

	// ErrEmptyCollection indicates a MultipleObservations value with no members.
	ErrEmptyCollection = errors.New("usvt: empty adjacency collection")

	// ErrInvalidParameter indicates an eta outside the open interval (0,1).
	ErrInvalidParameter = errors.New("usvt: invalid parameter")

	// ErrDecomposition indicates that the singular value decomposition could not be computed.
	ErrDecomposition = errors.New("usvt: decomposition failed")
)
