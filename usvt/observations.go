// SPDX-License-Identifier: MIT

package usvt

import (
	"fmt"

	"github.com/katalvlaran/graphon/matrix"
)

// Observations is the estimator input: either a SingleObservation or a
// MultipleObservations. The set of variants is closed.
type Observations interface {
	// Count reports how many adjacency matrices the value carries.
	Count() int

	isObservations()
}

// SingleObservation is one observed adjacency matrix.
type SingleObservation struct {
	Adjacency matrix.Matrix
}

// MultipleObservations is an ordered collection of adjacency matrices over
// the same vertex set.
type MultipleObservations struct {
	Adjacencies []matrix.Matrix
}

// Count returns 1.
func (SingleObservation) Count() int { return 1 }

// Count returns the number of members.
func (m MultipleObservations) Count() int { return len(m.Adjacencies) }

func (SingleObservation) isObservations()    {}
func (MultipleObservations) isObservations() {}

// Average collapses observations into the elementwise mean matrix.
//
// A single observation must satisfy matrix.ValidateAdjacency and is copied.
// A collection is checked in order: non-empty, equal row counts, then every
// member a valid adjacency matrix; errors name the offending member.
// The inputs are never mutated and the result is always a fresh *matrix.Dense.
//
// Every failure matches ErrInvalidInput with errors.Is, together with the
// underlying cause (ErrEmptyCollection or a matrix sentinel).
func Average(obs Observations) (*matrix.Dense, error) {
	switch o := obs.(type) {
	case SingleObservation:
		return averageSingle(o.Adjacency)
	case MultipleObservations:
		return averageMany(o.Adjacencies)
	case nil:
		return nil, fmt.Errorf("%w: no observations", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: unsupported observations %T", ErrInvalidInput, obs)
	}
}

func averageSingle(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	out, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return out, nil
}

func averageMany(as []matrix.Matrix) (*matrix.Dense, error) {
	if len(as) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyCollection)
	}

	var n int
	for i, a := range as {
		if err := matrix.ValidateNotNil(a); err != nil {
			return nil, fmt.Errorf("%w: member %d: %w", ErrInvalidInput, i, err)
		}
		if i == 0 {
			n = a.Rows()
			continue
		}
		if a.Rows() != n {
			return nil, fmt.Errorf("%w: member %d has %d rows, want %d: %w",
				ErrInvalidInput, i, a.Rows(), n, matrix.ErrDimensionMismatch)
		}
	}
	for i, a := range as {
		if err := matrix.ValidateAdjacency(a); err != nil {
			return nil, fmt.Errorf("%w: member %d: %w", ErrInvalidInput, i, err)
		}
	}

	avg, err := matrix.Mean(as...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return avg, nil
}
