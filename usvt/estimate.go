// SPDX-License-Identifier: MIT

package usvt

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphon/matrix"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of one estimation. The estimator keeps no reference to it.
type Result struct {
	// SingularValues of the averaged matrix, descending, length n.
	SingularValues []float64
	// Threshold is (2+Eta)·√n.
	Threshold float64
	// Rank is len(Retained).
	Rank int
	// Retained lists the positions of SingularValues at or above Threshold.
	Retained []int
	// Observations is the number of adjacency matrices averaged.
	Observations int
	// Eta is the control parameter used.
	Eta float64
	// Probability is the n×n estimate, every entry in [0,1].
	Probability *matrix.Dense
}

// Estimate runs USVT on the observations.
//
// Implementation:
//   - Stage 1: apply options and validate eta (ErrInvalidParameter). An option
//     that clears the decomposer yields ErrDecomposition; a cleared logger
//     falls back to logrus' standard logger.
//   - Stage 2: Average the observations (ErrInvalidInput).
//   - Stage 3: full SVD through the configured Decomposer (ErrDecomposition).
//   - Stage 4: Threshold, Retained, Reconstruct.
//   - Stage 5: clip into [0,1].
//
// There is no partial result on failure.
//
// Complexity: O(k·n²) averaging plus the O(n³) decomposition.
func Estimate(obs Observations, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Decomposer == nil {
		return nil, fmt.Errorf("%w: no decomposer configured", ErrDecomposition)
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if err := ValidateEta(o.Eta); err != nil {
		return nil, err
	}

	avg, err := Average(obs)
	if err != nil {
		return nil, err
	}
	n := avg.Rows()

	dec, err := o.Decomposer.Decompose(avg)
	if err != nil {
		if !errors.Is(err, ErrDecomposition) {
			err = fmt.Errorf("%w: %w", ErrDecomposition, err)
		}
		return nil, err
	}
	if dec == nil || len(dec.Values) != n {
		return nil, fmt.Errorf("%w: expected %d singular values", ErrDecomposition, n)
	}

	thr := Threshold(n, o.Eta)
	kept := Retained(dec.Values, thr)
	p, err := Reconstruct(dec, kept)
	if err != nil {
		return nil, err
	}
	if p, err = matrix.Clip(p, 0, 1); err != nil {
		return nil, fmt.Errorf("usvt: clip: %w", err)
	}

	o.Logger.WithFields(logrus.Fields{
		"n":            n,
		"observations": obs.Count(),
		"eta":          o.Eta,
		"threshold":    thr,
		"rank":         len(kept),
		"sigma_max":    dec.Values[0],
	}).Debug("usvt: estimate complete")

	return &Result{
		SingularValues: dec.Values,
		Threshold:      thr,
		Rank:           len(kept),
		Retained:       kept,
		Observations:   obs.Count(),
		Eta:            o.Eta,
		Probability:    p,
	}, nil
}

// EstimateMatrix is Estimate on a SingleObservation.
func EstimateMatrix(a matrix.Matrix, opts ...Option) (*Result, error) {
	return Estimate(SingleObservation{Adjacency: a}, opts...)
}

// EstimateCollection is Estimate on a MultipleObservations.
func EstimateCollection(as []matrix.Matrix, opts ...Option) (*Result, error) {
	return Estimate(MultipleObservations{Adjacencies: as}, opts...)
}
