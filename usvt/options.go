// SPDX-License-Identifier: MIT

package usvt

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultEta is the control parameter used when WithEta is not given.
const DefaultEta = 0.01

// Options configures Estimate.
//
// Eta        – threshold slack, the threshold is (2+Eta)·√n. Must lie in (0,1).
// Decomposer – spectral backend producing the full SVD of the averaged matrix.
// Logger     – destination of Debug-level diagnostics.
type Options struct {
	Eta        float64
	Decomposer Decomposer
	Logger     logrus.FieldLogger
}

// Option represents a functional option for configuring Estimate.
type Option func(*Options)

// DefaultOptions returns eta = DefaultEta, the GonumSVD decomposer and
// logrus' standard logger.
func DefaultOptions() Options {
	return Options{
		Eta:        DefaultEta,
		Decomposer: GonumSVD{},
		Logger:     logrus.StandardLogger(),
	}
}

// WithEta sets the control parameter. The value is checked by Estimate,
// which reports an out-of-range eta as ErrInvalidParameter.
func WithEta(eta float64) Option {
	return func(o *Options) {
		o.Eta = eta
	}
}

// WithDecomposer replaces the spectral backend. Panics on nil.
func WithDecomposer(d Decomposer) Option {
	if d == nil {
		panic("usvt: WithDecomposer(nil)")
	}

	return func(o *Options) {
		o.Decomposer = d
	}
}

// WithLogger sets the logger used for Debug diagnostics. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("usvt: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// ValidateEta reports ErrInvalidParameter unless eta is finite and 0 < eta < 1.
func ValidateEta(eta float64) error {
	if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0 || eta >= 1 {
		return fmt.Errorf("%w: eta=%v, want 0 < eta < 1", ErrInvalidParameter, eta)
	}

	return nil
}
