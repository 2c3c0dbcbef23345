// SPDX-License-Identifier: MIT

package ioformat

import "errors"

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unsupported input or output format name.
	ErrUnknownFormat = errors.New("ioformat: unknown format")

	// ErrMalformed indicates input that cannot be decoded into observations.
	ErrMalformed = errors.New("ioformat: malformed input")
)
