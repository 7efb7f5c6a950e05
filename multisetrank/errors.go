// SPDX-License-Identifier: MIT
package multisetrank

import "errors"

// Sentinel errors for multisetrank. Callers MUST use errors.Is to branch.
var (
	// ErrEmptyConfiguration indicates a zero-length configuration was supplied
	// where at least one site is required.
	ErrEmptyConfiguration = errors.New("multisetrank: empty configuration")

	// ErrSpeciesOutOfRange indicates a configuration entry fell outside [0, numSpecies).
	ErrSpeciesOutOfRange = errors.New("multisetrank: species index out of range")

	// ErrRankOutOfRange indicates a rank fell outside [0, total). This is an
	// invariant violation: the caller asked to unrank a value the bijection
	// cannot represent.
	ErrRankOutOfRange = errors.New("multisetrank: rank out of range")

	// ErrHistogramMismatch indicates a histogram's sum disagreed with the
	// configuration length it was supposedly derived from.
	ErrHistogramMismatch = errors.New("multisetrank: histogram does not sum to configuration length")

	// ErrOutputTooShort indicates the out slice passed to Unrank cannot hold
	// the full configuration.
	ErrOutputTooShort = errors.New("multisetrank: output buffer shorter than configuration")
)
