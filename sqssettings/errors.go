// SPDX-License-Identifier: MIT
package sqssettings

import "errors"

// Sentinel errors returned by New. All are InvalidInput-class: caller bugs
// rejected synchronously at construction, never surfaced from the hot loop.
var (
	// ErrEmptyConfiguration indicates the packed configuration has zero sites.
	ErrEmptyConfiguration = errors.New("sqssettings: packed configuration is empty")

	// ErrNoSpecies indicates numSpecies resolved to zero.
	ErrNoSpecies = errors.New("sqssettings: no species in composition")

	// ErrNoActiveShells indicates zero active shells (K=0) were supplied.
	ErrNoActiveShells = errors.New("sqssettings: no active shells")

	// ErrShellWeightLengthMismatch indicates active_shells and shell_weights
	// have different lengths.
	ErrShellWeightLengthMismatch = errors.New("sqssettings: active shells and shell weights length mismatch")

	// ErrSpeciesOutOfRange indicates a packed configuration entry, or a
	// tensor dimension, referenced a species index outside [0, numSpecies).
	ErrSpeciesOutOfRange = errors.New("sqssettings: species index out of range")

	// ErrSiteOutOfRange indicates a pair_list entry referenced a site index
	// outside [0, numAtoms).
	ErrSiteOutOfRange = errors.New("sqssettings: pair list site index out of range")

	// ErrShellOutOfRange indicates a pair_list entry's shell_index was >= K.
	ErrShellOutOfRange = errors.New("sqssettings: pair list shell index out of range")

	// ErrAsymmetricTensor indicates parameter_weights, prefactors, or
	// target_objective violated the required species-axis symmetry.
	ErrAsymmetricTensor = errors.New("sqssettings: parameter tensor is not symmetric")

	// ErrSpeciesMappingLengthMismatch indicates the species packing vector's
	// length did not equal numSpecies.
	ErrSpeciesMappingLengthMismatch = errors.New("sqssettings: species mapping length mismatch")

	// ErrIterationsOverflow indicates num_iterations exceeded the practical
	// uint64 range accepted for random-mode iteration counts.
	ErrIterationsOverflow = errors.New("sqssettings: num_iterations exceeds uint64 range")

	// ErrInvalidOutputCapacity indicates num_output_configurations was <= 0.
	ErrInvalidOutputCapacity = errors.New("sqssettings: num_output_configurations must be positive")
)
