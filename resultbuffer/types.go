// SPDX-License-Identifier: MIT
package resultbuffer

// Candidate is a result as pushed by a worker: the configuration is still
// packed (species indices 0..S-1) and carries no rank — spec.md §9 treats
// the source's sentinel rank ({-1}) as better modeled by an absent field
// than a magic value, so rank assignment is left entirely to the driver's
// drain step.
type Candidate struct {
	// Objective is the weighted absolute-deviation score; lower is better.
	Objective float64

	// Configuration is a defensive copy of the worker's local configuration
	// at the moment of discovery.
	Configuration []uint8

	// Parameters is a defensive copy of the reduced (upper-triangular,
	// length K*P) SRO-parameter snapshot at the moment of discovery.
	Parameters []float64
}
