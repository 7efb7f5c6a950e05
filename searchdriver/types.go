// SPDX-License-Identifier: MIT
package searchdriver

import "math/big"

// Range is a half-open [Start, End) slice of the 0-based rank space, in
// iteration-count units for Random mode or permutation-rank units for
// Systematic mode.
type Range struct {
	Start *big.Int
	End   *big.Int
}

// Result is a discovered configuration after the driver's drain step: rank
// has been reattached, the configuration unpacked to external species ids,
// and its parameter snapshot expanded back to the full K*S*S layout.
//
// Rank is nil only if it could not be recomputed — which, for any
// configuration this package ever produces, cannot happen; it exists as a
// pointer rather than a magic sentinel value per spec.md §9.
type Result struct {
	Objective     float64
	Rank          *big.Int
	Configuration []int
	Parameters    []float64
}

// RunResult is what Run returns: the final, deduplicated result list plus
// per-worker wall-clock timings in microseconds, mirroring spec.md §6's
// Map<thread_id, Vec<microseconds>> (one measurement per worker per run).
type RunResult struct {
	Results       []Result
	ThreadTimings map[int][]int64
}
