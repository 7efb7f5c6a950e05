// SPDX-License-Identifier: MIT
package searchdriver

import (
	"math/big"

	"github.com/katalvlaran/sqsgen/multisetrank"
	"github.com/katalvlaran/sqsgen/sqssettings"
)

// ComputeRanks partitions [0, total) into numWorkers contiguous, non-
// overlapping half-open ranges, where total is num_iterations in Random
// mode or the multiset's total permutation count in Systematic mode.
// Integer division assigns the remainder to the last worker.
//
// Design note: spec.md describes the source's internal ranks as "1-based,
// shifted by +1" — an artifact of how the C++ engine calls its own unrank
// routine. This implementation keeps ranks 0-based throughout (matching
// multisetrank.Rank/Unrank's own convention) and has the worker consume
// its range by unranking once to Start and calling NextPermutation
// (End-Start)-1 further times; this covers exactly the same set of
// configurations with one fewer moving part. See DESIGN.md.
//
// Complexity: O(numWorkers) big-int divisions.
func ComputeRanks(settings *sqssettings.Settings, numWorkers int) ([]Range, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	total := totalForMode(settings)
	nw := big.NewInt(int64(numWorkers))
	chunk := new(big.Int).Div(total, nw)

	ranges := make([]Range, numWorkers)
	for t := 0; t < numWorkers; t++ {
		start := new(big.Int).Mul(chunk, big.NewInt(int64(t)))
		var end *big.Int
		if t == numWorkers-1 {
			end = new(big.Int).Set(total)
		} else {
			end = new(big.Int).Add(start, chunk)
		}
		ranges[t] = Range{Start: start, End: end}
	}

	return ranges, nil
}

// totalForMode returns the size of the rank space this settings invocation
// searches: num_iterations in Random mode, total_permutations(packed) in
// Systematic mode.
func totalForMode(settings *sqssettings.Settings) *big.Int {
	if settings.Mode() == sqssettings.Random {
		return settings.NumIterations()
	}

	hist, _ := multisetrank.Histogram(settings.PackedConfiguration(), settings.NumSpecies())
	return multisetrank.TotalPermutations(hist)
}
