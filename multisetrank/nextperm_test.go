// SPDX-License-Identifier: MIT
package multisetrank_test

import (
	"testing"

	"github.com/katalvlaran/sqsgen/multisetrank"
	"github.com/stretchr/testify/require"
)

// speciesFromHist returns a sorted (lexicographically smallest) configuration for
// the given histogram.
func speciesFromHist(hist []int) []uint8 {
	var conf []uint8
	for s, c := range hist {
		for i := 0; i < c; i++ {
			conf = append(conf, uint8(s))
		}
	}

	return conf
}

// TestNextPermutation_EnumeratesTotalPermutations is Scenario D: NextPermutation
// enumerates exactly total_permutations(h) distinct, strictly increasing
// configurations from the sorted multiset before returning false.
func TestNextPermutation_EnumeratesTotalPermutations(t *testing.T) {
	hist := []int{3, 2, 2}
	total := multisetrank.TotalPermutations(hist)

	conf := speciesFromHist(hist)
	seen := map[string]bool{}
	count := 0
	var prevRank int64 = -1
	for {
		key := string(conf)
		require.False(t, seen[key], "duplicate configuration emitted")
		seen[key] = true
		count++

		r, err := multisetrank.Rank(conf, len(hist))
		require.NoError(t, err)
		require.Greater(t, r.Int64(), prevRank, "ranks must strictly increase")
		prevRank = r.Int64()

		if !multisetrank.NextPermutation(conf) {
			break
		}
	}

	require.Equal(t, total.Int64(), int64(count))
}

// TestNextPermutation_SingleSpeciesTerminatesImmediately covers the boundary
// case where the sorted (and only) permutation is already terminal.
func TestNextPermutation_SingleSpeciesTerminatesImmediately(t *testing.T) {
	conf := []uint8{0, 0}
	require.False(t, multisetrank.NextPermutation(conf))
}
