// SPDX-License-Identifier: MIT
package reduceweights

import "github.com/samber/lo"

// BuildReindex constructs the upper-triangular packing table for numSpecies
// species: reindex[si*numSpecies+sj] holds the flat index 0..P-1 for the
// pair (si,sj) when si<=sj, and -1 for every below-diagonal position, which
// must never be addressed.
//
// Complexity: O(S^2) time and space.
func BuildReindex(numSpecies int) []int {
	reindex := lo.RepeatBy(numSpecies*numSpecies, func(_ int) int { return -1 })

	idx := 0
	for si := 0; si < numSpecies; si++ {
		for sj := si; sj < numSpecies; sj++ {
			reindex[si*numSpecies+sj] = idx
			idx++
		}
	}

	return reindex
}
