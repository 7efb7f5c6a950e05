// SPDX-License-Identifier: MIT
package reduceweights

// Expand inverts Reduce: given a flat length-K*P vector and the reindex
// table it was built with, it returns the full K*S*S vector with entries
// mirrored across the species diagonal. Used only at result-emission time,
// when a discovered configuration's SRO-parameter snapshot is handed back
// to the caller.
//
// Complexity: O(K*S^2).
func Expand(flat []float64, numSpecies, numShells int, reindex []int) []float64 {
	npars := numSpecies * (numSpecies + 1) / 2
	full := make([]float64, numShells*numSpecies*numSpecies)

	for shell := 0; shell < numShells; shell++ {
		offsetFull := shell * numSpecies * numSpecies
		offsetCompact := shell * npars
		for si := 0; si < numSpecies; si++ {
			for sj := si; sj < numSpecies; sj++ {
				flatIdx := reindex[si*numSpecies+sj]
				v := flat[offsetCompact+flatIdx]
				full[offsetFull+si*numSpecies+sj] = v
				if si != sj {
					full[offsetFull+sj*numSpecies+si] = v
				}
			}
		}
	}

	return full
}
