// SPDX-License-Identifier: MIT
package reduceweights

import "github.com/katalvlaran/sqsgen/sqssettings"

// Reduce flattens settings' symmetric S x S and K x S x S tensors into the
// upper-triangular layout pairkernel consumes, using reindex (built by
// BuildReindex over the same species count).
//
// It returns npars = P = S(S+1)/2 and three length-K*P slices: prefactors,
// weights (shell_weight * parameter_weight, pre-multiplied so pairkernel
// never needs the shell weight separately), and targets.
//
// Complexity: O(K*S^2).
func Reduce(settings *sqssettings.Settings, reindex []int) (npars int, prefactors, weights, targets []float64) {
	numSpecies := settings.NumSpecies()
	numShells := settings.NumShells()
	npars = numSpecies * (numSpecies + 1) / 2
	size := numShells * npars

	prefactors = make([]float64, size)
	weights = make([]float64, size)
	targets = make([]float64, size)

	_, shellWeights := settings.ShellIndicesAndWeights()
	prefactorsFull := settings.ParameterPrefactors()
	targetsFull := settings.TargetObjective()
	weightsFull := settings.ParameterWeights()

	for shell := 0; shell < numShells; shell++ {
		shellWeight := shellWeights[shell]
		offset := shell * npars
		for si := 0; si < numSpecies; si++ {
			for sj := si; sj < numSpecies; sj++ {
				flat := reindex[si*numSpecies+sj]
				prefactors[offset+flat] = prefactorsFull[shell][si][sj]
				targets[offset+flat] = targetsFull[shell][si][sj]
				weights[offset+flat] = shellWeight * weightsFull[si][sj]
			}
		}
	}

	return npars, prefactors, weights, targets
}
