// SPDX-License-Identifier: MIT
package reduceweights_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sqsgen/pairkernel"
	"github.com/katalvlaran/sqsgen/reduceweights"
	"github.com/katalvlaran/sqsgen/sqssettings"
	"github.com/stretchr/testify/require"
)

func TestBuildReindex_UpperTriangleOnly(t *testing.T) {
	reindex := reduceweights.BuildReindex(3)

	require.Equal(t, -1, reindex[1*3+0], "below-diagonal entries must be -1")
	require.Equal(t, -1, reindex[2*3+1])

	seen := map[int]bool{}
	for si := 0; si < 3; si++ {
		for sj := si; sj < 3; sj++ {
			idx := reindex[si*3+sj]
			require.GreaterOrEqual(t, idx, 0)
			require.False(t, seen[idx], "flat indices must be unique")
			seen[idx] = true
		}
	}
	require.Len(t, seen, 6) // P = 3*4/2
}

// symmetricRandomTensor builds a random K x S x S tensor that is symmetric
// in the species axes, for Scenario F's expand(reduce(T)) == T round-trip.
func symmetricRandomTensor(rng *rand.Rand, k, s int) [][][]float64 {
	t := make([][][]float64, k)
	for shell := 0; shell < k; shell++ {
		t[shell] = make([][]float64, s)
		for i := range t[shell] {
			t[shell][i] = make([]float64, s)
		}
		for i := 0; i < s; i++ {
			for j := i; j < s; j++ {
				v := rng.Float64()
				t[shell][i][j] = v
				t[shell][j][i] = v
			}
		}
	}

	return t
}

func TestExpandReduce_RoundTrip_ScenarioF(t *testing.T) {
	const k, s = 3, 4
	rng := rand.New(rand.NewSource(7))

	targets := symmetricRandomTensor(rng, k, s)
	prefactors := symmetricRandomTensor(rng, k, s)
	weightsFlat := symmetricRandomTensor(rng, 1, s)[0]

	conf := make([]uint8, s)
	for i := range conf {
		conf[i] = uint8(i)
	}
	shells := make([]int, k)
	shellWeights := make([]float64, k)
	for i := range shells {
		shells[i] = i
		shellWeights[i] = 1
	}

	settings, err := sqssettings.New(
		sqssettings.WithPackedConfiguration(conf),
		sqssettings.WithPairList([]pairkernel.PairEntry{}),
		sqssettings.WithShellWeights(shells, shellWeights),
		sqssettings.WithParameterWeights(weightsFlat),
		sqssettings.WithPrefactors(prefactors),
		sqssettings.WithTargetObjective(targets),
	)
	require.NoError(t, err)

	reindex := reduceweights.BuildReindex(s)
	npars, _, _, targetsFlat := reduceweights.Reduce(settings, reindex)
	require.Equal(t, s*(s+1)/2, npars)

	expanded := reduceweights.Expand(targetsFlat, s, k, reindex)
	for shell := 0; shell < k; shell++ {
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				require.InDelta(t, targets[shell][i][j], expanded[shell*s*s+i*s+j], 1e-12)
			}
		}
	}
}
