// SPDX-License-Identifier: MIT
package sqssettings_test

import (
	"testing"

	"github.com/katalvlaran/sqsgen/pairkernel"
	"github.com/katalvlaran/sqsgen/sqssettings"
	"github.com/stretchr/testify/require"
)

// scenarioBPairs returns all 6 unordered site pairs among 4 sites, in shell 0.
func scenarioBPairs() []pairkernel.PairEntry {
	var pairs []pairkernel.PairEntry
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			pairs = append(pairs, pairkernel.PairEntry{I: i, J: j, Shell: 0})
		}
	}

	return pairs
}

func scenarioBOptions() []sqssettings.Option {
	one6th := 1.0 / 6.0
	return []sqssettings.Option{
		sqssettings.WithPackedConfiguration([]uint8{0, 0, 1, 1}),
		sqssettings.WithPairList(scenarioBPairs()),
		sqssettings.WithShellWeights([]int{0}, []float64{1}),
		sqssettings.WithParameterWeights([][]float64{{1, 1}, {1, 1}}),
		sqssettings.WithPrefactors([][][]float64{{{one6th, one6th}, {one6th, one6th}}}),
		sqssettings.WithTargetObjective([][][]float64{{{0, 0}, {0, 0}}}),
		sqssettings.WithMode(sqssettings.Systematic),
	}
}

func TestNew_ScenarioB(t *testing.T) {
	settings, err := sqssettings.New(scenarioBOptions()...)
	require.NoError(t, err)

	require.Equal(t, 4, settings.NumAtoms())
	require.Equal(t, 2, settings.NumSpecies())
	require.Equal(t, 1, settings.NumShells())
	require.Equal(t, sqssettings.Systematic, settings.Mode())

	shells, weights := settings.ShellIndicesAndWeights()
	require.Equal(t, []int{0}, shells)
	require.Equal(t, []float64{1}, weights)
}

func TestNew_RejectsEmptyConfiguration(t *testing.T) {
	_, err := sqssettings.New(sqssettings.WithParameterWeights([][]float64{{1}}))
	require.ErrorIs(t, err, sqssettings.ErrEmptyConfiguration)
}

func TestNew_RejectsNoSpecies(t *testing.T) {
	_, err := sqssettings.New(sqssettings.WithPackedConfiguration([]uint8{0}))
	require.ErrorIs(t, err, sqssettings.ErrNoSpecies)
}

func TestNew_RejectsNoActiveShells(t *testing.T) {
	_, err := sqssettings.New(
		sqssettings.WithPackedConfiguration([]uint8{0, 1}),
		sqssettings.WithParameterWeights([][]float64{{1, 1}, {1, 1}}),
	)
	require.ErrorIs(t, err, sqssettings.ErrNoActiveShells)
}

func TestNew_RejectsAsymmetricWeights(t *testing.T) {
	opts := scenarioBOptions()
	opts = append(opts, sqssettings.WithParameterWeights([][]float64{{1, 2}, {3, 1}}))
	_, err := sqssettings.New(opts...)
	require.ErrorIs(t, err, sqssettings.ErrAsymmetricTensor)
}

func TestNew_RejectsSiteOutOfRange(t *testing.T) {
	opts := []sqssettings.Option{
		sqssettings.WithPackedConfiguration([]uint8{0, 1}),
		sqssettings.WithParameterWeights([][]float64{{1, 1}, {1, 1}}),
		sqssettings.WithShellWeights([]int{0}, []float64{1}),
		sqssettings.WithPrefactors([][][]float64{{{1, 1}, {1, 1}}}),
		sqssettings.WithTargetObjective([][][]float64{{{0, 0}, {0, 0}}}),
		sqssettings.WithPairList([]pairkernel.PairEntry{{I: 0, J: 99, Shell: 0}}),
	}
	_, err := sqssettings.New(opts...)
	require.ErrorIs(t, err, sqssettings.ErrSiteOutOfRange)
}

func TestUnpackConfiguration_AppliesSpeciesMapping(t *testing.T) {
	opts := scenarioBOptions()
	opts = append(opts, sqssettings.WithSpeciesMapping([]int{26, 28})) // Fe, Ni
	settings, err := sqssettings.New(opts...)
	require.NoError(t, err)

	unpacked := settings.UnpackConfiguration([]uint8{0, 1, 0, 1})
	require.Equal(t, []int{26, 28, 26, 28}, unpacked)
}
