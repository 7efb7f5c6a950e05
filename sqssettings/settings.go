// SPDX-License-Identifier: MIT
package sqssettings

import (
	"math/big"

	"github.com/katalvlaran/sqsgen/pairkernel"
)

// Settings is the immutable, read-only problem description shared by every
// search worker. Construct with New; there is no mutator after that.
type Settings struct {
	numAtoms   int
	numSpecies int
	numShells  int

	packedConfiguration []uint8
	speciesMapping      []int
	pairList            []pairkernel.PairEntry
	activeShells        []int
	shellWeights        []float64
	parameterWeights    [][]float64
	prefactors          [][][]float64
	targetObjective     [][][]float64

	numIterations           *big.Int
	numOutputConfigurations int
	mode                    Mode
}

// New validates and freezes a config built from opts into a Settings.
func New(opts ...Option) (*Settings, error) {
	c := newConfig()
	for _, opt := range opts {
		opt(&c)
	}

	if err := validate(&c); err != nil {
		return nil, err
	}

	numSpecies := len(c.parameterWeights)
	numShells := len(c.activeShells)

	return &Settings{
		numAtoms:                len(c.packedConfiguration),
		numSpecies:              numSpecies,
		numShells:               numShells,
		packedConfiguration:     c.packedConfiguration,
		speciesMapping:          c.speciesMapping,
		pairList:                c.pairList,
		activeShells:            c.activeShells,
		shellWeights:            c.shellWeights,
		parameterWeights:        c.parameterWeights,
		prefactors:              c.prefactors,
		targetObjective:         c.targetObjective,
		numIterations:           c.numIterations,
		numOutputConfigurations: c.numOutputConfigurations,
		mode:                    c.mode,
	}, nil
}

// NumAtoms returns N, the site count.
func (s *Settings) NumAtoms() int { return s.numAtoms }

// NumSpecies returns S, the number of distinct species.
func (s *Settings) NumSpecies() int { return s.numSpecies }

// NumShells returns K, the number of active shells.
func (s *Settings) NumShells() int { return s.numShells }

// NumIterations returns the random-mode iteration budget (ignored in
// systematic mode).
func (s *Settings) NumIterations() *big.Int { return s.numIterations }

// NumOutputConfigurations returns the result buffer's capacity M.
func (s *Settings) NumOutputConfigurations() int { return s.numOutputConfigurations }

// Mode returns the search mode.
func (s *Settings) Mode() Mode { return s.mode }

// PackedConfiguration returns a copy of the starting configuration.
func (s *Settings) PackedConfiguration() []uint8 {
	return append([]uint8(nil), s.packedConfiguration...)
}

// UnpackConfiguration maps a packed configuration's species indices back to
// external species identifiers via the packing vector recorded at
// construction. If no species mapping was supplied, packed indices are
// returned verbatim.
func (s *Settings) UnpackConfiguration(conf []uint8) []int {
	out := make([]int, len(conf))
	for i, sp := range conf {
		if s.speciesMapping == nil {
			out[i] = int(sp)
			continue
		}
		out[i] = s.speciesMapping[sp]
	}

	return out
}

// ShellIndicesAndWeights returns the active shell ids and their aligned
// weights, in the order WeightReducer must also iterate.
func (s *Settings) ShellIndicesAndWeights() ([]int, []float64) {
	return s.activeShells, s.shellWeights
}

// PairList returns the flattened neighbor-pair list.
func (s *Settings) PairList() []pairkernel.PairEntry {
	return s.pairList
}

// ParameterPrefactors returns the K x S x S prefactor tensor.
func (s *Settings) ParameterPrefactors() [][][]float64 {
	return s.prefactors
}

// ParameterWeights returns the S x S parameter-weight matrix.
func (s *Settings) ParameterWeights() [][]float64 {
	return s.parameterWeights
}

// TargetObjective returns the K x S x S target SRO tensor.
func (s *Settings) TargetObjective() [][][]float64 {
	return s.targetObjective
}
