// SPDX-License-Identifier: MIT
package sqssettings

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/sqsgen/pairkernel"
)

// config aggregates every knob New assembles a Settings from. It is built up
// by applying Options in order, then validated and frozen into a Settings.
type config struct {
	packedConfiguration    []uint8
	speciesMapping         []int
	pairList               []pairkernel.PairEntry
	activeShells           []int
	shellWeights           []float64
	parameterWeights       [][]float64
	prefactors             [][][]float64
	targetObjective        [][][]float64
	numIterations          *big.Int
	numOutputConfigurations int
	mode                   Mode
}

// Option mutates a config under construction. Per lvlath convention, an
// Option may panic only on a value that is nonsensical in isolation (e.g. a
// negative capacity); anything that requires cross-field knowledge (species
// counts, shell counts) is validated once in New.
type Option func(*config)

// defaultNumOutputConfigurations mirrors a conservative top-N collector size
// when the caller does not specify one.
const defaultNumOutputConfigurations = 10

func newConfig() config {
	return config{
		numIterations:           big.NewInt(0),
		numOutputConfigurations: defaultNumOutputConfigurations,
		mode:                    Systematic,
	}
}

// WithPackedConfiguration sets the starting configuration (species indices,
// one per site). Required; New rejects a zero-length slice.
func WithPackedConfiguration(conf []uint8) Option {
	return func(c *config) {
		c.packedConfiguration = append([]uint8(nil), conf...)
	}
}

// WithSpeciesMapping records the packed-index -> external-species-id
// inverse mapping used by UnpackConfiguration. Its length must equal the
// species count S, the dimension of the parameter-weight matrix.
func WithSpeciesMapping(externalIDs []int) Option {
	return func(c *config) {
		c.speciesMapping = append([]int(nil), externalIDs...)
	}
}

// WithPairList sets the flattened neighbor-pair list. Required.
func WithPairList(pairs []pairkernel.PairEntry) Option {
	return func(c *config) {
		c.pairList = append([]pairkernel.PairEntry(nil), pairs...)
	}
}

// WithShellWeights sets the active-shell ids and their aligned weights.
// Panics if the two slices differ in length — that mismatch is a
// programmer error detectable without any other context.
func WithShellWeights(activeShells []int, weights []float64) Option {
	if len(activeShells) != len(weights) {
		panic(fmt.Sprintf("sqssettings: WithShellWeights: %d active shells but %d weights", len(activeShells), len(weights)))
	}

	return func(c *config) {
		c.activeShells = append([]int(nil), activeShells...)
		c.shellWeights = append([]float64(nil), weights...)
	}
}

// WithParameterWeights sets the S x S symmetric parameter-weight matrix.
func WithParameterWeights(weights [][]float64) Option {
	return func(c *config) {
		c.parameterWeights = cloneMatrix(weights)
	}
}

// WithPrefactors sets the K x S x S symmetric prefactor tensor.
func WithPrefactors(prefactors [][][]float64) Option {
	return func(c *config) {
		c.prefactors = cloneTensor(prefactors)
	}
}

// WithTargetObjective sets the K x S x S symmetric target SRO tensor.
func WithTargetObjective(targets [][][]float64) Option {
	return func(c *config) {
		c.targetObjective = cloneTensor(targets)
	}
}

// WithMode selects systematic or random search.
func WithMode(mode Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithNumIterations sets the iteration budget consulted only in Random mode.
func WithNumIterations(n *big.Int) Option {
	return func(c *config) {
		c.numIterations = new(big.Int).Set(n)
	}
}

// WithNumOutputConfigurations sets the result buffer's capacity. Panics on
// a non-positive value.
func WithNumOutputConfigurations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("sqssettings: WithNumOutputConfigurations: n must be positive, got %d", n))
	}

	return func(c *config) {
		c.numOutputConfigurations = n
	}
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

func cloneTensor(t [][][]float64) [][][]float64 {
	out := make([][][]float64, len(t))
	for i, m := range t {
		out[i] = cloneMatrix(m)
	}

	return out
}
