// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sqsgen/pairkernel"
	"github.com/katalvlaran/sqsgen/sqssettings"
)

// fileConfig is the YAML-facing shape of a search request. Fields are
// decoded loosely (interface{} first, then mapstructure) so the YAML
// author can write shells as a simple map rather than hand-align two
// parallel arrays, following RawModelInput's raw-then-typed two-step.
type fileConfig struct {
	Configuration    []uint8         `mapstructure:"configuration"`
	SpeciesMapping   []int           `mapstructure:"species_mapping"`
	Pairs            []rawPair       `mapstructure:"pairs"`
	Shells           map[int]float64 `mapstructure:"shells"`
	ParameterWeights [][]float64     `mapstructure:"parameter_weights"`
	Prefactors       [][][]float64   `mapstructure:"prefactors"`
	TargetObjective  [][][]float64   `mapstructure:"target_objective"`
	Mode             string          `mapstructure:"mode"`
	NumIterations    uint64          `mapstructure:"num_iterations"`
	NumOutputs       int             `mapstructure:"num_output_configurations"`
	Workers          int             `mapstructure:"workers"`
}

type rawPair struct {
	I     int `mapstructure:"i"`
	J     int `mapstructure:"j"`
	Shell int `mapstructure:"shell"`
}

// loadFileConfig reads a YAML search request from path and decodes it into
// a fileConfig, mirroring RawModelInput's yaml/json-to-interface{}-to-
// mapstructure pipeline.
func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sqsgen: reading config: %w", err)
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("sqsgen: parsing yaml: %w", err)
	}

	var cfg fileConfig
	if err := mapstructure.Decode(generic, &cfg); err != nil {
		return nil, fmt.Errorf("sqsgen: decoding config: %w", err)
	}

	return &cfg, nil
}

// toOptions materializes a fileConfig into the sqssettings.Option list
// New consumes, translating the YAML's shell-id -> weight map into the
// parallel activeShells/weights slices ShellWeights wants.
func (c *fileConfig) toOptions() []sqssettings.Option {
	opts := []sqssettings.Option{
		sqssettings.WithPackedConfiguration(c.Configuration),
		sqssettings.WithPairList(c.toPairList()),
		sqssettings.WithParameterWeights(c.ParameterWeights),
		sqssettings.WithPrefactors(c.Prefactors),
		sqssettings.WithTargetObjective(c.TargetObjective),
		sqssettings.WithMode(c.toMode()),
		sqssettings.WithNumIterations(new(big.Int).SetUint64(c.NumIterations)),
	}

	shells, weights := c.toShellWeights()
	opts = append(opts, sqssettings.WithShellWeights(shells, weights))

	if len(c.SpeciesMapping) > 0 {
		opts = append(opts, sqssettings.WithSpeciesMapping(c.SpeciesMapping))
	}
	if c.NumOutputs > 0 {
		opts = append(opts, sqssettings.WithNumOutputConfigurations(c.NumOutputs))
	}

	return opts
}

func (c *fileConfig) toPairList() []pairkernel.PairEntry {
	out := make([]pairkernel.PairEntry, len(c.Pairs))
	for i, p := range c.Pairs {
		out[i] = pairkernel.PairEntry{I: p.I, J: p.J, Shell: p.Shell}
	}

	return out
}

func (c *fileConfig) toShellWeights() ([]int, []float64) {
	shells := make([]int, 0, len(c.Shells))
	for shell := range c.Shells {
		shells = append(shells, shell)
	}
	// Deterministic order: map iteration order is randomized by the
	// runtime, but the shell ids are used only as labels — sort for
	// reproducible CLI output across runs of the same config file.
	for i := 1; i < len(shells); i++ {
		for j := i; j > 0 && shells[j-1] > shells[j]; j-- {
			shells[j-1], shells[j] = shells[j], shells[j-1]
		}
	}

	weights := make([]float64, len(shells))
	for i, shell := range shells {
		weights[i] = c.Shells[shell]
	}

	return shells, weights
}

func (c *fileConfig) toMode() sqssettings.Mode {
	if c.Mode == "random" {
		return sqssettings.Random
	}

	return sqssettings.Systematic
}

func (c *fileConfig) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return 1
}
