// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sqsgen/searchdriver"
	"github.com/katalvlaran/sqsgen/sqssettings"
)

// presentableResult mirrors searchdriver.Result with Rank rendered as a
// decimal string — big.Int exposes no yaml.Marshaler, and reflecting over
// its unexported fields would print nothing useful.
type presentableResult struct {
	Objective     float64   `yaml:"objective"`
	Rank          string    `yaml:"rank"`
	Configuration []int     `yaml:"configuration"`
	Parameters    []float64 `yaml:"parameters"`
}

// runSearch loads a config file, runs the search to completion, and
// prints the result set as YAML to stdout.
func runSearch(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, _, err := buildAndRun(ctx)
	if err != nil {
		return err
	}

	presentable := make([]presentableResult, len(result.Results))
	for i, r := range result.Results {
		presentable[i] = presentableResult{
			Objective:     r.Objective,
			Rank:          r.Rank.String(),
			Configuration: r.Configuration,
			Parameters:    r.Parameters,
		}
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()

	return enc.Encode(presentable)
}

// buildAndRun loads configPath, constructs Settings, and drives Run to
// completion, returning both the result set and its metrics registry.
func buildAndRun(ctx context.Context) (*searchdriver.RunResult, *prometheus.Registry, error) {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	settings, err := sqssettings.New(cfg.toOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("sqsgen: invalid configuration: %w", err)
	}

	workers := cfg.workerCount()
	if workersOverride > 0 {
		workers = workersOverride
	}

	slog.Info("sqsgen: starting search", slog.String("config", configPath), slog.Int("workers", workers))

	result, registry, err := searchdriver.Run(ctx, settings, workers)
	if err != nil {
		return nil, nil, err
	}

	return result, registry, nil
}
