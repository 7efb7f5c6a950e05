// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath      string
	workersOverride int
	metricsAddr     string

	rootCmd = &cobra.Command{
		Use:   "sqsgen",
		Short: "Generate special quasirandom structures by parallel permutation search",
		Long: `sqsgen searches the permutation space of a fixed-composition lattice
configuration for the arrangement whose short-range-order parameters best
match a target, using a worker-pool search driver split either
systematically or by random sampling.`,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a search described by a YAML configuration file",
		RunE:  runSearch,
	}

	serveCmd = &cobra.Command{
		Use:   "serve-metrics",
		Short: "Run a search and expose its Prometheus metrics on an HTTP endpoint until interrupted",
		RunE:  runSearchWithMetricsServer,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sqsgen.yaml", "path to the search configuration file")
	rootCmd.PersistentFlags().IntVar(&workersOverride, "workers", 0, "worker count override; 0 uses the value from the config file")

	serveCmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "address to serve /metrics on")

	rootCmd.AddCommand(runCmd, serveCmd)
}
