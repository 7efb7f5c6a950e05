// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// runSearchWithMetricsServer runs the configured search to completion,
// then serves its Prometheus registry over HTTP until interrupted,
// following telemetry.go's promhttp.Handler() wiring.
func runSearchWithMetricsServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, registry, err := buildAndRun(ctx)
	if err != nil {
		return err
	}
	slog.Info("sqsgen: search finished", slog.Int("results", len(result.Results)))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: metricsAddr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("sqsgen: metrics server stopped", slog.Any("error", err))
		}
	}()

	slog.Info("sqsgen: serving metrics", slog.String("addr", metricsAddr))
	<-ctx.Done()

	return server.Shutdown(context.Background())
}
