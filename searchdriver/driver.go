// SPDX-License-Identifier: MIT
package searchdriver

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sqsgen/reduceweights"
	"github.com/katalvlaran/sqsgen/resultbuffer"
	"github.com/katalvlaran/sqsgen/sqssettings"
)

// Run partitions settings' rank space across numWorkers goroutines, lets
// each exhaust its assigned Range against a shared resultbuffer.Buffer,
// then drains and returns the deduplicated, objective-sorted result list.
//
// Run allocates a fresh prometheus.Registry per call, so it is safe to
// call repeatedly within one process (unlike promauto's global registry).
// The returned *prometheus.Registry is handed back alongside RunResult so
// a caller can scrape or assert against it; callers not interested in
// metrics may discard it.
//
// Cancellation: ctx is checked once per candidate inside each worker. A
// cancelled context yields whatever partial results the buffer holds when
// every worker has observed it — not a truncation error; spec.md treats a
// cancelled search as a valid early-terminated run, not a failure.
func Run(ctx context.Context, settings *sqssettings.Settings, numWorkers int) (*RunResult, *prometheus.Registry, error) {
	if numWorkers <= 0 {
		return nil, nil, ErrNoWorkers
	}

	runID := uuid.New()
	logger := slog.With(slog.String("run_id", runID.String()), slog.String("mode", settings.Mode().String()))

	ranges, err := ComputeRanks(settings, numWorkers)
	if err != nil {
		return nil, nil, err
	}

	hist := histogramFor(settings)

	reindex := reduceweights.BuildReindex(settings.NumSpecies())
	_, prefactors, weights, targets := reduceweights.Reduce(settings, reindex)

	m, registry := newMetrics()
	buffer := resultbuffer.NewBuffer(settings.NumOutputConfigurations())

	env := &workerEnv{
		settings:   settings,
		hist:       hist,
		total:      totalForMode(settings),
		pairList:   settings.PairList(),
		reindex:    reindex,
		prefactors: prefactors,
		weights:    weights,
		targets:    targets,
		buffer:     buffer,
		metrics:    m,
	}

	logger.Info("search starting", slog.Int("workers", numWorkers))

	outcomes := make([]workerOutcome, numWorkers)
	var wg sync.WaitGroup
	for t := 0; t < numWorkers; t++ {
		wg.Add(1)
		go func(workerID int, rng Range) {
			defer wg.Done()
			outcomes[workerID] = runWorker(ctx, workerID, env, rng)
		}(t, ranges[t])
	}
	wg.Wait()

	timings := make(map[int][]int64, numWorkers)
	for t, o := range outcomes {
		timings[t] = []int64{o.elapsed.Microseconds()}
	}

	results, err := drain(settings, buffer.Drain(), reindex)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("search finished",
		slog.Int("results", len(results)),
		slog.Float64("best_objective", buffer.Best()),
	)

	return &RunResult{Results: results, ThreadTimings: timings}, registry, nil
}

// histogramFor computes the species histogram of settings' starting
// configuration, the input every worker's unrank call needs in systematic
// mode. Random-mode workers never unrank, but the histogram is cheap
// enough to always compute rather than branch on mode twice.
func histogramFor(settings *sqssettings.Settings) []int {
	hist := make([]int, settings.NumSpecies())
	for _, sp := range settings.PackedConfiguration() {
		hist[sp]++
	}

	return hist
}
