// SPDX-License-Identifier: MIT
package searchdriver

import (
	"context"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"time"

	"github.com/katalvlaran/sqsgen/multisetrank"
	"github.com/katalvlaran/sqsgen/pairkernel"
	"github.com/katalvlaran/sqsgen/resultbuffer"
	"github.com/katalvlaran/sqsgen/sqssettings"
)

// workerEnv bundles everything read-only that every worker needs, built
// once by Run and shared (never mutated) across all worker goroutines.
type workerEnv struct {
	settings   *sqssettings.Settings
	hist       []int
	total      *big.Int
	pairList   []pairkernel.PairEntry
	reindex    []int
	prefactors []float64
	weights    []float64
	targets    []float64
	buffer     *resultbuffer.Buffer
	metrics    *metrics
}

// workerOutcome is what one worker reports back after its assigned range
// is exhausted (or cancellation cuts it short).
type workerOutcome struct {
	elapsed    time.Duration
	iterations int64
}

// runWorker executes one worker's assigned rank range: systematic mode
// unranks once to rng.Start then repeatedly applies NextPermutation;
// random mode repeatedly Fisher-Yates shuffles with a private PRNG. Every
// candidate is scored via pairkernel and, on improvement, pushed through
// the double-checked watermark pattern of spec.md §9.
func runWorker(ctx context.Context, id int, env *workerEnv, rng Range) workerOutcome {
	confLocal := env.settings.PackedConfiguration()
	params := make([]float64, len(env.prefactors))
	bestLocal := math.Inf(1)

	mode := env.settings.Mode()
	var prng *rand.Rand
	if mode == sqssettings.Random {
		prng = newWorkerRNG(id)
	} else {
		if err := multisetrank.Unrank(env.hist, env.total, rng.Start, confLocal); err != nil {
			// rng.Start was produced by ComputeRanks from the same total; an
			// out-of-range rank here is an invariant violation, not caller error.
			panic("searchdriver: invariant violation: " + err.Error())
		}
	}

	// count is carried as a big.Int for the whole loop — spec.md §9 is
	// explicit that only the inner loop counter is big-int, but a range
	// width can itself exceed int64 (num_iterations is accepted up to
	// math.MaxUint64), so truncating it to int64 before the comparison
	// would silently drop the loop to zero iterations on a valid input.
	count := new(big.Int).Sub(rng.End, rng.Start)
	one := big.NewInt(1)
	numSpecies := env.settings.NumSpecies()
	workerLabel := strconv.Itoa(id)

	start := time.Now()
	var iterations int64
	first := true
	for i := big.NewInt(0); i.Cmp(count) < 0; i.Add(i, one) {
		if ctx.Err() != nil {
			break
		}

		switch {
		case mode == sqssettings.Random:
			shuffleConfiguration(confLocal, prng)
		case !first:
			multisetrank.NextPermutation(confLocal)
		}
		first = false
		iterations++

		pairkernel.CountPairs(confLocal, env.pairList, params, env.reindex, numSpecies, true)
		objective := pairkernel.Objective(params, env.prefactors, env.weights, env.targets)

		if objective <= bestLocal {
			bestLocal = env.buffer.Best()
			if objective <= bestLocal {
				env.buffer.Push(resultbuffer.Candidate{
					Objective:     objective,
					Configuration: append([]uint8(nil), confLocal...),
					Parameters:    append([]float64(nil), params...),
				})
				env.buffer.SetBest(objective)
				bestLocal = objective

				env.metrics.candidatesAccepted.Inc()
				env.metrics.bestObjective.Set(objective)
			}
		}
	}

	elapsed := time.Since(start)
	env.metrics.configurationsEvaluated.WithLabelValues(workerLabel).Add(float64(iterations))
	env.metrics.workerDuration.WithLabelValues(workerLabel).Observe(elapsed.Seconds())

	return workerOutcome{elapsed: elapsed, iterations: iterations}
}
