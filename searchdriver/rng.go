// SPDX-License-Identifier: MIT
package searchdriver

import (
	"math/rand"
	"sync"
	"time"
)

// seedMu guards the coarse time source. Go's time.Now() is goroutine-safe,
// unlike the C source's srand/rand pair, but the critical section is kept
// anyway so every worker observes a distinct, monotonically-advancing
// instant rather than racing to read the same nanosecond — see spec.md §5
// ("Seeding occurs inside a critical section because the time source is
// not guaranteed reentrant").
var seedMu sync.Mutex

// workerSeed derives a statistically independent seed for workerID from a
// coarse time source, following tsp.deriveRNG's SplitMix64-style mixer:
// determinism is not required (spec.md §5), only stream independence.
func workerSeed(workerID int) int64 {
	seedMu.Lock()
	now := time.Now().UnixNano()
	seedMu.Unlock()

	return mixSeed(now, uint64(workerID+1))
}

// mixSeed applies a SplitMix64-style finalizer to decorrelate a base
// timestamp from a small worker-id stream identifier.
func mixSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// newWorkerRNG returns a *rand.Rand private to one worker.
func newWorkerRNG(workerID int) *rand.Rand {
	return rand.New(rand.NewSource(workerSeed(workerID)))
}

// shuffleConfiguration performs an in-place Fisher-Yates shuffle of conf
// using rng.
func shuffleConfiguration(conf []uint8, rng *rand.Rand) {
	for i := len(conf) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		conf[i], conf[j] = conf[j], conf[i]
	}
}
