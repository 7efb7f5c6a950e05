// SPDX-License-Identifier: MIT
package resultbuffer_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/sqsgen/resultbuffer"
	"github.com/stretchr/testify/require"
)

func TestBuffer_RingEvictsOldest(t *testing.T) {
	b := resultbuffer.NewBuffer(2)
	b.Push(resultbuffer.Candidate{Objective: 1})
	b.Push(resultbuffer.Candidate{Objective: 2})
	b.Push(resultbuffer.Candidate{Objective: 3})

	got := b.Drain()
	require.Len(t, got, 2)
	require.Equal(t, 2.0, got[0].Objective, "oldest entry (1) should have been evicted")
	require.Equal(t, 3.0, got[1].Objective)
}

// TestBuffer_CapacityOne covers the boundary behavior: after the first
// push, the buffer always holds exactly the most recent improvement.
func TestBuffer_CapacityOne(t *testing.T) {
	b := resultbuffer.NewBuffer(1)
	b.Push(resultbuffer.Candidate{Objective: 0.5})
	b.Push(resultbuffer.Candidate{Objective: 0.1})

	got := b.Drain()
	require.Len(t, got, 1)
	require.Equal(t, 0.1, got[0].Objective)
}

func TestBuffer_BestWatermark(t *testing.T) {
	b := resultbuffer.NewBuffer(4)
	require.True(t, b.Best() > 1e300, "initial watermark should be +Inf")

	b.SetBest(0.25)
	require.Equal(t, 0.25, b.Best())
}

// TestBuffer_ConcurrentPush exercises many goroutines pushing simultaneously,
// mirroring core's TestConcurrentAddEdge shape: no data race, every push
// observed somewhere in the final snapshot's count accounting.
func TestBuffer_ConcurrentPush(t *testing.T) {
	const n = 200
	b := resultbuffer.NewBuffer(50)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			b.Push(resultbuffer.Candidate{Objective: float64(i)})
		}(i)
	}
	wg.Wait()

	got := b.Drain()
	require.Len(t, got, 50, "ring should be full and saturated after 200 pushes into a 50-capacity buffer")
}
