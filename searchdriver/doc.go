// SPDX-License-Identifier: MIT
// Package searchdriver partitions the permutation-rank space across
// workers, drives each worker's systematic or random iteration, calls into
// pairkernel for every candidate, and commits improvements into a shared
// resultbuffer.Buffer under the double-checked watermark pattern described
// in spec.md §9.
//
// Run is the single entry point: it fans workers out with a plain
// sync.WaitGroup (Go's scheduler makes the source's OMP barrier
// unnecessary — ranks are computed once, on the calling goroutine, before
// any worker goroutine is started, which is already a happens-before
// edge), waits for them, then drains, re-ranks, unpacks, and deduplicates
// the buffered candidates into the final result set.
package searchdriver
