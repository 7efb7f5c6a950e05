// SPDX-License-Identifier: MIT
package multisetrank

import "math/big"

// Rank computes the lexicographic rank of conf among all permutations of its
// multiset, as an integer in [0, TotalPermutations(Histogram(conf, S))).
//
// Algorithm: scan left to right. At position p, with L = N-p sites
// remaining and h the histogram of the as-yet-unplaced suffix, every
// species s < conf[p] present in h contributes a block of
// remaining·h[s]/L permutations — the count of arrangements of the
// remaining multiset that would begin with s — to the rank. remaining
// itself is reduced to that same block once conf[p]'s own species is
// consumed, since the block count IS the total-permutations of the
// suffix histogram after decrementing h[conf[p]].
//
// Complexity: O(N·S) big-int operations.
func Rank(conf []uint8, numSpecies int) (*big.Int, error) {
	hist, err := Histogram(conf, numSpecies)
	if err != nil {
		return nil, err
	}

	h := append([]int(nil), hist...)
	remaining := TotalPermutations(hist)
	rank := new(big.Int)
	bigL := new(big.Int)

	n := len(conf)
	for p, l := 0, n; p < n; p, l = p+1, l-1 {
		cs := int(conf[p])
		bigL.SetInt64(int64(l))
		for s := 0; s < cs; s++ {
			if h[s] == 0 {
				continue
			}
			block := blockCount(remaining, h[s], l)
			rank.Add(rank, block)
		}
		remaining = blockCount(remaining, h[cs], l)
		h[cs]--
	}

	return rank, nil
}

// blockCount returns remaining·count/length, the number of permutations of
// the current suffix that begin with a species occurring count times in a
// suffix of the given length.
func blockCount(remaining *big.Int, count, length int) *big.Int {
	block := new(big.Int).Mul(remaining, big.NewInt(int64(count)))
	block.Div(block, big.NewInt(int64(length)))

	return block
}
