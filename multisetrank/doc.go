// SPDX-License-Identifier: MIT
// Package multisetrank implements the lexicographic ranking/unranking
// bijection between permutations of a fixed multiset and arbitrary-precision
// integers in [0, N!/∏nᵢ!).
//
// A "configuration" here is a slice of species indices (0..S-1), one per
// lattice site. The multiset of species a configuration carries — its
// histogram — never changes across Rank/Unrank/NextPermutation; only the
// arrangement does. All counting uses math/big because N! overflows a
// uint64 well before N reaches a few dozen sites.
//
// Complexity: Rank and Unrank are both O(N·S); NextPermutation is O(N).
package multisetrank
