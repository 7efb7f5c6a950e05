// SPDX-License-Identifier: MIT
package multisetrank

import "math/big"

// factorial returns n! as an arbitrary-precision integer. factorial(0) and
// factorial(1) both return 1, matching big.Int.MulRange's convention for an
// empty product.
//
// Complexity: O(n) big-int multiplications.
func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// TotalPermutations returns N! / ∏ h[s]! for histogram h, where N = sum(h).
// For an empty or single-species multiset this is 1.
//
// Complexity: O(S) big-int divisions, each O(N) in the number of digits.
func TotalPermutations(hist []int) *big.Int {
	total := factorial(sum(hist))
	for _, c := range hist {
		if c <= 1 {
			continue
		}
		total.Div(total, factorial(c))
	}

	return total
}
