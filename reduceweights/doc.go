// SPDX-License-Identifier: MIT
// Package reduceweights performs the one-time reduction of the symmetric
// (species × species × shell) weight, target, and prefactor tensors into
// the upper-triangular flat layout pairkernel consumes.
//
// Convention: the reduction enumerates (si, sj) with si <= sj in row-major
// order, assigning successive flat indices 0..P-1 where
// P = numSpecies*(numSpecies+1)/2. BuildReindex and pairkernel.CountPairs
// must agree on this convention — they do, by construction, since both
// address with the smaller species index first.
package reduceweights
