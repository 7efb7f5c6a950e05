// Package sqsgen generates special quasirandom structures: it searches the
// permutation space of a fixed-composition lattice configuration for the
// arrangement whose short-range-order parameters best match a target.
//
// The search is organized into six collaborating packages:
//
//	multisetrank/  — lexicographic rank/unrank bijection over a multiset's permutations
//	pairkernel/    — bond counting and the weighted SRO objective
//	reduceweights/ — symmetric tensor <-> upper-triangular flat layout
//	sqssettings/   — immutable problem description, functional-option builder
//	resultbuffer/  — bounded concurrent ring of best candidates
//	searchdriver/  — parallel systematic/random search orchestration
//
// cmd/sqsgen is a cobra-based CLI collaborator that loads a YAML problem
// description and drives searchdriver.Run to completion.
//
//	go get github.com/katalvlaran/sqsgen
package sqsgen
