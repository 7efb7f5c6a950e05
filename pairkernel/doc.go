// SPDX-License-Identifier: MIT
// Package pairkernel is the innermost hot loop of the search: given a
// configuration and a flattened neighbor-pair list, it accumulates bond
// counts per (shell, species-pair) bucket and reduces them to the single
// scalar objective the driver minimizes.
//
// Both entry points are total functions over valid input — no error can
// occur once the caller has validated shapes at construction time (that
// validation lives in sqssettings and reduceweights). This package never
// allocates in CountPairs; Objective mutates its bonds argument in place
// to produce the SRO-parameter snapshot alongside the scalar it returns.
package pairkernel
