// SPDX-License-Identifier: MIT
// Package sqssettings holds the immutable problem description a search
// invocation is built from: the packed starting configuration, the
// neighbor-pair list, per-shell weights, and the symmetric parameter
// tensors (target SRO objectives, parameter weights, prefactors).
//
// Settings is constructed once via New(...Option) and is thereafter
// read-only — every accessor is safe to call concurrently from any number
// of search workers without synchronization, since nothing it returns is
// ever mutated after construction.
package sqssettings
