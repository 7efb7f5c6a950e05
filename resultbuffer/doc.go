// SPDX-License-Identifier: MIT
// Package resultbuffer is the bounded, concurrently-written collector of
// best-so-far candidates described by spec.md §4.5: a fixed-capacity ring
// (oldest entry evicted once full, ties broken by insertion order) plus a
// shared atomic best-objective watermark workers consult under relaxed
// ordering.
//
// The ring policy — not a top-M heap — is the deliberate choice the source
// C++ engine makes (boost::circular_buffer): the reported set is biased
// toward configurations discovered near the current minimum, not toward
// the objectively lowest M values ever seen. See spec.md §9.
package resultbuffer
