// SPDX-License-Identifier: MIT
package pairkernel

// PairEntry is a single (site_i, site_j, shell) triple from the externally
// derived neighbor-pair list. I and J index into a configuration; Shell
// indexes into the active-shell set held by sqssettings.
type PairEntry struct {
	I     int
	J     int
	Shell int
}
