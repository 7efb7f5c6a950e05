// SPDX-License-Identifier: MIT
package searchdriver

import "errors"

// ErrNoWorkers indicates Run was asked to partition the search across zero
// or fewer workers.
var ErrNoWorkers = errors.New("searchdriver: numWorkers must be positive")
