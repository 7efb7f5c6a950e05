// SPDX-License-Identifier: MIT
package searchdriver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/sqsgen/multisetrank"
	"github.com/katalvlaran/sqsgen/reduceweights"
	"github.com/katalvlaran/sqsgen/resultbuffer"
	"github.com/katalvlaran/sqsgen/sqssettings"
)

// drain converts a buffer's raw Candidates into the public Result shape:
// rank reattached, species unpacked to external identifiers, and the
// compact parameter snapshot expanded back to the full K*S*S layout.
//
// Random mode may have pushed the same configuration from two different
// workers' independent shuffles; those are deduplicated by rank (the
// unambiguous identity of a configuration, regardless of which worker
// produced it) via lo.UniqBy, keeping the first — earliest-discovered —
// occurrence. Results are then sorted by objective, best first.
func drain(settings *sqssettings.Settings, candidates []resultbuffer.Candidate, reindex []int) ([]Result, error) {
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		rank, err := multisetrank.Rank(c.Configuration, settings.NumSpecies())
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			Objective:     c.Objective,
			Rank:          rank,
			Configuration: settings.UnpackConfiguration(c.Configuration),
			Parameters:    reduceweights.Expand(c.Parameters, settings.NumSpecies(), settings.NumShells(), reindex),
		})
	}

	if settings.Mode() == sqssettings.Random {
		results = lo.UniqBy(results, func(r Result) string { return r.Rank.String() })
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Objective < results[j].Objective })

	return results, nil
}
