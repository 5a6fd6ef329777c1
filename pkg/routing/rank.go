package routing

import (
	"math"
	"sort"

	"github.com/backroads/backroads/internal/util/graph"
)

// A RankedRoute is a candidate that survived the time budget, with its
// aggregate scores.
type RankedRoute struct {
	Route       Route
	ScenicAvg   float64
	TimeSeconds float64
}

// RankRoutes filters candidates against a time budget and sorts the
// survivors by scenic quality. The budget ceiling is the fastest time among
// the candidates themselves times budgetFactor; every retained entry
// satisfies time <= fastest * budgetFactor. Survivors are sorted by average
// scenic score descending; the sort is stable, so ties keep the candidates'
// ascending-cost order.
func RankRoutes(g *graph.Graph, candidates []Route, budgetFactor float64) []RankedRoute {
	if len(candidates) == 0 {
		return nil
	}

	times := make([]float64, len(candidates))
	fastest := math.MaxFloat64
	for i, r := range candidates {
		times[i] = r.TravelTime(g)
		if times[i] < fastest {
			fastest = times[i]
		}
	}

	var kept []RankedRoute
	for i, r := range candidates {
		if times[i] <= fastest*budgetFactor {
			kept = append(kept, RankedRoute{
				Route:       r,
				ScenicAvg:   r.ScenicAvg(g),
				TimeSeconds: times[i],
			})
		}
	}

	sort.SliceStable(kept, func(a, b int) bool { return kept[a].ScenicAvg > kept[b].ScenicAvg })
	return kept
}
