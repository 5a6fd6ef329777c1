package routing

import (
	"github.com/backroads/backroads/internal/util/graph"
)

// A Route is a loopless ordered sequence of graph node indices together
// with the total cost under the weight metric it was found with.
type Route struct {
	Nodes  []int
	Cost   float64
	Weight graph.Weight
}

// TravelTime sums travel_time over the route's edges. Parallel edges are
// resolved to the representative with the lowest value of the route's own
// weight metric.
func (r Route) TravelTime(g *graph.Graph) float64 {
	total := 0.0
	for i := 0; i < len(r.Nodes)-1; i++ {
		if e := g.Representative(r.Nodes[i], r.Nodes[i+1], r.Weight); e != nil {
			total += e.TravelTime
		}
	}
	return total
}

// ScenicAvg returns the mean scenic_score over the route's edges. A route
// with no edges averages to the neutral 0.5.
func (r Route) ScenicAvg(g *graph.Graph) float64 {
	if len(r.Nodes) < 2 {
		return 0.5
	}
	total := 0.0
	count := 0
	for i := 0; i < len(r.Nodes)-1; i++ {
		if e := g.Representative(r.Nodes[i], r.Nodes[i+1], r.Weight); e != nil {
			total += e.ScenicScore
			count++
		}
	}
	if count == 0 {
		return 0.5
	}
	return total / float64(count)
}

// ScenicSum sums scenic_score over the route's edges.
func (r Route) ScenicSum(g *graph.Graph) float64 {
	total := 0.0
	for i := 0; i < len(r.Nodes)-1; i++ {
		if e := g.Representative(r.Nodes[i], r.Nodes[i+1], r.Weight); e != nil {
			total += e.ScenicScore
		}
	}
	return total
}

// SameNodes reports whether two routes visit the same node sequence.
func (r Route) SameNodes(other Route) bool {
	if len(r.Nodes) != len(other.Nodes) {
		return false
	}
	for i := range r.Nodes {
		if r.Nodes[i] != other.Nodes[i] {
			return false
		}
	}
	return true
}
