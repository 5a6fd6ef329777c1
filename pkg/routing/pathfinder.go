package routing

import (
	"math"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/internal/util/heap"
)

// FindRoute snaps origin and destination to their nearest graph nodes and
// returns the single cheapest route under the given weight metric.
//
// When the metric is travel_time the search is A* with the great-circle
// distance to the destination divided by the network's maximum assumed
// speed as the heuristic: an admissible lower bound on the remaining time.
// For any other metric (scenic_cost is not bounded by distance) the
// heuristic is zero and the search degenerates to Dijkstra, which stays
// optimal without the pruning.
//
// Callers that need a consistent view across several searches hold the
// graph's read lock around them.
func FindRoute(g *graph.Graph, origin, destination geo.Point, w graph.Weight) (Route, error) {
	src, dst, err := snapEndpoints(g, origin, destination)
	if err != nil {
		return Route{}, err
	}

	nodes, cost, ok := search(g, g.Out, src, dst, w, heuristicFor(g, dst, w), nil, nil)
	if !ok {
		return Route{}, &NoPathFoundError{From: g.Nodes[src].ID, To: g.Nodes[dst].ID}
	}
	return Route{Nodes: nodes, Cost: cost, Weight: w}, nil
}

func snapEndpoints(g *graph.Graph, origin, destination geo.Point) (int, int, error) {
	if !g.InBounds(origin) || !g.InBounds(destination) {
		return 0, 0, ErrInvalidCoordinate
	}
	src, ok := g.NearestNode(origin)
	if !ok {
		return 0, 0, ErrNoRoutableNode
	}
	dst, ok := g.NearestNode(destination)
	if !ok {
		return 0, 0, ErrNoRoutableNode
	}
	return src, dst, nil
}

// heuristicFor returns the admissible remaining-cost estimate for a weight
// metric.
func heuristicFor(g *graph.Graph, dst int, w graph.Weight) func(int) float64 {
	if w != graph.TravelTime {
		return nil
	}
	target := g.Point(dst)
	return func(node int) float64 {
		return geo.Distance(g.Point(node), target) / maxSpeedMPS
	}
}

// search runs a best-first shortest-path search from src to dst over the
// given adjacency list. h may be nil for a zero heuristic. blockedNode and
// blockedEdge, both optional, mask out parts of the graph; the candidate
// generator uses them for its deviation searches.
func search(g *graph.Graph, adj [][]*graph.Edge, src, dst int, w graph.Weight,
	h func(int) float64, blockedNode map[int]bool, blockedEdge map[[2]int]bool) ([]int, float64, bool) {

	dist := make([]float64, len(g.Nodes))
	for i := range dist {
		dist[i] = math.MaxFloat64
	}
	dist[src] = 0

	cameFrom := make(map[int]int)
	visited := make([]bool, len(g.Nodes))

	frontier := heap.NewImplicitHeapMin()
	frontier.Push(estimate(0, src, h), src)

	for frontier.Len() > 0 {
		current, _ := frontier.Pop()
		if current == dst {
			return reconstruct(cameFrom, src, dst), dist[dst], true
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, e := range adj[current] {
			next := e.To
			if visited[next] || blockedNode[next] || blockedEdge[[2]int{current, next}] {
				continue
			}
			tentative := dist[current] + e.Cost(w)
			if tentative < dist[next] {
				dist[next] = tentative
				cameFrom[next] = current
				frontier.Push(estimate(tentative, next, h), next)
			}
		}
	}
	return nil, 0, false
}

func estimate(cost float64, node int, h func(int) float64) float64 {
	if h == nil {
		return cost
	}
	return cost + h(node)
}

func reconstruct(cameFrom map[int]int, src, dst int) []int {
	var rev []int
	for n := dst; ; {
		rev = append(rev, n)
		if n == src {
			break
		}
		n = cameFrom[n]
	}
	nodes := make([]int, len(rev))
	for i, n := range rev {
		nodes[len(rev)-1-i] = n
	}
	return nodes
}
