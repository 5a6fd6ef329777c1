package routing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/graph"
)

// GenerateCandidates enumerates up to k loopless routes between two points
// in ascending order of total cost under the given weight metric, using
// deviation-based shortest simple path enumeration (Yen). The multigraph is
// collapsed to a simple directed view first, keeping the cheapest parallel
// edge per node pair — simple-path enumeration is not defined over
// multigraphs, and the cheapest edge is the bound-preserving reduction.
//
// Fewer than k routes are returned when the enumeration is exhausted. If no
// path connects the endpoints the candidate set is empty; the caller
// decides whether that is an error.
func GenerateCandidates(g *graph.Graph, origin, destination geo.Point, w graph.Weight, k int) ([]Route, error) {
	src, dst, err := snapEndpoints(g, origin, destination)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, nil
	}

	view := g.SimpleView(w)

	first, cost, ok := search(g, view, src, dst, w, nil, nil, nil)
	if !ok {
		return nil, nil
	}

	found := []Route{{Nodes: first, Cost: cost, Weight: w}}
	seen := map[string]bool{pathKey(first): true}

	// Pool of deviation candidates not yet promoted.
	var pool []Route

	for len(found) < k {
		prev := found[len(found)-1].Nodes

		for i := 0; i < len(prev)-1; i++ {
			spurNode := prev[i]
			rootPath := prev[:i+1]
			rootCost := pathCost(view, rootPath, w)

			// Mask the outgoing edge of every already-found route that
			// shares this root, so the spur search must deviate.
			blockedEdge := make(map[[2]int]bool)
			for _, r := range found {
				if len(r.Nodes) > i+1 && samePrefix(r.Nodes, rootPath) {
					blockedEdge[[2]int{r.Nodes[i], r.Nodes[i+1]}] = true
				}
			}

			// Root nodes other than the spur node are off limits: the
			// result must stay loopless.
			blockedNode := make(map[int]bool, i)
			for _, n := range rootPath[:i] {
				blockedNode[n] = true
			}

			spurPath, spurCost, ok := search(g, view, spurNode, dst, w, nil, blockedNode, blockedEdge)
			if !ok {
				continue
			}

			total := make([]int, 0, len(rootPath)+len(spurPath)-1)
			total = append(total, rootPath...)
			total = append(total, spurPath[1:]...)

			key := pathKey(total)
			if seen[key] {
				continue
			}
			seen[key] = true
			pool = append(pool, Route{Nodes: total, Cost: rootCost + spurCost, Weight: w})
		}

		if len(pool) == 0 {
			break // exhausted before reaching k
		}

		sort.SliceStable(pool, func(a, b int) bool { return pool[a].Cost < pool[b].Cost })
		found = append(found, pool[0])
		pool = pool[1:]
	}

	return found, nil
}

func pathCost(view [][]*graph.Edge, nodes []int, w graph.Weight) float64 {
	total := 0.0
	for i := 0; i < len(nodes)-1; i++ {
		for _, e := range view[nodes[i]] {
			if e.To == nodes[i+1] {
				total += e.Cost(w)
				break
			}
		}
	}
	return total
}

func samePrefix(nodes, prefix []int) bool {
	if len(nodes) < len(prefix) {
		return false
	}
	for i := range prefix {
		if nodes[i] != prefix[i] {
			return false
		}
	}
	return true
}

func pathKey(nodes []int) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
