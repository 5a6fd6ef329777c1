package graph

import (
	"math"
	"sort"
	"sync"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/mapdata"
)

// A Graph is a directed multigraph of road segments. Nodes carry geographic
// coordinates and the natural-feature tags found near them; edges carry the
// road classification, length and the derived weight attributes filled in by
// the weighting pass.
//
// The embedded RWMutex guards the derived edge attributes: a weight-profile
// (re)application holds the write lock, route computations hold read locks.

// Weight names a per-edge cost metric used by the searches.
type Weight string

const (
	TravelTime Weight = "travel_time"
	ScenicCost Weight = "scenic_cost"
)

type Node struct {
	ID      int64    `json:"id"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	Natural []string `json:"natural,omitempty"`
}

type Edge struct {
	From    int
	To      int
	Way     int64
	Highway string
	Name    string
	Length  float64

	// Derived attributes, owned by the weighting pass.
	TravelTime  float64
	ScenicScore float64
	ScenicCost  float64
}

// Cost returns the edge's value under the given weight metric.
func (e *Edge) Cost(w Weight) float64 {
	if w == TravelTime {
		return e.TravelTime
	}
	return e.ScenicCost
}

type Graph struct {
	sync.RWMutex

	Nodes []Node
	Out   [][]*Edge // adjacency list; parallel edges between a node pair may exist

	inDegree []int

	minLat, maxLat float64
	minLon, maxLon float64
}

// NaturalFeatureRadius is how close (meters) a natural feature must be to a
// road node to count as nearby.
const NaturalFeatureRadius = 300.0

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		minLat: math.MaxFloat64, maxLat: -math.MaxFloat64,
		minLon: math.MaxFloat64, maxLon: -math.MaxFloat64,
	}
}

// NewFromMapData converts an Overpass response into a road graph. Ways are
// split into one edge per consecutive node pair; two-way roads get an edge
// in each direction. Natural-feature nodes tag every road node within
// NaturalFeatureRadius.
func NewFromMapData(data *mapdata.MapData) *Graph {
	g := New()

	assigned := make(map[int64]int)
	for i := range data.Elements {
		e := &data.Elements[i]
		if e.Type != "node" {
			continue
		}
		assigned[e.ID] = g.AddNode(Node{ID: e.ID, Lat: e.Lat, Lon: e.Lon})
	}

	for i := range data.Elements {
		e := &data.Elements[i]
		if !e.IsRoad() {
			continue
		}
		for j := 0; j < len(e.Nodes)-1; j++ {
			u, okU := assigned[e.Nodes[j]]
			v, okV := assigned[e.Nodes[j+1]]
			if !okU || !okV {
				continue
			}
			length := geo.Distance(g.Point(u), g.Point(v))
			forward, backward := directions(e.Tags.Oneway)
			if forward {
				g.AddEdge(&Edge{From: u, To: v, Way: e.ID, Highway: e.Tags.Highway, Name: e.Tags.Name, Length: length})
			}
			if backward {
				g.AddEdge(&Edge{From: v, To: u, Way: e.ID, Highway: e.Tags.Highway, Name: e.Tags.Name, Length: length})
			}
		}
	}

	for i := range data.Elements {
		e := &data.Elements[i]
		if !e.IsNaturalFeature() {
			continue
		}
		g.tagNearby(geo.Point{Lat: e.Lat, Lon: e.Lon}, e.Tags.Natural)
	}

	return g
}

func directions(oneway string) (forward, backward bool) {
	switch oneway {
	case "yes", "1", "true":
		return true, false
	case "-1", "reverse":
		return false, true
	default:
		return true, true
	}
}

// AddNode appends a node and returns its index.
func (g *Graph) AddNode(n Node) int {
	g.Nodes = append(g.Nodes, n)
	g.Out = append(g.Out, nil)
	g.inDegree = append(g.inDegree, 0)
	if n.Lat < g.minLat {
		g.minLat = n.Lat
	}
	if n.Lat > g.maxLat {
		g.maxLat = n.Lat
	}
	if n.Lon < g.minLon {
		g.minLon = n.Lon
	}
	if n.Lon > g.maxLon {
		g.maxLon = n.Lon
	}
	return len(g.Nodes) - 1
}

// AddEdge appends a directed edge. Parallel edges are allowed.
func (g *Graph) AddEdge(e *Edge) {
	g.Out[e.From] = append(g.Out[e.From], e)
	g.inDegree[e.To]++
}

// Point returns the coordinates of a node.
func (g *Graph) Point(i int) geo.Point {
	return geo.Point{Lat: g.Nodes[i].Lat, Lon: g.Nodes[i].Lon}
}

// Edges calls fn for every edge in the graph.
func (g *Graph) Edges(fn func(*Edge)) {
	for _, out := range g.Out {
		for _, e := range out {
			fn(e)
		}
	}
}

// NumEdges returns the total directed edge count.
func (g *Graph) NumEdges() int {
	n := 0
	for _, out := range g.Out {
		n += len(out)
	}
	return n
}

func (g *Graph) tagNearby(p geo.Point, tag string) {
	for i := range g.Nodes {
		if len(g.Out[i]) == 0 && g.inDegree[i] == 0 {
			continue
		}
		if geo.Distance(p, g.Point(i)) <= NaturalFeatureRadius {
			if !containsString(g.Nodes[i].Natural, tag) {
				g.Nodes[i].Natural = append(g.Nodes[i].Natural, tag)
			}
		}
	}
}

func containsString(a []string, s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// InBounds reports whether a point falls inside the graph's bounding box.
func (g *Graph) InBounds(p geo.Point) bool {
	if len(g.Nodes) == 0 {
		return false
	}
	return p.Lat >= g.minLat && p.Lat <= g.maxLat && p.Lon >= g.minLon && p.Lon <= g.maxLon
}

// NearestNode snaps a point to the closest node that has at least one
// incident edge. The second return value is false if no such node exists.
func (g *Graph) NearestNode(p geo.Point) (int, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i := range g.Nodes {
		if len(g.Out[i]) == 0 && g.inDegree[i] == 0 {
			continue
		}
		d := geo.Distance(p, g.Point(i))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best != -1
}

// Representative returns the parallel edge from u to v with the minimum
// value of w, or nil if no edge connects them. Algorithms that need a
// simple-graph view of the multigraph use this as the canonical edge.
func (g *Graph) Representative(u, v int, w Weight) *Edge {
	var best *Edge
	for _, e := range g.Out[u] {
		if e.To != v {
			continue
		}
		if best == nil || e.Cost(w) < best.Cost(w) {
			best = e
		}
	}
	return best
}

// SimpleView collapses the multigraph into a simple directed adjacency list
// under the given weight: for each ordered node pair only the cheapest
// parallel edge is kept.
func (g *Graph) SimpleView(w Weight) [][]*Edge {
	view := make([][]*Edge, len(g.Nodes))
	for u, out := range g.Out {
		best := make(map[int]*Edge, len(out))
		for _, e := range out {
			if b, ok := best[e.To]; !ok || e.Cost(w) < b.Cost(w) {
				best[e.To] = e
			}
		}
		view[u] = make([]*Edge, 0, len(best))
		for _, e := range best {
			view[u] = append(view[u], e)
		}
		// Deterministic neighbor order regardless of map iteration.
		sort.Slice(view[u], func(i, j int) bool { return view[u][i].To < view[u][j].To })
	}
	return view
}
