package routing

import (
	"testing"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/pkg/profiles"
)

// diamond builds a small test network with three disjoint paths between
// A (0,0) and D (0,0.02):
//
//	A-C-D  motorway, ~2.2 km      fastest, least scenic
//	A-B-D  residential, ~5.0 km   middle
//	A-E-D  unclassified, ~5.0 km  slowest, most scenic
//
// Default-profile normalization puts the scenic scores at exactly 0
// (motorway), 0.8/0.85 (residential) and 1 (unclassified), so the scenic
// ordering of the three paths is fully determined.
type diamond struct {
	g             *graph.Graph
	a, b, c, d, e int
}

func buildDiamond(t *testing.T) diamond {
	t.Helper()

	g := graph.New()
	d := diamond{
		g: g,
		a: g.AddNode(graph.Node{ID: 1, Lat: 0, Lon: 0}),
		b: g.AddNode(graph.Node{ID: 2, Lat: 0.02, Lon: 0.01}),
		c: g.AddNode(graph.Node{ID: 3, Lat: 0, Lon: 0.01}),
		e: g.AddNode(graph.Node{ID: 4, Lat: -0.02, Lon: 0.01}),
	}
	d.d = g.AddNode(graph.Node{ID: 5, Lat: 0, Lon: 0.02})

	link := func(u, v int, highway, name string) {
		length := geo.Distance(g.Point(u), g.Point(v))
		g.AddEdge(&graph.Edge{From: u, To: v, Highway: highway, Name: name, Length: length})
		g.AddEdge(&graph.Edge{From: v, To: u, Highway: highway, Name: name, Length: length})
	}
	link(d.a, d.c, "motorway", "Shoreline Hwy")
	link(d.c, d.d, "motorway", "Shoreline Hwy")
	link(d.a, d.b, "residential", "Maple St")
	link(d.b, d.d, "residential", "Maple St")
	link(d.a, d.e, "unclassified", "")
	link(d.e, d.d, "unclassified", "")

	ApplyProfile(g, profiles.Default())
	return d
}

func (d diamond) origin() geo.Point      { return d.g.Point(d.a) }
func (d diamond) destination() geo.Point { return d.g.Point(d.d) }

func sameNodes(got []int, want ...int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func near(got, want, tol float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
