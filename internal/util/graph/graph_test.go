package graph

import (
	"testing"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/mapdata"
)

func roadElement(id int64, highway, oneway string, nodes ...int64) mapdata.MapDataElement {
	var e mapdata.MapDataElement
	e.Type = "way"
	e.ID = id
	e.Nodes = nodes
	e.Tags.Highway = highway
	e.Tags.Oneway = oneway
	return e
}

func nodeElement(id int64, lat, lon float64) mapdata.MapDataElement {
	var e mapdata.MapDataElement
	e.Type = "node"
	e.ID = id
	e.Lat = lat
	e.Lon = lon
	return e
}

func naturalElement(id int64, lat, lon float64, natural string) mapdata.MapDataElement {
	e := nodeElement(id, lat, lon)
	e.Tags.Natural = natural
	return e
}

func TestNewFromMapData(t *testing.T) {
	data := &mapdata.MapData{
		Elements: []mapdata.MapDataElement{
			nodeElement(100, 0, 0),
			nodeElement(101, 0, 0.01),
			nodeElement(102, 0, 0.02),
			roadElement(500, "residential", "", 100, 101),
			roadElement(501, "motorway", "yes", 101, 102),
			// natural feature right on top of node 101
			naturalElement(900, 0, 0.01, "beach"),
		},
	}

	g := NewFromMapData(data)

	// The natural element is also a node element, so 4 nodes total.
	if len(g.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(g.Nodes))
	}

	// Two-way residential gives 2 directed edges, oneway motorway gives 1.
	if n := g.NumEdges(); n != 3 {
		t.Errorf("edges = %d, want 3", n)
	}

	// Node 101 (index 1) must carry the nearby beach tag.
	if len(g.Nodes[1].Natural) != 1 || g.Nodes[1].Natural[0] != "beach" {
		t.Errorf("node 101 natural tags = %v, want [beach]", g.Nodes[1].Natural)
	}

	// Node 102 is over a kilometer away from the feature.
	if len(g.Nodes[2].Natural) != 0 {
		t.Errorf("node 102 natural tags = %v, want none", g.Nodes[2].Natural)
	}
}

func TestNaturalTagOnOnewayDeadEnd(t *testing.T) {
	data := &mapdata.MapData{
		Elements: []mapdata.MapDataElement{
			nodeElement(100, 0, 0),
			nodeElement(101, 0, 0.01),
			roadElement(500, "residential", "yes", 100, 101),
			naturalElement(900, 0, 0.01, "peak"),
		},
	}

	g := NewFromMapData(data)

	// Node 101 has only an incoming edge; it must still pick up the tag so
	// the edge into it gets its endpoint bonus.
	if len(g.Nodes[1].Natural) != 1 || g.Nodes[1].Natural[0] != "peak" {
		t.Errorf("dead-end node natural tags = %v, want [peak]", g.Nodes[1].Natural)
	}
}

func TestOnewayDirections(t *testing.T) {
	cases := []struct {
		oneway            string
		forward, backward bool
	}{
		{"", true, true},
		{"no", true, true},
		{"yes", true, false},
		{"1", true, false},
		{"-1", false, true},
	}
	for _, c := range cases {
		f, b := directions(c.oneway)
		if f != c.forward || b != c.backward {
			t.Errorf("directions(%q) = %v,%v want %v,%v", c.oneway, f, b, c.forward, c.backward)
		}
	}
}

func TestNearestNodeSkipsIsolated(t *testing.T) {
	g := New()
	a := g.AddNode(Node{ID: 1, Lat: 0, Lon: 0})
	b := g.AddNode(Node{ID: 2, Lat: 0, Lon: 0.01})
	g.AddNode(Node{ID: 3, Lat: 0, Lon: 0.001}) // isolated, closest to query
	g.AddEdge(&Edge{From: a, To: b, Length: 1000})

	got, ok := g.NearestNode(geo.Point{Lat: 0, Lon: 0.002})
	if !ok {
		t.Fatal("expected a routable node")
	}
	if got != a {
		t.Errorf("snapped to node %d, want %d (isolated node must be skipped)", got, a)
	}
}

func TestNearestNodeEmpty(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1, Lat: 0, Lon: 0}) // no edges anywhere
	if _, ok := g.NearestNode(geo.Point{Lat: 0, Lon: 0}); ok {
		t.Error("expected no routable node in edgeless graph")
	}
}

func TestInBounds(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1, Lat: -0.02, Lon: 0})
	g.AddNode(Node{ID: 2, Lat: 0.02, Lon: 0.02})

	if !g.InBounds(geo.Point{Lat: 0, Lon: 0.01}) {
		t.Error("interior point reported out of bounds")
	}
	if g.InBounds(geo.Point{Lat: 0, Lon: -0.01}) {
		t.Error("exterior point reported in bounds")
	}
	if New().InBounds(geo.Point{Lat: 0, Lon: 0}) {
		t.Error("empty graph must have no bounds")
	}
}

func TestRepresentativePicksMinimum(t *testing.T) {
	g := New()
	a := g.AddNode(Node{ID: 1})
	b := g.AddNode(Node{ID: 2})
	cheap := &Edge{From: a, To: b, TravelTime: 10, ScenicCost: 99}
	fast := &Edge{From: a, To: b, TravelTime: 5, ScenicCost: 200}
	g.AddEdge(cheap)
	g.AddEdge(fast)

	if e := g.Representative(a, b, TravelTime); e != fast {
		t.Error("representative under travel_time should be the faster edge")
	}
	if e := g.Representative(a, b, ScenicCost); e != cheap {
		t.Error("representative under scenic_cost should be the cheaper edge")
	}
	if e := g.Representative(b, a, TravelTime); e != nil {
		t.Error("no reverse edge exists")
	}
}

func TestSimpleViewCollapsesParallels(t *testing.T) {
	g := New()
	a := g.AddNode(Node{ID: 1})
	b := g.AddNode(Node{ID: 2})
	c := g.AddNode(Node{ID: 3})
	g.AddEdge(&Edge{From: a, To: b, ScenicCost: 50})
	g.AddEdge(&Edge{From: a, To: b, ScenicCost: 20})
	g.AddEdge(&Edge{From: a, To: c, ScenicCost: 10})

	view := g.SimpleView(ScenicCost)
	if len(view[a]) != 2 {
		t.Fatalf("simple view has %d edges from a, want 2", len(view[a]))
	}
	for _, e := range view[a] {
		if e.To == b && e.ScenicCost != 20 {
			t.Errorf("kept parallel edge with cost %f, want 20", e.ScenicCost)
		}
	}
}
