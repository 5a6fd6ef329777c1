package routing

import (
	"math"
	"testing"

	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/pkg/profiles"
)

func TestApplyProfileTravelTime(t *testing.T) {
	d := buildDiamond(t)

	e := d.g.Representative(d.a, d.c, graph.TravelTime)
	if e == nil {
		t.Fatal("missing motorway edge")
	}
	want := e.Length / (100 * 1000 / 3600)
	if !near(e.TravelTime, want, 1e-9) {
		t.Errorf("motorway travel time = %f, want %f", e.TravelTime, want)
	}

	e = d.g.Representative(d.a, d.e, graph.TravelTime)
	want = e.Length / (35 * 1000 / 3600)
	if !near(e.TravelTime, want, 1e-9) {
		t.Errorf("unclassified travel time = %f, want %f", e.TravelTime, want)
	}
}

func TestApplyProfileScenicScores(t *testing.T) {
	d := buildDiamond(t)

	// Default bases are motorway 0.05, residential 0.85, unclassified 0.90.
	// With no natural features the two-stage normalization reduces to
	// min-max over the bases.
	cases := []struct {
		from, to int
		want     float64
	}{
		{d.a, d.c, 0},
		{d.a, d.b, 0.8 / 0.85},
		{d.a, d.e, 1},
	}
	for _, c := range cases {
		e := d.g.Representative(c.from, c.to, graph.ScenicCost)
		if e == nil {
			t.Fatalf("missing edge %d->%d", c.from, c.to)
		}
		if !near(e.ScenicScore, c.want, 1e-6) {
			t.Errorf("scenic score %d->%d = %f, want %f", c.from, c.to, e.ScenicScore, c.want)
		}
		wantCost := e.Length / (e.ScenicScore + 1e-6)
		if !near(e.ScenicCost, wantCost, 1e-3) {
			t.Errorf("scenic cost %d->%d = %f, want %f", c.from, c.to, e.ScenicCost, wantCost)
		}
	}
}

func TestRawScenicScoreNaturalBoost(t *testing.T) {
	g := graph.New()
	u := g.AddNode(graph.Node{ID: 1, Natural: []string{"peak"}})
	v := g.AddNode(graph.Node{ID: 2, Natural: []string{"peak", "wood"}})
	e := &graph.Edge{From: u, To: v, Highway: "residential", Length: 100}
	g.AddEdge(e)

	p := profiles.Default()
	p.NaturalByTag["peak"] = 0.5
	p.NaturalByTag["wood"] = 0.25

	// "peak" appears on both endpoints but counts once.
	got := rawScenicScore(g, e, p)
	want := 0.85 * math.Pow(1+0.75, ScenicBoost)
	if !near(got, want, 1e-9) {
		t.Errorf("raw scenic score = %f, want %f", got, want)
	}
}

func TestApplyProfileIdempotent(t *testing.T) {
	d := buildDiamond(t)

	type derived struct {
		travelTime, scenicScore, scenicCost float64
	}
	var before []derived
	d.g.Edges(func(e *graph.Edge) {
		before = append(before, derived{e.TravelTime, e.ScenicScore, e.ScenicCost})
	})

	ApplyProfile(d.g, profiles.Default())

	i := 0
	d.g.Edges(func(e *graph.Edge) {
		after := derived{e.TravelTime, e.ScenicScore, e.ScenicCost}
		if after != before[i] {
			t.Errorf("edge %d changed on reapplication: %+v -> %+v", i, before[i], after)
		}
		i++
	})
}

func TestNormalizeScoresUniform(t *testing.T) {
	out := normalizeScores([]float64{0.3, 0.3, 0.3})
	for i, v := range out {
		if v != 0.5 {
			t.Errorf("out[%d] = %f, want 0.5 for identical scores", i, v)
		}
	}
}

func TestNormalizeScoresRange(t *testing.T) {
	out := normalizeScores([]float64{1, 2, 4})
	if out[0] != 0 || out[2] != 1 {
		t.Errorf("extremes = %f, %f, want 0 and 1", out[0], out[2])
	}
	for _, v := range out {
		if v < 0 || v > 1 {
			t.Errorf("score %f outside [0,1]", v)
		}
	}
}

func TestNormalizeScoresEmpty(t *testing.T) {
	if out := normalizeScores(nil); out != nil {
		t.Errorf("normalizeScores(nil) = %v, want nil", out)
	}
}

func TestSpeedForUnknownClassification(t *testing.T) {
	want := DefaultSpeedKPH * 1000 / 3600
	if got := speedFor("bridleway"); !near(got, want, 1e-9) {
		t.Errorf("speedFor(bridleway) = %f, want default %f", got, want)
	}
}

func TestFirstTag(t *testing.T) {
	if got := firstTag("residential;service"); got != "residential" {
		t.Errorf("firstTag = %q, want residential", got)
	}
	if got := firstTag("primary"); got != "primary" {
		t.Errorf("firstTag = %q, want primary", got)
	}
}

func TestApplyProfileMalformedLength(t *testing.T) {
	g := graph.New()
	u := g.AddNode(graph.Node{ID: 1})
	v := g.AddNode(graph.Node{ID: 2})
	bad := &graph.Edge{From: u, To: v, Highway: "primary", Length: math.NaN()}
	good := &graph.Edge{From: v, To: u, Highway: "primary", Length: 100}
	g.AddEdge(bad)
	g.AddEdge(good)

	ApplyProfile(g, profiles.Default())

	if math.IsNaN(bad.TravelTime) || bad.TravelTime != 0 {
		t.Errorf("NaN length should give zero travel time, got %f", bad.TravelTime)
	}
	if math.IsNaN(bad.ScenicCost) || math.IsInf(bad.ScenicCost, 0) {
		t.Errorf("NaN length should give finite scenic cost, got %f", bad.ScenicCost)
	}
}
