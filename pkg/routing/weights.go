package routing

// The weighting pass annotates every edge of the shared road graph with
// travel_time, scenic_score and scenic_cost for the active weight profile.
// It holds the graph's write lock for the duration so concurrent route
// computations never observe a half-updated mix of old and new values.

import (
	"math"
	"strings"

	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/pkg/profiles"
)

// Assumed speeds in km/h by road classification.
var speedsByType = map[string]float64{
	"motorway":     100,
	"trunk":        90,
	"primary":      80,
	"secondary":    65,
	"tertiary":     55,
	"residential":  40,
	"service":      30,
	"unclassified": 35,
}

const (
	// DefaultSpeedKPH is used for road classifications missing from the
	// speed table.
	DefaultSpeedKPH = 35.0

	// ScenicBoost is the exponent on the natural-feature multiplier. It
	// makes proximity to natural features dominate the base road-type
	// score instead of adding linearly. Tunable, not physically derived.
	ScenicBoost = 1.5

	// defaultScenicBase is the scenic weight for unknown classifications.
	defaultScenicBase = 0.5

	// scenicEps keeps the composite cost finite on zero scenic scores.
	scenicEps = 1e-6
)

// maxSpeedMPS is the highest speed in the table, in m/s. It bounds the
// travel-time heuristic from below so A* stays admissible.
var maxSpeedMPS = func() float64 {
	max := DefaultSpeedKPH
	for _, kph := range speedsByType {
		if kph > max {
			max = kph
		}
	}
	return max * 1000 / 3600
}()

// ApplyProfile recomputes travel_time, scenic_score and scenic_cost for
// every edge under the given profile. Normalization is a pure function of
// the full set of raw scores, so the whole graph is always reweighted in
// one pass.
func ApplyProfile(g *graph.Graph, p profiles.WeightProfile) {
	g.Lock()
	defer g.Unlock()

	var edges []*graph.Edge
	g.Edges(func(e *graph.Edge) { edges = append(edges, e) })

	raw := make([]float64, len(edges))
	for i, e := range edges {
		length := e.Length
		if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
			length = 0 // malformed lengths degrade, never abort
		}

		e.TravelTime = length / speedFor(e.Highway)
		raw[i] = rawScenicScore(g, e, p)
	}

	normalized := normalizeScores(raw)

	for i, e := range edges {
		e.ScenicScore = normalized[i]
		length := e.Length
		if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
			length = 0
		}
		e.ScenicCost = length / (e.ScenicScore + scenicEps)
	}
}

// speedFor returns the assumed speed in m/s for a road classification.
func speedFor(highway string) float64 {
	kph, ok := speedsByType[firstTag(highway)]
	if !ok {
		kph = DefaultSpeedKPH
	}
	return kph * 1000 / 3600
}

// firstTag resolves multi-valued OSM tags ("residential;service") by taking
// the first value.
func firstTag(tag string) string {
	if i := strings.IndexByte(tag, ';'); i >= 0 {
		return tag[:i]
	}
	return tag
}

// rawScenicScore is base(classification) * (1 + naturalBonus)^ScenicBoost,
// where naturalBonus sums the profile weight of every distinct natural tag
// present on either endpoint node.
func rawScenicScore(g *graph.Graph, e *graph.Edge, p profiles.WeightProfile) float64 {
	base, ok := p.ScenicByType[firstTag(e.Highway)]
	if !ok {
		base = defaultScenicBase
	}

	bonus := 0.0
	seen := make(map[string]bool)
	for _, node := range []int{e.From, e.To} {
		for _, tag := range g.Nodes[node].Natural {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			bonus += p.NaturalByTag[tag] // absent tags contribute 0
		}
	}

	return base * math.Pow(1+bonus, ScenicBoost)
}

// normalizeScores rescales raw scenic scores into [0,1]: z-score against
// the population mean and standard deviation, then min-max over the
// z-scores. Raw scores have no upper bound (the natural boost is
// exponential), so a single min-max pass would be dominated by outliers;
// z-scoring first compresses the distribution.
func normalizeScores(raw []float64) []float64 {
	if len(raw) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range raw {
		mean += v
	}
	mean /= float64(len(raw))

	variance := 0.0
	for _, v := range raw {
		variance += (v - mean) * (v - mean)
	}
	std := math.Sqrt(variance / float64(len(raw)))

	z := make([]float64, len(raw))
	if std > 0 {
		for i, v := range raw {
			z[i] = (v - mean) / std
		}
	}

	minZ, maxZ := z[0], z[0]
	for _, v := range z[1:] {
		if v < minZ {
			minZ = v
		}
		if v > maxZ {
			maxZ = v
		}
	}

	out := make([]float64, len(z))
	if maxZ > minZ {
		for i, v := range z {
			out[i] = (v - minZ) / (maxZ - minZ)
		}
	} else {
		// All scores identical: every edge is equally scenic.
		for i := range out {
			out[i] = 0.5
		}
	}
	return out
}
