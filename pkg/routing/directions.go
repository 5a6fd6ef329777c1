package routing

import (
	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/graph"
)

// A StreetSegment is a contiguous stretch of a route on one named street.
type StreetSegment struct {
	Street    string
	Miles     float64
	Direction string // cardinal direction averaged over the stretch
}

const metersPerMile = 1609.344

// StreetBreakdown collapses a route into per-street segments with distance
// and overall heading. Consecutive edges that share a street name merge
// into one segment; unnamed ways appear as "Unnamed".
func StreetBreakdown(g *graph.Graph, r Route) []StreetSegment {
	if len(r.Nodes) < 2 {
		return nil
	}

	var out []StreetSegment
	current := ""
	meters := 0.0
	var bearings []float64

	flush := func() {
		if current == "" {
			return
		}
		out = append(out, StreetSegment{
			Street:    current,
			Miles:     meters / metersPerMile,
			Direction: averageDirection(bearings),
		})
	}

	for i := 0; i < len(r.Nodes)-1; i++ {
		e := g.Representative(r.Nodes[i], r.Nodes[i+1], r.Weight)
		if e == nil {
			continue
		}

		name := e.Name
		if name == "" {
			name = "Unnamed"
		}
		bearing := geo.Bearing(g.Point(r.Nodes[i]), g.Point(r.Nodes[i+1]))

		if name != current {
			flush()
			current = name
			meters = e.Length
			bearings = bearings[:0]
		} else {
			meters += e.Length
		}
		bearings = append(bearings, bearing)
	}
	flush()

	return out
}

func averageDirection(bearings []float64) string {
	if len(bearings) == 0 {
		return ""
	}
	sum := 0.0
	for _, b := range bearings {
		sum += b
	}
	return geo.Cardinal(sum / float64(len(bearings)))
}
