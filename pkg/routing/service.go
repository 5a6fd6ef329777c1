package routing

import (
	"context"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/pkg/profiles"
)

// A RouteRequest asks for a route between two coordinates with an optional
// scenic time budget and weight profile.
type RouteRequest struct {
	Origin       geo.Point
	Destination  geo.Point
	ExtraMinutes float64
	Profile      string
}

// A RouteResult is the chosen route plus everything downstream collaborators
// (direction narration, GeoJSON shaping) need to present it.
type RouteResult struct {
	Route  Route
	Cost   float64
	Weight graph.Weight

	Points    []geo.Point
	ScenicSum float64
	TimeSum   float64
	Streets   []StreetSegment

	Profile        string
	ProfileWeights profiles.WeightProfile
}

type Service interface {
	// ComputeRoute runs the full fastest-vs-scenic decision for a request.
	// It always produces a route when one exists, degrading to the fastest
	// route when no scenic alternative fits the budget.
	ComputeRoute(ctx context.Context, req RouteRequest) (RouteResult, error)

	// SaveProfile persists a named weight profile.
	SaveProfile(ctx context.Context, p profiles.WeightProfile) error

	// ListProfiles returns the names of all available profiles.
	ListProfiles(ctx context.Context) ([]string, error)
}
