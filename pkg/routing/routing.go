package routing

// Routing service implementation: orchestrates the pathfinder, the
// candidate generator and the ranker into the request-level decision.

import (
	"context"
	"os"
	"sync"

	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/pkg/profiles"

	"github.com/go-kit/log"
)

// CandidateCount is how many scenic-cost-ordered candidates are generated
// per request before ranking.
const CandidateCount = 10

type routingService struct {
	graph *graph.Graph
	store *profiles.Store

	// Serializes profile switches; the graph's own RWMutex protects the
	// derived edge weights themselves.
	profileMu     sync.Mutex
	activeProfile string
}

// NewService creates a routing service over a shared road graph. The
// default profile is applied to the graph immediately.
func NewService(g *graph.Graph, store *profiles.Store) Service {
	s := &routingService{graph: g, store: store}
	ApplyProfile(g, profiles.Default())
	s.activeProfile = profiles.DefaultName
	return s
}

func (s *routingService) ComputeRoute(ctx context.Context, req RouteRequest) (RouteResult, error) {
	// ensureProfile hands back the graph's read lock; holding it for the
	// whole computation means no concurrent profile switch can reweight the
	// graph between profile selection and the searches.
	if err := s.ensureProfile(ctx, req.Profile); err != nil {
		return RouteResult{}, err
	}
	defer s.graph.RUnlock()

	// The fastest route is always computed first. It is the time baseline
	// and the unconditional fallback.
	fastest, err := FindRoute(s.graph, req.Origin, req.Destination, graph.TravelTime)
	if err != nil {
		return RouteResult{}, err
	}
	fastestTime := fastest.Cost

	chosen := fastest
	if req.ExtraMinutes > 0 && fastestTime > 0 {
		candidates, err := GenerateCandidates(s.graph, req.Origin, req.Destination, graph.ScenicCost, CandidateCount)
		if err != nil {
			return RouteResult{}, err
		}
		if len(candidates) > 0 {
			budgetFactor := (fastestTime + req.ExtraMinutes*60) / fastestTime
			ranked := RankRoutes(s.graph, candidates, budgetFactor)
			if len(ranked) > 0 {
				top := ranked[0]
				chosen = top.Route
				// The scenic route's cost is reported as its travel time.
				chosen.Cost = top.TimeSeconds
			} else {
				logger.Log("during", "ComputeRoute", "msg", "budget exhausted, falling back to fastest",
					"candidates", len(candidates))
			}
		} else {
			logger.Log("during", "ComputeRoute", "msg", "no scenic candidates, falling back to fastest")
		}
	}

	return s.buildResult(ctx, req, chosen)
}

// ensureProfile makes the named profile the active one, reweighting the
// graph if it differs from the profile currently applied. A failed load
// leaves the previous weights in effect.
//
// On success the graph's read lock is held: it is taken before the profile
// mutex is released, so the caller computes under exactly the weights it
// selected. The caller must RUnlock the graph when done.
func (s *routingService) ensureProfile(ctx context.Context, name string) error {
	if name == "" {
		name = profiles.DefaultName
	}

	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	if name != s.activeProfile {
		p, err := s.store.Get(ctx, name)
		if err != nil {
			return err
		}
		logger.Log("during", "ensureProfile", "profile", name)
		ApplyProfile(s.graph, p)
		s.activeProfile = name
	}

	s.graph.RLock()
	return nil
}

func (s *routingService) buildResult(ctx context.Context, req RouteRequest, chosen Route) (RouteResult, error) {
	name := req.Profile
	if name == "" {
		name = profiles.DefaultName
	}
	weights, err := s.store.Get(ctx, name)
	if err != nil {
		return RouteResult{}, err
	}

	result := RouteResult{
		Route:          chosen,
		Cost:           chosen.Cost,
		Weight:         chosen.Weight,
		ScenicSum:      chosen.ScenicSum(s.graph),
		TimeSum:        chosen.TravelTime(s.graph),
		Streets:        StreetBreakdown(s.graph, chosen),
		Profile:        name,
		ProfileWeights: weights,
	}
	for _, n := range chosen.Nodes {
		result.Points = append(result.Points, s.graph.Point(n))
	}
	return result, nil
}

func (s *routingService) SaveProfile(ctx context.Context, p profiles.WeightProfile) error {
	return s.store.Save(ctx, p)
}

func (s *routingService) ListProfiles(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

var logger log.Logger

func init() {
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
}
