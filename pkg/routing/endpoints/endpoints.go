package endpoints

import (
	"context"
	"os"

	"github.com/backroads/backroads/internal/util/geo"
	"github.com/backroads/backroads/pkg/profiles"
	"github.com/backroads/backroads/pkg/routing"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/log"
)

type Set struct {
	RouteEndpoint        endpoint.Endpoint
	SaveProfileEndpoint  endpoint.Endpoint
	ListProfilesEndpoint endpoint.Endpoint
}

func NewEndpointSet(svc routing.Service) Set {
	return Set{
		RouteEndpoint:        MakeRouteEndpoint(svc),
		SaveProfileEndpoint:  MakeSaveProfileEndpoint(svc),
		ListProfilesEndpoint: MakeListProfilesEndpoint(svc),
	}
}

func MakeRouteEndpoint(svc routing.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(RouteRequest)
		result, err := svc.ComputeRoute(ctx, routing.RouteRequest{
			Origin:       geo.Point{Lat: req.Start[0], Lon: req.Start[1]},
			Destination:  geo.Point{Lat: req.End[0], Lon: req.End[1]},
			ExtraMinutes: req.ExtraMinutes,
			Profile:      req.Profile,
		})
		if err != nil {
			logger.Log("during", "ComputeRoute", "err", err)
			return nil, err
		}
		return buildRouteResponse(req, result), nil
	}
}

func MakeSaveProfileEndpoint(svc routing.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(SaveProfileRequest)
		err := svc.SaveProfile(ctx, profiles.WeightProfile{
			Name:         req.Name,
			ScenicByType: req.ScenicByType,
			NaturalByTag: req.NaturalByTag,
		})
		if err != nil {
			return nil, err
		}
		return SaveProfileResponse{Saved: req.Name}, nil
	}
}

func MakeListProfilesEndpoint(svc routing.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		names, err := svc.ListProfiles(ctx)
		if err != nil {
			return nil, err
		}
		return ListProfilesResponse{Profiles: names}, nil
	}
}

var directionSymbols = map[string]string{
	"N": "↑", "S": "↓", "E": "→", "W": "←",
	"NE": "↗", "NW": "↖", "SE": "↘", "SW": "↙",
}

func buildRouteResponse(req RouteRequest, result routing.RouteResult) RouteResponse {
	coords := make([][]float64, len(result.Points))
	for i, p := range result.Points {
		coords[i] = []float64{p.Lon, p.Lat}
	}

	streets := make([]StreetEntry, len(result.Streets))
	for i, s := range result.Streets {
		streets[i] = StreetEntry{
			Direction:       s.Direction,
			DirectionSymbol: directionSymbols[s.Direction],
			Street:          s.Street,
			Miles:           s.Miles,
		}
	}

	return RouteResponse{
		GeoJSON: GeoJSONFeature{
			Type:     "Feature",
			Geometry: Geometry{Type: "LineString", Coordinates: coords},
			Properties: GeoJSONProperties{
				Cost:   result.Cost,
				Weight: string(result.Weight),
			},
		},
		ScenicBreakdown: ScenicBreakdown{
			TotalScenicScore:       result.ScenicSum,
			TotalTravelTimeSeconds: result.TimeSum,
		},
		StreetBreakdown: streets,
		Start:           req.Start,
		End:             req.End,
		ExtraMinutes:    req.ExtraMinutes,
		Profile:         result.Profile,
		WeightsUsed: WeightsUsed{
			ScenicByType: result.ProfileWeights.ScenicByType,
			NaturalByTag: result.ProfileWeights.NaturalByTag,
		},
	}
}

var logger log.Logger

func init() {
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
}
