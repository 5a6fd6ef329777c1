package endpoints

import (
	"context"
	"os"

	"github.com/backroads/backroads/pkg/mapdata"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/log"
)

type Set struct {
	MapDataEndpoint endpoint.Endpoint
}

func NewEndpointSet(svc mapdata.Service) Set {
	return Set{
		MapDataEndpoint: MakeMapDataEndpoint(svc),
	}
}

func MakeMapDataEndpoint(svc mapdata.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(MapDataRequest)
		data, err := svc.GetMapData(ctx, req.Lat, req.Lon, req.Radius)
		if err != nil {
			logger.Log("during", "GetMapData", "err", err)
			return nil, err
		}
		return data, nil
	}
}

var logger log.Logger

func init() {
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
}
