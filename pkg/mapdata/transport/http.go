package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/backroads/backroads/internal/util/errors"
	"github.com/backroads/backroads/pkg/mapdata/endpoints"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
)

func NewHTTPHandler(ep endpoints.Set) http.Handler {
	m := http.NewServeMux()

	m.Handle("/api/mapdata", httptransport.NewServer(
		ep.MapDataEndpoint,
		decodeMapDataRequest,
		encodeMapDataResponse,
		httptransport.ServerErrorEncoder(encodeError),
	))

	return m
}

func decodeMapDataRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req endpoints.MapDataRequest
	var err error
	req.Lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return nil, errors.ErrInvalidArgument
	}
	req.Lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return nil, errors.ErrInvalidArgument
	}
	req.Radius, err = strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if err != nil {
		return nil, errors.ErrInvalidArgument
	}

	return req, nil
}

func encodeMapDataResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch err {
	case errors.ErrUnknown:
		w.WriteHeader(http.StatusNotFound)
	case errors.ErrInvalidArgument:
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

var logger log.Logger

func init() {
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
}
