package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	stderrors "errors"

	"github.com/backroads/backroads/internal/util/errors"
	"github.com/backroads/backroads/pkg/profiles"
	"github.com/backroads/backroads/pkg/routing"
	"github.com/backroads/backroads/pkg/routing/endpoints"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
)

func NewHTTPHandler(ep endpoints.Set) http.Handler {
	m := http.NewServeMux()

	m.Handle("/api/route", httptransport.NewServer(
		ep.RouteEndpoint,
		decodeRouteRequest,
		encodeJSONResponse,
		httptransport.ServerErrorEncoder(encodeError),
	))

	saveProfile := httptransport.NewServer(
		ep.SaveProfileEndpoint,
		decodeSaveProfileRequest,
		encodeJSONResponse,
		httptransport.ServerErrorEncoder(encodeError),
	)
	listProfiles := httptransport.NewServer(
		ep.ListProfilesEndpoint,
		decodeEmptyRequest,
		encodeJSONResponse,
		httptransport.ServerErrorEncoder(encodeError),
	)
	m.HandleFunc("/api/profiles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			saveProfile.ServeHTTP(w, r)
		case http.MethodGet:
			listProfiles.ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	return m
}

// decodeRouteRequest reads ?start=lat,lon&end=lat,lon&extra_minutes=...&profile=...
func decodeRouteRequest(_ context.Context, r *http.Request) (interface{}, error) {
	q := r.URL.Query()

	start, err := parseLatLon(q.Get("start"))
	if err != nil {
		return nil, err
	}
	end, err := parseLatLon(q.Get("end"))
	if err != nil {
		return nil, err
	}

	req := endpoints.RouteRequest{Start: start, End: end, Profile: q.Get("profile")}
	if raw := q.Get("extra_minutes"); raw != "" {
		req.ExtraMinutes, err = strconv.ParseFloat(raw, 64)
		if err != nil || req.ExtraMinutes < 0 {
			return nil, errors.ErrInvalidArgument
		}
	}
	return req, nil
}

func parseLatLon(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil, errors.ErrInvalidArgument
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.ErrInvalidArgument
		}
		out[i] = v
	}
	return out, nil
}

func decodeSaveProfileRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req endpoints.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.ErrInvalidArgument
	}
	if req.Name == "" {
		return nil, errors.ErrInvalidArgument
	}
	return req, nil
}

func decodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return struct{}{}, nil
}

func encodeJSONResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var noPath *routing.NoPathFoundError
	var notFound *profiles.NotFoundError
	switch {
	case stderrors.Is(err, errors.ErrInvalidArgument),
		stderrors.Is(err, routing.ErrInvalidCoordinate):
		w.WriteHeader(http.StatusBadRequest)
	case stderrors.As(err, &noPath),
		stderrors.As(err, &notFound),
		stderrors.Is(err, routing.ErrNoRoutableNode),
		stderrors.Is(err, errors.ErrUnknown):
		w.WriteHeader(http.StatusNotFound)
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
