package main

// The code to start and stop the routing HTTP server. At startup the road
// graph is loaded from the map data service and the profile store is opened;
// both are shared by all requests for the lifetime of the process.

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/backroads/backroads/internal/util/graph"
	"github.com/backroads/backroads/pkg/mapdata"
	"github.com/backroads/backroads/pkg/profiles"
	"github.com/backroads/backroads/pkg/routing"
	"github.com/backroads/backroads/pkg/routing/endpoints"
	"github.com/backroads/backroads/pkg/routing/transport"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"
)

const defaultPort = "8080"

func main() {
	godotenv.Load()

	var (
		logger     log.Logger
		httpAddr   = net.JoinHostPort(envString("ADDRESS", "127.0.0.1"), envString("PORT", defaultPort))
		mapDataURL = envString("MAP_DATA_URL", "http://localhost:8081")
		profileDB  = envString("PROFILE_DB", "profiles.db")
		centerLat  = envFloat("GRAPH_CENTER_LAT", 35.2828)
		centerLon  = envFloat("GRAPH_CENTER_LON", -120.6596)
		radius     = envFloat("GRAPH_RADIUS", 7000)
	)

	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	logger.Log("during", "startup", "msg", "loading road network", "url", mapDataURL)
	data, err := mapdata.Fetch(context.Background(), mapDataURL, centerLat, centerLon, radius)
	if err != nil {
		logger.Log("during", "startup", "err", err)
		os.Exit(1)
	}

	roadGraph := graph.NewFromMapData(data)
	logger.Log("during", "startup", "nodes", len(roadGraph.Nodes), "edges", roadGraph.NumEdges())

	store, err := profiles.OpenStore(profileDB)
	if err != nil {
		logger.Log("during", "startup", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SeedPresets(context.Background()); err != nil {
		logger.Log("during", "startup", "err", err)
		os.Exit(1)
	}

	var (
		service     = routing.NewService(roadGraph, store)
		endpoints   = endpoints.NewEndpointSet(service)
		httpHandler = transport.NewHTTPHandler(endpoints)
	)

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		logger.Log("transport", "HTTP", "during", "Listen", "err", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Handler: httpHandler,
	}

	go func() {
		logger.Log("transport", "HTTP", "addr", httpAddr)
		err := httpServer.Serve(httpListener)
		if err != nil {
			logger.Log("transport", "HTTP", "during", "Serve", "err", err)
		}
	}()

	// Wait for an interrupt signal to stop the server.
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	logger.Log("signal", sig)

	// Stop the server gracefully.
	err = httpServer.Shutdown(context.Background())
	if err != nil {
		logger.Log("transport", "HTTP", "during", "Shutdown", "err", err)
	}
	httpListener.Close()

	logger.Log("transport", "HTTP", "status", "stopped")
}

func envString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func envFloat(key string, defaultValue float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
