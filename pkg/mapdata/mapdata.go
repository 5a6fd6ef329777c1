package mapdata

// Map data service implementation: queries the Overpass API for drivable
// highway ways around a point, plus every node tagged with a natural
// feature in the same area.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/backroads/backroads/internal/util/mapdata"
	"github.com/go-kit/log"
)

const defaultOverpassURL = "http://overpass-api.de/api/interpreter"

type mapDataService struct {
	overpassURL string
	client      *http.Client
}

func NewService() Service {
	overpassURL := os.Getenv("OVERPASS_URL")
	if overpassURL == "" {
		overpassURL = defaultOverpassURL
	}
	return &mapDataService{overpassURL: overpassURL, client: &http.Client{}}
}

func (s *mapDataService) GetMapData(ctx context.Context, lat, lon, radius float64) (mapdata.MapData, error) {
	around := fmt.Sprintf("around:%f,%f,%f", radius, lat, lon)
	query := "[out:json];(" +
		"way(" + around + ")[highway];>;" +
		"node(" + around + ")[natural];" +
		");out body;"

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.overpassURL, strings.NewReader(form.Encode()))
	if err != nil {
		return mapdata.MapData{}, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	logger.Log("during", "GetMapData", "lat", lat, "lon", lon, "radius", radius)

	resp, err := s.client.Do(req)
	if err != nil {
		return mapdata.MapData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return mapdata.MapData{}, fmt.Errorf("overpass returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return mapdata.MapData{}, err
	}

	var data mapdata.MapData
	if err := json.Unmarshal(body, &data); err != nil {
		return mapdata.MapData{}, fmt.Errorf("decode overpass response: %w", err)
	}
	return data, nil
}

var logger log.Logger

func init() {
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
}
