package mapdata

// Client for the map data service, used by the routing service to load its
// road graph at startup.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/backroads/backroads/internal/util/mapdata"
)

// Fetch retrieves map data from a running map data service.
func Fetch(ctx context.Context, baseURL string, lat, lon, radius float64) (*mapdata.MapData, error) {
	url := fmt.Sprintf("%s/api/mapdata?lat=%f&lon=%f&radius=%f", baseURL, lat, lon, radius)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("map data service returned %s", resp.Status)
	}

	var data mapdata.MapData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode map data: %w", err)
	}
	return &data, nil
}
