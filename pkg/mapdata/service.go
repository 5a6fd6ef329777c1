package mapdata

import (
	"context"

	"github.com/backroads/backroads/internal/util/mapdata"
)

type Service interface {
	// GetMapData fetches the drivable road network and the natural
	// features within radius meters of a center point.
	GetMapData(ctx context.Context, lat, lon, radius float64) (mapdata.MapData, error)
}
