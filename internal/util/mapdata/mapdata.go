package mapdata

import (
	"time"
)

// MapData is the raw Overpass response for a drivable road network plus the
// natural features around it.
type MapData struct {
	Version   float64 `json:"version"`
	Generator string  `json:"generator"`
	Osm3S     struct {
		TimestampOsmBase time.Time `json:"timestamp_osm_base"`
		Copyright        string    `json:"copyright"`
	} `json:"osm3s"`
	Elements []MapDataElement `json:"elements"`
}

type MapDataElement struct {
	Type  string  `json:"type"`
	ID    int64   `json:"id"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
	Nodes []int64 `json:"nodes,omitempty"`
	Tags  struct {
		Access   string `json:"access,omitempty"`
		Highway  string `json:"highway,omitempty"`
		Maxspeed string `json:"maxspeed,omitempty"`
		Name     string `json:"name,omitempty"`
		Natural  string `json:"natural,omitempty"`
		Oneway   string `json:"oneway,omitempty"`
		Ref      string `json:"ref,omitempty"`
		Surface  string `json:"surface,omitempty"`
	} `json:"tags,omitempty"`
}

// IsRoad reports whether the element is a routable road way.
func (e *MapDataElement) IsRoad() bool {
	return e.Type == "way" && e.Tags.Highway != "" && e.Tags.Access != "private" && len(e.Nodes) >= 2
}

// IsNaturalFeature reports whether the element is a node tagged with a
// natural feature (beach, peak, wood, ...).
func (e *MapDataElement) IsNaturalFeature() bool {
	return e.Type == "node" && e.Tags.Natural != ""
}
