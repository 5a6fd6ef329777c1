package endpoints

// A request to compute a route between two coordinates.
type RouteRequest struct {
	// Origin and destination as [lat, lon]
	Start []float64 `json:"start"`
	End   []float64 `json:"end"`

	// Extra travel time tolerated for a scenic detour
	ExtraMinutes float64 `json:"extra_minutes"`

	// Named weight profile to route with
	Profile string `json:"profile"`
}

// GeoJSON shaping of the chosen route.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"` // [lon, lat] pairs
}

type GeoJSONProperties struct {
	Cost   float64 `json:"cost"`
	Weight string  `json:"weight"`
}

type GeoJSONFeature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties GeoJSONProperties `json:"properties"`
}

type ScenicBreakdown struct {
	TotalScenicScore       float64 `json:"total_scenic_score"`
	TotalTravelTimeSeconds float64 `json:"total_travel_time_seconds"`
}

type StreetEntry struct {
	Direction       string  `json:"direction"`
	DirectionSymbol string  `json:"direction_symbol"`
	Street          string  `json:"street"`
	Miles           float64 `json:"miles"`
}

type WeightsUsed struct {
	ScenicByType map[string]float64 `json:"scenic_by_type"`
	NaturalByTag map[string]float64 `json:"natural_by_type"`
}

// Result of a route computation.
type RouteResponse struct {
	GeoJSON         GeoJSONFeature  `json:"geojson"`
	ScenicBreakdown ScenicBreakdown `json:"scenic_breakdown"`
	StreetBreakdown []StreetEntry   `json:"street_breakdown"`
	Start           []float64       `json:"start"`
	End             []float64       `json:"end"`
	ExtraMinutes    float64         `json:"extra_minutes"`
	Profile         string          `json:"profile"`
	WeightsUsed     WeightsUsed     `json:"weights_used"`

	Err string `json:"err,omitempty"`
}

// A request to save a named weight profile.
type SaveProfileRequest struct {
	Name         string             `json:"name"`
	ScenicByType map[string]float64 `json:"scenic_by_type"`
	NaturalByTag map[string]float64 `json:"natural_by_type"`
}

type SaveProfileResponse struct {
	Saved string `json:"saved"`
}

type ListProfilesResponse struct {
	Profiles []string `json:"profiles"`
}
