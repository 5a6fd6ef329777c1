package endpoints

// A request for map data around a center point.
type MapDataRequest struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
}
