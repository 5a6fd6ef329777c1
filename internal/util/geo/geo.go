package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// A Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b Point) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Bearing returns the initial bearing from a to b in degrees [0, 360),
// where 0 is north and 90 is east.
func Bearing(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Cardinal converts a bearing in degrees to one of the eight compass
// directions.
func Cardinal(bearing float64) string {
	bearing = math.Mod(bearing, 360)
	if bearing < 0 {
		bearing += 360
	}
	switch {
	case bearing < 22.5 || bearing >= 337.5:
		return "N"
	case bearing < 67.5:
		return "NE"
	case bearing < 112.5:
		return "E"
	case bearing < 157.5:
		return "SE"
	case bearing < 202.5:
		return "S"
	case bearing < 247.5:
		return "SW"
	case bearing < 292.5:
		return "W"
	default:
		return "NW"
	}
}
