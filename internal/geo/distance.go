// Package geo provides great-circle distance calculations for
// proximity-based user discovery.
package geo

import "math"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Coordinate is a WGS84 latitude/longitude pair in degrees.
// Values are assumed valid; no range validation is performed.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance computes the great-circle distance between two coordinates in
// kilometers using the haversine formula. It returns 0 for identical
// coordinates and is symmetric up to floating-point rounding. The
// approximation degrades near antipodal points, which is acceptable for
// short-range discovery.
func Distance(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
