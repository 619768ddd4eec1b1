package geotrack

import (
	"math"

	"github.com/golang/geo/s2"
)

// Mean earth radius used for the horizontal distance.
const earthRadiusMeters = 6371000.0

// segmentDistance returns the distance in meters between two points, combining the
// great-circle distance on a sphere of radius 6371km with the elevation difference.
func segmentDistance(a, b trackPoint) float64 {
	angle := s2.LatLngFromDegrees(a.lat, a.lon).Distance(s2.LatLngFromDegrees(b.lat, b.lon))
	horizontal := angle.Radians() * earthRadiusMeters
	vertical := math.Abs(b.ele - a.ele)

	return math.Sqrt(horizontal*horizontal + vertical*vertical)
}

// pathDistance sums segmentDistance over consecutive points.
func pathDistance(points []trackPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += segmentDistance(points[i-1], points[i])
	}
	return total
}
