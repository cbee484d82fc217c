// Package geo provides great-circle distance computation and the proximity
// gate used for venue check-ins.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula
const EarthRadiusMeters = 6371000.0

// CheckInRadiusMeters is the proximity gate for check-ins. It is the single
// source of truth: the on-map range indicator must use the same value.
const CheckInRadiusMeters = 50.0

// Distance returns the great-circle distance in meters between two
// coordinates using the haversine formula on a spherical-earth
// approximation. NaN or out-of-range inputs propagate NaN.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinCheckInRange reports whether the user is close enough to the venue to
// check in. The boundary at exactly CheckInRadiusMeters is inclusive.
func WithinCheckInRange(userLat, userLon, venueLat, venueLon float64) bool {
	return Distance(userLat, userLon, venueLat, venueLon) <= CheckInRadiusMeters
}

// FormatDistance renders a distance for display: integer meters below 1 km,
// kilometers to one decimal place at or above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0fm", meters)
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
