// Package geofence decides whether a measured coordinate lies within an
// allowed radius of a project's site reference point.
package geofence

import "math"

const (
	// EarthRadiusMeters is the mean Earth radius used for haversine distance.
	EarthRadiusMeters = 6371000.0

	// DefaultRadiusMeters is the site boundary applied when a project has no
	// per-project override.
	DefaultRadiusMeters = 100.0
)

// Result is the outcome of a geofence check. Validated is false when the
// project has no reference point; WithinGeofence and DistanceMeters carry no
// meaning in that case.
type Result struct {
	Validated      bool
	WithinGeofence bool
	DistanceMeters float64
}

// ValidCoordinate reports whether (lat, lon) is a usable coordinate pair:
// both finite, latitude in [-90, 90], longitude in [-180, 180].
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceMeters computes the great-circle distance between two coordinates
// with the haversine formula. Callers are expected to pass valid coordinates.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Classify checks the measured point against the site reference point.
// A point exactly on the boundary counts as within the fence.
func Classify(lat, lon, refLat, refLon, thresholdMeters float64) Result {
	d := DistanceMeters(lat, lon, refLat, refLon)
	return Result{
		Validated:      true,
		WithinGeofence: d <= thresholdMeters,
		DistanceMeters: d,
	}
}

// NotValidated is the result for projects without a site reference point.
// Geofencing is advisory; missing site data never blocks a clock action.
func NotValidated() Result {
	return Result{}
}
