package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{name: "Origin", lat: 0, lon: 0, expected: true},
		{name: "San Francisco", lat: 37.7749, lon: -122.4194, expected: true},
		{name: "North pole boundary", lat: 90, lon: 0, expected: true},
		{name: "South pole boundary", lat: -90, lon: 0, expected: true},
		{name: "Date line east", lat: 0, lon: 180, expected: true},
		{name: "Date line west", lat: 0, lon: -180, expected: true},
		{name: "Latitude above range", lat: 90.0001, lon: 0, expected: false},
		{name: "Latitude 95", lat: 95, lon: 0, expected: false},
		{name: "Latitude below range", lat: -90.0001, lon: 0, expected: false},
		{name: "Longitude above range", lat: 0, lon: 180.0001, expected: false},
		{name: "Longitude below range", lat: 0, lon: -180.0001, expected: false},
		{name: "NaN latitude", lat: math.NaN(), lon: 0, expected: false},
		{name: "NaN longitude", lat: 0, lon: math.NaN(), expected: false},
		{name: "Inf latitude", lat: math.Inf(1), lon: 0, expected: false},
		{name: "Negative inf longitude", lat: 0, lon: math.Inf(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidCoordinate(tt.lat, tt.lon))
		})
	}
}

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{37.7749, -122.4194},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		assert.Zero(t, DistanceMeters(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	ab := DistanceMeters(37.7749, -122.4194, 34.0522, -118.2437)
	ba := DistanceMeters(34.0522, -118.2437, 37.7749, -122.4194)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expectedM              float64
		toleranceM             float64
	}{
		{
			// SF to LA, roughly 559 km great-circle
			name: "San Francisco to Los Angeles",
			lat1: 37.7749, lon1: -122.4194,
			lat2: 34.0522, lon2: -118.2437,
			expectedM:  559000,
			toleranceM: 2000,
		},
		{
			// One degree of latitude is ~111.2 km on the sphere
			name: "One degree of latitude",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			expectedM:  111195,
			toleranceM: 50,
		},
		{
			// ~100 m north of the reference at SF latitudes
			name: "Hundred meters north",
			lat1: 37.7749, lon1: -122.4194,
			lat2: 37.77580, lon2: -122.4194,
			expectedM:  100,
			toleranceM: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistanceMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedM, d, tt.toleranceM)
		})
	}
}

func TestClassify_BoundaryIsInside(t *testing.T) {
	// Exactly at the threshold counts as within the fence.
	d := DistanceMeters(37.7749, -122.4194, 37.7750, -122.4194)
	res := Classify(37.7750, -122.4194, 37.7749, -122.4194, d)
	assert.True(t, res.Validated)
	assert.True(t, res.WithinGeofence)
	assert.InDelta(t, d, res.DistanceMeters, 1e-9)

	// The tiniest shrink of the threshold flips it outside.
	res = Classify(37.7750, -122.4194, 37.7749, -122.4194, d-0.000001)
	assert.False(t, res.WithinGeofence)
}

func TestClassify_MonotonicInThreshold(t *testing.T) {
	lat, lon := 37.7760, -122.4194
	refLat, refLon := 37.7749, -122.4194

	within := false
	for threshold := 0.0; threshold <= 500; threshold += 10 {
		res := Classify(lat, lon, refLat, refLon, threshold)
		if within {
			// Raising the threshold can only turn the flag on, never off.
			assert.True(t, res.WithinGeofence, "threshold %v flipped back outside", threshold)
		}
		within = res.WithinGeofence
	}
	assert.True(t, within, "point should be inside a 500m fence")
}

func TestClassify_DefaultRadius(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		within   bool
	}{
		{name: "At the reference point", lat: 37.7749, lon: -122.4194, within: true},
		{name: "About 50m away", lat: 37.77535, lon: -122.4194, within: true},
		{name: "About 200m away", lat: 37.7767, lon: -122.4194, within: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.lat, tt.lon, 37.7749, -122.4194, DefaultRadiusMeters)
			assert.True(t, res.Validated)
			assert.Equal(t, tt.within, res.WithinGeofence)
		})
	}
}

func TestNotValidated(t *testing.T) {
	res := NotValidated()
	assert.False(t, res.Validated)
	assert.False(t, res.WithinGeofence)
	assert.Zero(t, res.DistanceMeters)
}
