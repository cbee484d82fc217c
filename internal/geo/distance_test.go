package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference coordinates near the venue catalog's center
const (
	baseLat = 41.380841369044106
	baseLon = 2.1845503791450893
)

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, Distance(baseLat, baseLon, baseLat, baseLon))
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Distance(baseLat, baseLon, 40.4168, -3.7038)
	b := Distance(40.4168, -3.7038, baseLat, baseLon)
	assert.Equal(t, a, b)
}

func TestDistanceKnownValue(t *testing.T) {
	// Barcelona to Madrid center, roughly 505 km
	d := Distance(41.3874, 2.1686, 40.4168, -3.7038)
	assert.InDelta(t, 505000, d, 2000)
}

func TestDistanceOneDegreeOfLatitude(t *testing.T) {
	// Along a meridian the haversine formula is exact: R * 1 degree in radians
	d := Distance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 1)
}

func TestWithinCheckInRange(t *testing.T) {
	// ~0.00040 degrees of latitude is ~44m; ~0.00050 is ~56m
	near := baseLat + 0.00040
	far := baseLat + 0.00050

	assert.True(t, WithinCheckInRange(baseLat, baseLon, baseLat, baseLon))
	assert.True(t, WithinCheckInRange(near, baseLon, baseLat, baseLon))
	assert.False(t, WithinCheckInRange(far, baseLon, baseLat, baseLon))
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters   float64
		expected string
	}{
		{0, "0m"},
		{42.4, "42m"},
		{999, "999m"},
		{1000, "1.0km"},
		{1500, "1.5km"},
		{12345, "12.3km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDistance(tt.meters))
	}
}
