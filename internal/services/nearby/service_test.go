package nearby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/model"
)

const (
	baseLat = 41.380841369044106
	baseLon = 2.1845503791450893
)

func testService() *Service {
	return New(catalog.NewVenueCatalog([]model.Venue{
		{ID: "far", Name: "Far Bar", Latitude: baseLat + 0.01, Longitude: baseLon},
		{ID: "here", Name: "Here Bar", Latitude: baseLat, Longitude: baseLon},
		{ID: "near", Name: "Near Bar", Latitude: baseLat + 0.001, Longitude: baseLon},
	}))
}

func TestListSortsNearestFirst(t *testing.T) {
	venues := testService().List(baseLat, baseLon)
	require.Len(t, venues, 3)

	assert.Equal(t, model.VenueID("here"), venues[0].ID)
	assert.Equal(t, model.VenueID("near"), venues[1].ID)
	assert.Equal(t, model.VenueID("far"), venues[2].ID)
}

func TestListAnnotatesDistanceAndRange(t *testing.T) {
	venues := testService().List(baseLat, baseLon)
	require.Len(t, venues, 3)

	assert.Zero(t, venues[0].DistanceMeters)
	assert.Equal(t, "0m", venues[0].Distance)
	assert.True(t, venues[0].WithinRange)

	// 0.001 degrees of latitude is roughly 111 meters
	assert.InDelta(t, 111.2, venues[1].DistanceMeters, 1)
	assert.Equal(t, "111m", venues[1].Distance)
	assert.False(t, venues[1].WithinRange)

	assert.Equal(t, "1.1km", venues[2].Distance)
}

func TestGet(t *testing.T) {
	v, err := testService().Get("near", baseLat, baseLon)
	require.NoError(t, err)

	assert.Equal(t, "Near Bar", v.Name)
	assert.InDelta(t, 111.2, v.DistanceMeters, 1)
	assert.False(t, v.WithinRange)
}

func TestGetUnknownVenue(t *testing.T) {
	_, err := testService().Get("nope", baseLat, baseLon)
	assert.ErrorIs(t, err, model.ErrVenueNotFound)
}
