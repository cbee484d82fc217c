package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barquest/barquest/internal/model"
)

func TestDefaultVenuesList(t *testing.T) {
	venues := DefaultVenues()
	require.Len(t, venues, 22)
	assert.Equal(t, model.VenueID("1"), venues[0].ID)
	assert.Equal(t, "El Portal Tapas Bar", venues[0].Name)
}

func TestDefaultVenuesReturnsCopy(t *testing.T) {
	venues := DefaultVenues()
	venues[0].Name = "mutated"

	assert.Equal(t, "El Portal Tapas Bar", DefaultVenues()[0].Name)
}

func TestDefaultVenuesBuildCatalog(t *testing.T) {
	c := NewVenueCatalog(DefaultVenues())
	require.Equal(t, 22, c.Len())

	v, ok := c.Get("3")
	require.True(t, ok)
	assert.Equal(t, model.VenueCategoryCafe, v.Category)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}
