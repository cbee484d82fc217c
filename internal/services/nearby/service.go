// Package nearby annotates the venue catalog with distances from a caller
// position.
package nearby

import (
	"sort"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/geo"
	"github.com/barquest/barquest/internal/model"
)

// Venue is a catalog venue annotated with its distance from the query
// position. DistanceMeters is the raw value; Distance is the display form.
type Venue struct {
	model.Venue
	DistanceMeters float64
	Distance       string
	WithinRange    bool
}

// Service lists venues by distance from a position
type Service struct {
	venues *catalog.VenueCatalog
}

// New creates a new nearby service
func New(venues *catalog.VenueCatalog) *Service {
	return &Service{venues: venues}
}

// List returns every catalog venue annotated with its distance from the given
// position, nearest first.
func (s *Service) List(lat, lon float64) []Venue {
	all := s.venues.All()
	result := make([]Venue, 0, len(all))

	for _, v := range all {
		d := geo.Distance(lat, lon, v.Latitude, v.Longitude)
		result = append(result, Venue{
			Venue:          v,
			DistanceMeters: d,
			Distance:       geo.FormatDistance(d),
			WithinRange:    d <= geo.CheckInRadiusMeters,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})
	return result
}

// Get returns a single venue annotated with its distance from the position
func (s *Service) Get(id model.VenueID, lat, lon float64) (Venue, error) {
	v, ok := s.venues.Get(id)
	if !ok {
		return Venue{}, model.ErrVenueNotFound
	}

	d := geo.Distance(lat, lon, v.Latitude, v.Longitude)
	return Venue{
		Venue:          v,
		DistanceMeters: d,
		Distance:       geo.FormatDistance(d),
		WithinRange:    d <= geo.CheckInRadiusMeters,
	}, nil
}
