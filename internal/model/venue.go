package model

// VenueID uniquely identifies a venue in the static catalog
type VenueID string

// VenueCategory classifies a venue for badge progress
type VenueCategory string

const (
	VenueCategoryBar        VenueCategory = "bar"
	VenueCategoryRestaurant VenueCategory = "restaurant"
	VenueCategoryCafe       VenueCategory = "café"
)

// Venue is a static catalog entry. Venues are loaded once at startup and
// never mutated.
type Venue struct {
	ID          VenueID
	Name        string
	Latitude    float64
	Longitude   float64
	Address     string
	Description string
	ImageURL    string
	Rating      float64
	Category    VenueCategory
}
