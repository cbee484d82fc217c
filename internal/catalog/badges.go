package catalog

import "github.com/barquest/barquest/internal/model"

// BadgeDefinition is a static badge catalog entry. Each definition carries a
// declarative counting rule instead of a per-badge switch: Counts decides
// whether a single check-in qualifies, DistinctVenues switches the counter to
// distinct venue ids, and MaxProgress (when > 0) caps the counter.
type BadgeDefinition struct {
	ID          model.BadgeID
	Name        string
	Description string
	Icon        string
	Requirement int

	// Counts reports whether a check-in contributes progress. The resolved
	// venue is nil when the check-in's venue id no longer resolves; such
	// check-ins are excluded from category counts, not treated as errors.
	Counts func(ci model.CheckIn, venue *model.Venue) bool

	// DistinctVenues counts distinct qualifying venue ids instead of
	// individual check-ins
	DistinctVenues bool

	// MaxProgress caps the progress counter when > 0
	MaxProgress int
}

func countsAny(model.CheckIn, *model.Venue) bool {
	return true
}

func countsCategory(cat model.VenueCategory) func(model.CheckIn, *model.Venue) bool {
	return func(_ model.CheckIn, venue *model.Venue) bool {
		return venue != nil && venue.Category == cat
	}
}

// BadgeDefinitions returns the static badge catalog
func BadgeDefinitions() []BadgeDefinition {
	return []BadgeDefinition{
		{
			ID:          "first-check-in",
			Name:        "First Steps",
			Description: "Complete your first check-in",
			Icon:        "🎯",
			Requirement: 1,
			Counts:      countsAny,
			MaxProgress: 1,
		},
		{
			ID:             "explorer",
			Name:           "Explorer",
			Description:    "Check in to 5 different locations",
			Icon:           "🗺️",
			Requirement:    5,
			Counts:         countsAny,
			DistinctVenues: true,
		},
		{
			ID:             "social-butterfly",
			Name:           "Social Butterfly",
			Description:    "Check in to 10 different locations",
			Icon:           "🦋",
			Requirement:    10,
			Counts:         countsAny,
			DistinctVenues: true,
		},
		{
			ID:          "bar-hopper",
			Name:        "Bar Hopper",
			Description: "Check in to 5 bars",
			Icon:        "🍺",
			Requirement: 5,
			Counts:      countsCategory(model.VenueCategoryBar),
		},
		{
			ID:          "foodie",
			Name:        "Foodie",
			Description: "Check in to 5 restaurants",
			Icon:        "🍽️",
			Requirement: 5,
			Counts:      countsCategory(model.VenueCategoryRestaurant),
		},
		{
			ID:          "coffee-lover",
			Name:        "Coffee Lover",
			Description: "Check in to 3 cafés",
			Icon:        "☕",
			Requirement: 3,
			Counts:      countsCategory(model.VenueCategoryCafe),
		},
	}
}
