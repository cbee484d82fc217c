// Package badge recomputes badge progress from check-in history.
package badge

import (
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/model"
)

// Service evaluates the badge catalog against a check-in history. Evaluation
// is a pure function of (definitions, history, venue catalog): prior badge
// state never feeds in, so replaying history is idempotent.
type Service struct {
	definitions []catalog.BadgeDefinition
	venues      *catalog.VenueCatalog
}

// New creates a new badge service
func New(definitions []catalog.BadgeDefinition, venues *catalog.VenueCatalog) *Service {
	return &Service{
		definitions: definitions,
		venues:      venues,
	}
}

// Evaluate recomputes every badge's progress and earned state from the full
// history. Check-ins whose venue id no longer resolves are excluded from
// category counts rather than treated as errors.
func (s *Service) Evaluate(history []model.CheckIn) []model.Badge {
	badges := make([]model.Badge, 0, len(s.definitions))

	for _, def := range s.definitions {
		progress := s.progressFor(def, history)
		badges = append(badges, model.Badge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Requirement: def.Requirement,
			Progress:    progress,
			Earned:      progress >= def.Requirement,
		})
	}

	return badges
}

func (s *Service) progressFor(def catalog.BadgeDefinition, history []model.CheckIn) int {
	progress := 0
	seen := map[model.VenueID]bool{}

	for _, ci := range history {
		var venue *model.Venue
		if v, ok := s.venues.Get(ci.VenueID); ok {
			venue = &v
		}
		if !def.Counts(ci, venue) {
			continue
		}
		if def.DistinctVenues {
			if seen[ci.VenueID] {
				continue
			}
			seen[ci.VenueID] = true
		}
		progress++
	}

	if def.MaxProgress > 0 && progress > def.MaxProgress {
		progress = def.MaxProgress
	}
	return progress
}
