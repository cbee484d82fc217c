// Package deck provides the shuffle-and-deal primitive shared by all
// mini-games.
package deck

import (
	"github.com/barquest/barquest/internal/dependencies/random"
	"github.com/barquest/barquest/internal/model"
)

// Service shuffles and deals cards using the injected random source
type Service struct {
	random random.Random
}

// New creates a new deck service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Shuffle returns a uniformly shuffled copy of the deck using Fisher-Yates.
// The input deck is never mutated.
func (s *Service) Shuffle(d model.Deck) model.Deck {
	out := make(model.Deck, len(d))
	copy(out, d)
	for i := len(out) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DealOne removes and returns the front card of the deck. The empty case is
// reported explicitly so callers never see a zero-value card by accident.
func (s *Service) DealOne(d model.Deck) (model.Card, model.Deck, error) {
	if len(d) == 0 {
		return model.Card{}, d, model.ErrEmptyDeck
	}
	return d[0], d[1:], nil
}
