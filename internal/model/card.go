package model

// Card is a game catalog entry. Ranks need not be unique or contiguous, and
// the catalog need not match a standard deck size.
type Card struct {
	Name     string
	Rank     int
	ImageURL string
}

// Deck is an ordered, consumable sequence of cards, drawn from the front
type Deck []Card
