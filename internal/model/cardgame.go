package model

import "time"

// CardGameID uniquely identifies a card game session
type CardGameID string

// CardGamePhase represents the current phase of a card game session
type CardGamePhase string

const (
	CardGamePhaseSetup       CardGamePhase = "setup"       // Editing the player roster
	CardGamePhaseDistributed CardGamePhase = "distributed" // Cards dealt, revealing one by one
	CardGamePhaseRevealed    CardGamePhase = "revealed"    // All cards face-up, loser decided
)

// Reveal pacing for the card game. The engine itself never sleeps; these are
// presentation hints returned to clients so flips appear sequentially.
const (
	CardGameFirstRevealDelay = 1000 * time.Millisecond
	CardGameRevealInterval   = 500 * time.Millisecond
	CardGameLoserRevealDelay = 800 * time.Millisecond
)

// DealtCard is one player's card for the current round
type DealtCard struct {
	PlayerID PlayerID
	Card     Card
	Revealed bool
}

// CardGameSession is a round of the simultaneous lowest-card-loses game.
// Cards are revealed strictly in dealing order; the loser is computed only
// after the final reveal.
type CardGameSession struct {
	ID    CardGameID
	Phase CardGamePhase

	// Roster in registration order. Dealing and reveal order follow it.
	Players []Player

	// Dealt cards for the current round, one per player, in roster order.
	// Nil while in setup.
	Dealt []DealtCard

	// Number of cards revealed so far this round
	RevealedCount int

	// Loser of the finished round; empty until the phase is revealed
	Loser PlayerID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllRevealed reports whether every dealt card is face-up
func (s *CardGameSession) AllRevealed() bool {
	return len(s.Dealt) > 0 && s.RevealedCount >= len(s.Dealt)
}

// HasPlayerNamed reports whether the roster already holds the given name
func (s *CardGameSession) HasPlayerNamed(name string) bool {
	for _, p := range s.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}
