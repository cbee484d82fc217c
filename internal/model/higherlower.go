package model

import "time"

// HigherLowerID uniquely identifies a higher-lower session
type HigherLowerID string

// HigherLowerPhase represents the current phase of a higher-lower session
type HigherLowerPhase string

const (
	HigherLowerPhaseWaitingForBet HigherLowerPhase = "waitingForBet" // Current card face-up, awaiting a bet
	HigherLowerPhaseShowingResult HigherLowerPhase = "showingResult" // Drawn card revealed, outcome decided
	HigherLowerPhaseGameOver      HigherLowerPhase = "gameOver"      // Deck exhausted; only a new game leaves this
)

// Presentation pacing for the flip and result display. Correctness never
// depends on these; the advance transition is caller-driven.
const (
	HigherLowerFlipDelay   = 500 * time.Millisecond
	HigherLowerResultDelay = 3000 * time.Millisecond
)

// BetDirection is the player's guess about the next card
type BetDirection string

const (
	BetHigher BetDirection = "higher"
	BetLower  BetDirection = "lower"
)

// Valid reports whether the direction is one of the two accepted values
func (d BetDirection) Valid() bool {
	return d == BetHigher || d == BetLower
}

// HigherLowerSession is a sequential higher/lower betting round. Players take
// turns in roster order; the deck is consumed from the front until empty.
type HigherLowerSession struct {
	ID    HigherLowerID
	Phase HigherLowerPhase

	Players   []Player
	TurnIndex int

	Deck        Deck
	CurrentCard Card
	// DrawnCard is the transiently revealed card while showing a result
	DrawnCard *Card

	LastOutcome *Outcome
	Message     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (s *HigherLowerSession) CurrentPlayer() Player {
	return s.Players[s.TurnIndex]
}
