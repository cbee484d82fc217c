package model

import "errors"

// Common errors used across the application
var (
	// Venue and profile errors
	ErrVenueNotFound     = errors.New("venue not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrOutOfCheckInRange = errors.New("too far from venue to check in")

	// Roster errors
	ErrEmptyPlayerName     = errors.New("player name cannot be empty")
	ErrPlayerNameTooLong   = errors.New("player name is too long")
	ErrDuplicatePlayerName = errors.New("a player with that name already exists")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotEnoughPlayers    = errors.New("not enough players")
	ErrNotEnoughCards      = errors.New("not enough cards for the number of players")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidPhase = errors.New("action not allowed in the current phase")
	ErrEmptyDeck    = errors.New("deck is empty")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidBet   = errors.New("bet must be higher or lower")

	// Truth-or-dare errors
	ErrUnknownPromptType = errors.New("unknown prompt type")
)
