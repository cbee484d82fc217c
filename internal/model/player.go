package model

// PlayerID identifies a player within a single game session
type PlayerID string

// Player is an ephemeral game participant, distinct from UserProfile. Created
// at game setup, held only for the session, discarded when the game resets.
type Player struct {
	ID   PlayerID
	Name string
}

// MaxPlayerNameLength matches the input limit enforced at registration
const MaxPlayerNameLength = 20
