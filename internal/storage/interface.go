package storage

import (
	"context"

	"github.com/barquest/barquest/internal/model"
)

// Storage defines the interface for data persistence. Profiles are the only
// durable entity; game sessions are ephemeral and backends may expire them.
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context, id model.ProfileID) (*model.UserProfile, error)
	DeleteProfile(ctx context.Context, id model.ProfileID) error

	// Card game session operations
	SaveCardGame(ctx context.Context, session *model.CardGameSession) error
	GetCardGame(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error)
	DeleteCardGame(ctx context.Context, id model.CardGameID) error

	// Higher-lower session operations
	SaveHigherLower(ctx context.Context, session *model.HigherLowerSession) error
	GetHigherLower(ctx context.Context, id model.HigherLowerID) (*model.HigherLowerSession, error)
	DeleteHigherLower(ctx context.Context, id model.HigherLowerID) error
}
