package memory

import (
	"context"
	"sync"

	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	profiles    map[model.ProfileID]*model.UserProfile
	cardGames   map[model.CardGameID]*model.CardGameSession
	higherLower map[model.HigherLowerID]*model.HigherLowerSession
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles:    make(map[model.ProfileID]*model.UserProfile),
		cardGames:   make(map[model.CardGameID]*model.CardGameSession),
		higherLower: make(map[model.HigherLowerID]*model.HigherLowerSession),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.ProfileID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

// Card game session operations

func (s *Storage) SaveCardGame(ctx context.Context, session *model.CardGameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cardGames[session.ID] = session
	return nil
}

func (s *Storage) GetCardGame(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.cardGames[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return session, nil
}

func (s *Storage) DeleteCardGame(ctx context.Context, id model.CardGameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cardGames, id)
	return nil
}

// Higher-lower session operations

func (s *Storage) SaveHigherLower(ctx context.Context, session *model.HigherLowerSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.higherLower[session.ID] = session
	return nil
}

func (s *Storage) GetHigherLower(ctx context.Context, id model.HigherLowerID) (*model.HigherLowerSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.higherLower[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return session, nil
}

func (s *Storage) DeleteHigherLower(ctx context.Context, id model.HigherLowerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.higherLower, id)
	return nil
}
