package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Entities
// are stored as JSON blobs; game sessions carry a TTL so abandoned sessions
// decay on their own.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	// Profiles are durable: no TTL
	return s.client.Set(ctx, profileKey(profile.ID), data, 0).Err()
}

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.UserProfile, error) {
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.ProfileID) error {
	return s.client.Del(ctx, profileKey(id)).Err()
}

// Card game session operations

func (s *Storage) SaveCardGame(ctx context.Context, session *model.CardGameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cardGameKey(session.ID), data, s.cfg.GameSessionTTL).Err()
}

func (s *Storage) GetCardGame(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	data, err := s.client.Get(ctx, cardGameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var session model.CardGameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteCardGame(ctx context.Context, id model.CardGameID) error {
	return s.client.Del(ctx, cardGameKey(id)).Err()
}

// Higher-lower session operations

func (s *Storage) SaveHigherLower(ctx context.Context, session *model.HigherLowerSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, higherLowerKey(session.ID), data, s.cfg.GameSessionTTL).Err()
}

func (s *Storage) GetHigherLower(ctx context.Context, id model.HigherLowerID) (*model.HigherLowerSession, error) {
	data, err := s.client.Get(ctx, higherLowerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var session model.HigherLowerSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteHigherLower(ctx context.Context, id model.HigherLowerID) error {
	return s.client.Del(ctx, higherLowerKey(id)).Err()
}
