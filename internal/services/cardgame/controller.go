// Package cardgame manages the simultaneous lowest-card-loses game: a roster
// is assembled, everyone gets one card from a shuffled deck, and cards are
// flipped in dealing order until the loser is known.
package cardgame

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/dependencies/clock"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/deck"
	"github.com/barquest/barquest/internal/storage"
)

// Controller manages card game sessions and their phase transitions
type Controller struct {
	storage     storage.Storage
	deckService *deck.Service
	clock       clock.Clock
	logger      *slog.Logger
}

// NewController creates a new card game controller
func NewController(
	storage storage.Storage,
	deckService *deck.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		deckService: deckService,
		clock:       clock,
		logger:      logger,
	}
}

// NewSession creates an empty session in the setup phase
func (c *Controller) NewSession(ctx context.Context) (*model.CardGameSession, error) {
	now := c.clock.Now()
	session := &model.CardGameSession{
		ID:        model.CardGameID(uuid.NewString()),
		Phase:     model.CardGamePhaseSetup,
		Players:   []model.Player{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveCardGame(ctx, session); err != nil {
		return nil, err
	}
	c.logger.Info("card game created", "game_id", session.ID)
	return session, nil
}

// Get loads a session by id
func (c *Controller) Get(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	return c.storage.GetCardGame(ctx, id)
}

// AddPlayer registers a player during setup. Names are trimmed and must be
// non-empty, at most MaxPlayerNameLength runes, and unique within the roster.
// The roster is capped at the deck size so every player can receive a card.
func (c *Controller) AddPlayer(ctx context.Context, id model.CardGameID, name string) (*model.CardGameSession, error) {
	session, err := c.storage.GetCardGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != model.CardGamePhaseSetup {
		return nil, model.ErrInvalidPhase
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}
	if len([]rune(name)) > model.MaxPlayerNameLength {
		return nil, model.ErrPlayerNameTooLong
	}
	if session.HasPlayerNamed(name) {
		return nil, model.ErrDuplicatePlayerName
	}
	if len(session.Players) >= len(catalog.SpanishDeck()) {
		return nil, model.ErrNotEnoughCards
	}

	session.Players = append(session.Players, model.Player{
		ID:   model.PlayerID(uuid.NewString()),
		Name: name,
	})
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveCardGame(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RemovePlayer drops a player from the roster during setup
func (c *Controller) RemovePlayer(ctx context.Context, id model.CardGameID, playerID model.PlayerID) (*model.CardGameSession, error) {
	session, err := c.storage.GetCardGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != model.CardGamePhaseSetup {
		return nil, model.ErrInvalidPhase
	}

	for i, p := range session.Players {
		if p.ID == playerID {
			session.Players = append(session.Players[:i], session.Players[i+1:]...)
			session.UpdatedAt = c.clock.Now()
			if err := c.storage.SaveCardGame(ctx, session); err != nil {
				return nil, err
			}
			return session, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// Deal shuffles a fresh deck and gives every player one card, moving the
// session to the distributed phase. Requires at least two players.
func (c *Controller) Deal(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	session, err := c.storage.GetCardGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != model.CardGamePhaseSetup {
		return nil, model.ErrInvalidPhase
	}
	return c.deal(ctx, session)
}

// PlayAgain re-deals for the same roster once a round has fully resolved
func (c *Controller) PlayAgain(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	session, err := c.storage.GetCardGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != model.CardGamePhaseRevealed {
		return nil, model.ErrInvalidPhase
	}
	return c.deal(ctx, session)
}

func (c *Controller) deal(ctx context.Context, session *model.CardGameSession) (*model.CardGameSession, error) {
	if len(session.Players) < 2 {
		return nil, model.ErrNotEnoughPlayers
	}

	cards := c.deckService.Shuffle(catalog.SpanishDeck())
	if len(cards) < len(session.Players) {
		return nil, model.ErrNotEnoughCards
	}

	session.Dealt = make([]model.DealtCard, 0, len(session.Players))
	for i, p := range session.Players {
		session.Dealt = append(session.Dealt, model.DealtCard{
			PlayerID: p.ID,
			Card:     cards[i],
		})
	}
	session.Phase = model.CardGamePhaseDistributed
	session.RevealedCount = 0
	session.Loser = ""
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveCardGame(ctx, session); err != nil {
		return nil, err
	}
	c.logger.Info("cards dealt",
		"game_id", session.ID, "players", len(session.Players))
	return session, nil
}

// RevealNext flips the next card in dealing order. After the last flip the
// loser is computed and the session moves to the revealed phase.
func (c *Controller) RevealNext(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	session, err := c.storage.GetCardGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != model.CardGamePhaseDistributed {
		return nil, model.ErrInvalidPhase
	}

	session.Dealt[session.RevealedCount].Revealed = true
	session.RevealedCount++

	if session.AllRevealed() {
		session.Loser = loserOf(session.Dealt)
		session.Phase = model.CardGamePhaseRevealed
		c.logger.Info("round resolved",
			"game_id", session.ID, "loser", session.Loser)
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveCardGame(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset discards the dealt cards and returns to setup so the roster can be
// edited. The roster itself is kept.
func (c *Controller) Reset(ctx context.Context, id model.CardGameID) (*model.CardGameSession, error) {
	session, err := c.storage.GetCardGame(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Phase = model.CardGamePhaseSetup
	session.Dealt = nil
	session.RevealedCount = 0
	session.Loser = ""
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveCardGame(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// loserOf picks the holder of the lowest rank. Ties go to the earliest card
// in dealing order.
func loserOf(dealt []model.DealtCard) model.PlayerID {
	loser := dealt[0]
	for _, dc := range dealt[1:] {
		if dc.Card.Rank < loser.Card.Rank {
			loser = dc
		}
	}
	return loser.PlayerID
}
