// Package higherlower manages the turn-based higher/lower betting game. One
// card is face-up; the current player bets on the next card's rank, the result
// is shown, and play advances until the deck runs out.
package higherlower

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/dependencies/clock"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/deck"
	"github.com/barquest/barquest/internal/services/outcome"
	"github.com/barquest/barquest/internal/storage"
)

// Controller manages higher-lower sessions and their phase transitions
type Controller struct {
	storage     storage.Storage
	deckService *deck.Service
	clock       clock.Clock
	logger      *slog.Logger
}

// NewController creates a new higher-lower controller
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

// New creates a session for the given roster, shuffles the deck, and turns
// the first card face-up. Name rules match the card game roster.
func (c *Controller) New(ctx context.Context, playerNames []string) (*model.HigherLowerSession, error) {
	players := make([]model.Player, 0, len(playerNames))
	seen := map[string]bool{}
	for _, name := range playerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, model.ErrEmptyPlayerName
		}
		if len([]rune(name)) > model.MaxPlayerNameLength {
			return nil, model.ErrPlayerNameTooLong
		}
		if seen[name] {
			return nil, model.ErrDuplicatePlayerName
		}
		seen[name] = true
		players = append(players, model.Player{
			ID:   model.PlayerID(uuid.NewString()),
			Name: name,
		})
	}
	if len(players) < 2 {
		return nil, model.ErrNotEnoughPlayers
	}

	now := c.clock.Now()
	session := &model.HigherLowerSession{
		ID:        model.HigherLowerID(uuid.NewString()),
		Players:   players,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.startRound(session); err != nil {
		return nil, err
	}

	if err := c.storage.SaveHigherLower(ctx, session); err != nil {
		return nil, err
	}
	c.logger.Info("higher-lower game created",
		"game_id", session.ID, "players", len(players))
	return session, nil
}

// Get loads a session by id
func (c *Controller) Get(ctx context.Context, id model.HigherLowerID) (*model.HigherLowerSession, error) {
	return c.storage.GetHigherLower(ctx, id)
}

// PlaceBet draws the next card and resolves the current player's bet. The
// drawn card stays transiently revealed until Advance promotes it.
func (c *Controller) PlaceBet(ctx context.Context, id model.HigherLowerID, direction model.BetDirection) (*model.HigherLowerSession, error) {
	session, err := c.storage.GetHigherLower(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase == model.HigherLowerPhaseGameOver {
		return nil, model.ErrGameOver
	}
	if session.Phase != model.HigherLowerPhaseWaitingForBet {
		return nil, model.ErrInvalidPhase
	}
	if !direction.Valid() {
		return nil, model.ErrInvalidBet
	}

	drawn, rest, err := c.deckService.DealOne(session.Deck)
	if err != nil {
		return nil, err
	}

	result := outcome.Evaluate(direction, session.CurrentCard.Rank, drawn.Rank)
	player := session.CurrentPlayer()

	session.Deck = rest
	session.DrawnCard = &drawn
	session.LastOutcome = &result
	session.Phase = model.HigherLowerPhaseShowingResult
	session.Message = resultMessage(player, result)
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveHigherLower(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance promotes the drawn card to the current card and either passes the
// turn to the next player or ends the game when the deck is empty.
func (c *Controller) Advance(ctx context.Context, id model.HigherLowerID) (*model.HigherLowerSession, error) {
	session, err := c.storage.GetHigherLower(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Phase != model.HigherLowerPhaseShowingResult {
		return nil, model.ErrInvalidPhase
	}

	session.CurrentCard = *session.DrawnCard
	session.DrawnCard = nil
	session.LastOutcome = nil

	if len(session.Deck) == 0 {
		session.Phase = model.HigherLowerPhaseGameOver
		session.Message = "¡Se acabaron las cartas! Fin de la partida"
	} else {
		session.TurnIndex = (session.TurnIndex + 1) % len(session.Players)
		session.Phase = model.HigherLowerPhaseWaitingForBet
		session.Message = turnMessage(session.CurrentPlayer())
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveHigherLower(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// NewRound reshuffles a full deck for the same roster from any phase
func (c *Controller) NewRound(ctx context.Context, id model.HigherLowerID) (*model.HigherLowerSession, error) {
	session, err := c.storage.GetHigherLower(ctx, id)
	if err != nil {
		return nil, err
	}

	session.TurnIndex = 0
	if err := c.startRound(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveHigherLower(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Controller) startRound(session *model.HigherLowerSession) error {
	cards := c.deckService.Shuffle(catalog.SpanishDeck())
	first, rest, err := c.deckService.DealOne(cards)
	if err != nil {
		return err
	}

	session.Deck = rest
	session.CurrentCard = first
	session.DrawnCard = nil
	session.LastOutcome = nil
	session.Phase = model.HigherLowerPhaseWaitingForBet
	session.Message = turnMessage(session.CurrentPlayer())
	return nil
}

func turnMessage(p model.Player) string {
	return fmt.Sprintf("Turno de %s: ¿mayor o menor?", p.Name)
}

func resultMessage(p model.Player, o model.Outcome) string {
	switch o.Result {
	case model.OutcomeTie:
		return "¡Empate! ¡Todos beben!"
	case model.OutcomeIncorrect:
		return fmt.Sprintf("¡%s falla y bebe!", p.Name)
	default:
		return fmt.Sprintf("¡%s acierta!", p.Name)
	}
}
