package response

import (
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/nearby"
	"github.com/barquest/barquest/internal/services/spin"
)

// Venue represents a catalog venue in API responses
type Venue struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
}

// VenueFromModel converts a model.Venue to a response Venue
func VenueFromModel(v model.Venue) Venue {
	return Venue{
		ID:          string(v.ID),
		Name:        v.Name,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		Address:     v.Address,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		Rating:      v.Rating,
		Category:    string(v.Category),
	}
}

// NearbyVenue is a venue annotated with its distance from the caller
type NearbyVenue struct {
	Venue
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"`
	WithinRange    bool    `json:"within_range"`
}

// NearbyVenueFromService converts a nearby.Venue
func NearbyVenueFromService(v nearby.Venue) NearbyVenue {
	return NearbyVenue{
		Venue:          VenueFromModel(v.Venue),
		DistanceMeters: v.DistanceMeters,
		Distance:       v.Distance,
		WithinRange:    v.WithinRange,
	}
}

// Badge is the progress state for one badge
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Progress    int    `json:"progress"`
	Earned      bool   `json:"earned"`
}

// CheckIn is one recorded venue visit
type CheckIn struct {
	VenueID   string `json:"venue_id"`
	VenueName string `json:"venue_name"`
	Timestamp int64  `json:"timestamp"`
	Points    int    `json:"points"`
}

// Profile represents a user profile. The storage schema version is internal
// and never exposed on the wire.
type Profile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Points   int       `json:"points"`
	Level    int       `json:"level"`
	CheckIns []CheckIn `json:"check_ins"`
	Badges   []Badge   `json:"badges"`
}

// ProfileFromModel converts a model.UserProfile
func ProfileFromModel(p *model.UserProfile) Profile {
	checkIns := make([]CheckIn, len(p.CheckIns))
	for i, ci := range p.CheckIns {
		checkIns[i] = CheckIn{
			VenueID:   string(ci.VenueID),
			VenueName: ci.VenueName,
			Timestamp: ci.Timestamp,
			Points:    ci.Points,
		}
	}

	badges := make([]Badge, len(p.Badges))
	for i, b := range p.Badges {
		badges[i] = Badge{
			ID:          string(b.ID),
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			Requirement: b.Requirement,
			Progress:    b.Progress,
			Earned:      b.Earned,
		}
	}

	return Profile{
		ID:       string(p.ID),
		Name:     p.Name,
		Avatar:   p.Avatar,
		Points:   p.Points,
		Level:    p.Level,
		CheckIns: checkIns,
		Badges:   badges,
	}
}

// Card represents a playing card
type Card struct {
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
	ImageURL string `json:"image_url"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		Name:     c.Name,
		Rank:     c.Rank,
		ImageURL: c.ImageURL,
	}
}

// Player represents a game participant
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:   string(p.ID),
		Name: p.Name,
	}
}

func playersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// DealtCard is one player's card. The card face is omitted until it has been
// revealed so clients cannot peek ahead.
type DealtCard struct {
	PlayerID string `json:"player_id"`
	Card     *Card  `json:"card,omitempty"`
	Revealed bool   `json:"revealed"`
}

// CardGame represents a card game session. The delay fields are presentation
// hints for sequencing the reveal animation.
type CardGame struct {
	ID                 string      `json:"id"`
	Phase              string      `json:"phase"`
	Players            []Player    `json:"players"`
	Dealt              []DealtCard `json:"dealt,omitempty"`
	RevealedCount      int         `json:"revealed_count"`
	Loser              *Player     `json:"loser,omitempty"`
	FirstRevealDelayMs int64       `json:"first_reveal_delay_ms"`
	RevealIntervalMs   int64       `json:"reveal_interval_ms"`
	LoserRevealDelayMs int64       `json:"loser_reveal_delay_ms"`
}

// CardGameFromModel converts a model.CardGameSession
func CardGameFromModel(s *model.CardGameSession) CardGame {
	var dealt []DealtCard
	for _, dc := range s.Dealt {
		out := DealtCard{
			PlayerID: string(dc.PlayerID),
			Revealed: dc.Revealed,
		}
		if dc.Revealed {
			c := CardFromModel(dc.Card)
			out.Card = &c
		}
		dealt = append(dealt, out)
	}

	var loser *Player
	if s.Loser != "" {
		for _, p := range s.Players {
			if p.ID == s.Loser {
				lp := PlayerFromModel(p)
				loser = &lp
			}
		}
	}

	return CardGame{
		ID:                 string(s.ID),
		Phase:              string(s.Phase),
		Players:            playersFromModel(s.Players),
		Dealt:              dealt,
		RevealedCount:      s.RevealedCount,
		Loser:              loser,
		FirstRevealDelayMs: model.CardGameFirstRevealDelay.Milliseconds(),
		RevealIntervalMs:   model.CardGameRevealInterval.Milliseconds(),
		LoserRevealDelayMs: model.CardGameLoserRevealDelay.Milliseconds(),
	}
}

// Outcome is the resolution of a higher-lower bet
type Outcome struct {
	Result         string `json:"result"`
	PlayerDrinks   bool   `json:"player_drinks"`
	EveryoneDrinks bool   `json:"everyone_drinks"`
}

// HigherLower represents a higher-lower session. Only the size of the draw
// pile is exposed, never its order.
type HigherLower struct {
	ID            string   `json:"id"`
	Phase         string   `json:"phase"`
	Players       []Player `json:"players"`
	TurnIndex     int      `json:"turn_index"`
	CurrentPlayer Player   `json:"current_player"`
	DeckRemaining int      `json:"deck_remaining"`
	CurrentCard   Card     `json:"current_card"`
	DrawnCard     *Card    `json:"drawn_card,omitempty"`
	Outcome       *Outcome `json:"outcome,omitempty"`
	Message       string   `json:"message"`
	FlipDelayMs   int64    `json:"flip_delay_ms"`
	ResultDelayMs int64    `json:"result_delay_ms"`
}

// HigherLowerFromModel converts a model.HigherLowerSession
func HigherLowerFromModel(s *model.HigherLowerSession) HigherLower {
	var drawn *Card
	if s.DrawnCard != nil {
		c := CardFromModel(*s.DrawnCard)
		drawn = &c
	}

	var outcome *Outcome
	if s.LastOutcome != nil {
		outcome = &Outcome{
			Result:         string(s.LastOutcome.Result),
			PlayerDrinks:   s.LastOutcome.PlayerDrinks,
			EveryoneDrinks: s.LastOutcome.EveryoneDrinks,
		}
	}

	return HigherLower{
		ID:            string(s.ID),
		Phase:         string(s.Phase),
		Players:       playersFromModel(s.Players),
		TurnIndex:     s.TurnIndex,
		CurrentPlayer: PlayerFromModel(s.CurrentPlayer()),
		DeckRemaining: len(s.Deck),
		CurrentCard:   CardFromModel(s.CurrentCard),
		DrawnCard:     drawn,
		Outcome:       outcome,
		Message:       s.Message,
		FlipDelayMs:   model.HigherLowerFlipDelay.Milliseconds(),
		ResultDelayMs: model.HigherLowerResultDelay.Milliseconds(),
	}
}

// SpinResult is the outcome of a spin-the-bottle round
type SpinResult struct {
	Rotation      int    `json:"rotation"`
	FinalAngle    int    `json:"final_angle"`
	SelectedIndex int    `json:"selected_index"`
	SelectedName  string `json:"selected_name"`
}

// SpinResultFromService converts a spin.Result
func SpinResultFromService(r spin.Result) SpinResult {
	return SpinResult{
		Rotation:      r.Rotation,
		FinalAngle:    r.FinalAngle,
		SelectedIndex: r.SelectedIndex,
		SelectedName:  r.SelectedName,
	}
}

// Prompt is a truth-or-dare challenge
type Prompt struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// PromptFromCatalog converts a catalog.Prompt
func PromptFromCatalog(p catalog.Prompt) Prompt {
	return Prompt{
		ID:   p.ID,
		Type: string(p.Type),
		Text: p.Text,
	}
}
