package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []NearbyVenue:
		o.printVenues(v)
	case NearbyVenue:
		o.printVenue(v)
	case Profile:
		o.printProfile(v)
	case CardGame:
		o.printCardGame(v)
	case HigherLower:
		o.printHigherLower(v)
	case SpinResult:
		o.printSpinResult(v)
	case Prompt:
		o.printPrompt(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		o.printJSON(data)
	}
}

// NearbyVenue response type (matches API)
type NearbyVenue struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	Distance    string  `json:"distance"`
	WithinRange bool    `json:"within_range"`
}

// Badge response type
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Progress    int    `json:"progress"`
	Earned      bool   `json:"earned"`
}

// CheckIn response type
type CheckIn struct {
	VenueID   string `json:"venue_id"`
	VenueName string `json:"venue_name"`
	Timestamp int64  `json:"timestamp"`
	Points    int    `json:"points"`
}

// Profile response type
type Profile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Points   int       `json:"points"`
	Level    int       `json:"level"`
	CheckIns []CheckIn `json:"check_ins"`
	Badges   []Badge   `json:"badges"`
}

// Player response type
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Card response type
type Card struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// DealtCard response type
type DealtCard struct {
	PlayerID string `json:"player_id"`
	Card     *Card  `json:"card,omitempty"`
	Revealed bool   `json:"revealed"`
}

// CardGame response type
type CardGame struct {
	ID      string      `json:"id"`
	Phase   string      `json:"phase"`
	Players []Player    `json:"players"`
	Dealt   []DealtCard `json:"dealt,omitempty"`
	Loser   *Player     `json:"loser,omitempty"`
}

// Outcome response type
type Outcome struct {
	Result         string `json:"result"`
	PlayerDrinks   bool   `json:"player_drinks"`
	EveryoneDrinks bool   `json:"everyone_drinks"`
}

// HigherLower response type
type HigherLower struct {
	ID            string   `json:"id"`
	Phase         string   `json:"phase"`
	Players       []Player `json:"players"`
	CurrentPlayer Player   `json:"current_player"`
	DeckRemaining int      `json:"deck_remaining"`
	CurrentCard   Card     `json:"current_card"`
	DrawnCard     *Card    `json:"drawn_card,omitempty"`
	Outcome       *Outcome `json:"outcome,omitempty"`
	Message       string   `json:"message"`
}

// SpinResult response type
type SpinResult struct {
	Rotation      int    `json:"rotation"`
	SelectedName  string `json:"selected_name"`
	SelectedIndex int    `json:"selected_index"`
}

// Prompt response type
type Prompt struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printVenues(venues []NearbyVenue) {
	fmt.Printf("Venues (%d):\n", len(venues))
	for _, v := range venues {
		o.printVenueLine(v)
	}
}

func (o *Output) printVenue(v NearbyVenue) {
	o.printVenueLine(v)
	if v.Address != "" {
		fmt.Printf("  Address: %s\n", v.Address)
	}
}

func (o *Output) printVenueLine(v NearbyVenue) {
	marker := " "
	if v.WithinRange {
		marker = "*"
	}
	fmt.Printf("%s %-25s %-10s %s  %.1f\n", marker, v.Name, v.Category, v.Distance, v.Rating)
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("%s %s (level %d, %d points)\n", p.Avatar, p.Name, p.Level, p.Points)
	fmt.Printf("Check-ins: %d\n", len(p.CheckIns))
	for _, ci := range p.CheckIns {
		ts := time.UnixMilli(ci.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("  - %s at %s (+%d)\n", ci.VenueName, ts, ci.Points)
	}
	fmt.Println("Badges:")
	for _, b := range p.Badges {
		status := fmt.Sprintf("%d/%d", b.Progress, b.Requirement)
		if b.Earned {
			status = "earned"
		}
		fmt.Printf("  %s %-20s %s\n", b.Icon, b.Name, status)
	}
}

func (o *Output) printCardGame(g CardGame) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
	if len(g.Dealt) > 0 {
		fmt.Println("Cards:")
		for _, dc := range g.Dealt {
			if dc.Revealed && dc.Card != nil {
				fmt.Printf("  %s: %s (%d)\n", playerName(g.Players, dc.PlayerID), dc.Card.Name, dc.Card.Rank)
			} else {
				fmt.Printf("  %s: face down\n", playerName(g.Players, dc.PlayerID))
			}
		}
	}
	if g.Loser != nil {
		fmt.Printf("Loser: %s drinks!\n", g.Loser.Name)
	}
}

func (o *Output) printHigherLower(g HigherLower) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Current card: %s (%d)\n", g.CurrentCard.Name, g.CurrentCard.Rank)
	if g.DrawnCard != nil {
		fmt.Printf("Drawn card: %s (%d)\n", g.DrawnCard.Name, g.DrawnCard.Rank)
	}
	fmt.Printf("Cards left: %d\n", g.DeckRemaining)
	fmt.Println(g.Message)
}

func (o *Output) printSpinResult(r SpinResult) {
	fmt.Printf("The bottle points at %s!\n", r.SelectedName)
}

func (o *Output) printPrompt(p Prompt) {
	fmt.Printf("[%s] %s\n", p.Type, p.Text)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func playerName(players []Player, id string) string {
	for _, p := range players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
