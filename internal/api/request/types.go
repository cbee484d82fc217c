package request

// CheckInRequest is the request body for checking in at a venue
type CheckInRequest struct {
	VenueID   string  `json:"venue_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateProfileRequest is the request body for editing profile fields.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// AddPlayerRequest is the request body for adding a player to a card game
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// NewHigherLowerRequest is the request body for starting a higher-lower game
type NewHigherLowerRequest struct {
	Players []string `json:"players"`
}

// BetRequest is the request body for placing a higher-lower bet
type BetRequest struct {
	Direction string `json:"direction"`
}

// SpinRequest is the request body for spin-the-bottle
type SpinRequest struct {
	Players []string `json:"players"`
}

// PromptRequest is the request body for drawing a truth-or-dare prompt.
// An empty type means pick one at random.
type PromptRequest struct {
	Type string `json:"type,omitempty"`
}
