package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/barquest/barquest/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeVenueNotFound       = "VENUE_NOT_FOUND"
	CodeOutOfRange          = "OUT_OF_CHECK_IN_RANGE"
	CodeEmptyPlayerName     = "EMPTY_PLAYER_NAME"
	CodePlayerNameTooLong   = "PLAYER_NAME_TOO_LONG"
	CodeDuplicatePlayerName = "DUPLICATE_PLAYER_NAME"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeNotEnoughPlayers    = "NOT_ENOUGH_PLAYERS"
	CodeNotEnoughCards      = "NOT_ENOUGH_CARDS"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeInvalidPhase        = "INVALID_PHASE"
	CodeGameOver            = "GAME_OVER"
	CodeInvalidBet          = "INVALID_BET"
	CodeUnknownPromptType   = "UNKNOWN_PROMPT_TYPE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrVenueNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeVenueNotFound, "Venue not found"}}
	case errors.Is(err, model.ErrOutOfCheckInRange):
		return &httpError{http.StatusConflict, APIError{CodeOutOfRange, "Too far from the venue to check in"}}
	case errors.Is(err, model.ErrEmptyPlayerName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyPlayerName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrPlayerNameTooLong):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerNameTooLong, "Player name is too long"}}
	case errors.Is(err, model.ErrDuplicatePlayerName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayerName, "Player name already taken"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusConflict, APIError{CodeNotEnoughPlayers, "Not enough players"}}
	case errors.Is(err, model.ErrNotEnoughCards):
		return &httpError{http.StatusConflict, APIError{CodeNotEnoughCards, "Not enough cards for the roster"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidPhase):
		return &httpError{http.StatusConflict, APIError{CodeInvalidPhase, "Action not allowed in the current phase"}}
	case errors.Is(err, model.ErrEmptyDeck):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "The deck is empty"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "The game is over"}}
	case errors.Is(err, model.ErrInvalidBet):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBet, "Bet must be higher or lower"}}
	case errors.Is(err, model.ErrUnknownPromptType):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownPromptType, "Prompt type must be truth or dare"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
