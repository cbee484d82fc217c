package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barquest/barquest/internal/api/request"
	"github.com/barquest/barquest/internal/api/response"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/cardgame"
)

// CardGameHandler handles card game endpoints
type CardGameHandler struct {
	controller *cardgame.Controller
}

// NewCardGameHandler creates a new card game handler
func NewCardGameHandler(controller *cardgame.Controller) *CardGameHandler {
	return &CardGameHandler{controller: controller}
}

// Create handles POST /api/v1/card-games
func (h *CardGameHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.NewSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.CardGameFromModel(session))
}

// Get handles GET /api/v1/card-games/{id}
func (h *CardGameHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Get(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardGameFromModel(session))
}

// AddPlayer handles POST /api/v1/card-games/{id}/players
func (h *CardGameHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.AddPlayer(r.Context(), gameID(r), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.CardGameFromModel(session))
}

// RemovePlayer handles DELETE /api/v1/card-games/{id}/players/{player_id}
func (h *CardGameHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	session, err := h.controller.RemovePlayer(r.Context(), gameID(r), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardGameFromModel(session))
}

// Deal handles POST /api/v1/card-games/{id}/deal
func (h *CardGameHandler) Deal(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Deal(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardGameFromModel(session))
}

// Reveal handles POST /api/v1/card-games/{id}/reveal
func (h *CardGameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.RevealNext(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardGameFromModel(session))
}

// PlayAgain handles POST /api/v1/card-games/{id}/play-again
func (h *CardGameHandler) PlayAgain(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.PlayAgain(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardGameFromModel(session))
}

// Reset handles POST /api/v1/card-games/{id}/reset
func (h *CardGameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Reset(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardGameFromModel(session))
}

func gameID(r *http.Request) model.CardGameID {
	return model.CardGameID(mux.Vars(r)["id"])
}
