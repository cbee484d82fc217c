package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barquest/barquest/internal/api/request"
	"github.com/barquest/barquest/internal/api/response"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/higherlower"
)

// HigherLowerHandler handles higher-lower game endpoints
type HigherLowerHandler struct {
	controller *higherlower.Controller
}

// NewHigherLowerHandler creates a new higher-lower handler
func NewHigherLowerHandler(controller *higherlower.Controller) *HigherLowerHandler {
	return &HigherLowerHandler{controller: controller}
}

// Create handles POST /api/v1/higher-lower
func (h *HigherLowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.NewHigherLowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.New(r.Context(), req.Players)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.HigherLowerFromModel(session))
}

// Get handles GET /api/v1/higher-lower/{id}
func (h *HigherLowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Get(r.Context(), higherLowerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HigherLowerFromModel(session))
}

// Bet handles POST /api/v1/higher-lower/{id}/bet
func (h *HigherLowerHandler) Bet(w http.ResponseWriter, r *http.Request) {
	var req request.BetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.controller.PlaceBet(r.Context(), higherLowerID(r), model.BetDirection(req.Direction))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HigherLowerFromModel(session))
}

// Advance handles POST /api/v1/higher-lower/{id}/advance
func (h *HigherLowerHandler) Advance(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.Advance(r.Context(), higherLowerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HigherLowerFromModel(session))
}

// NewRound handles POST /api/v1/higher-lower/{id}/new-round
func (h *HigherLowerHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.NewRound(r.Context(), higherLowerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HigherLowerFromModel(session))
}

func higherLowerID(r *http.Request) model.HigherLowerID {
	return model.HigherLowerID(mux.Vars(r)["id"])
}
