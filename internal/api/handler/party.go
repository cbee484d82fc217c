package handler

import (
	"encoding/json"
	"net/http"

	"github.com/barquest/barquest/internal/api/request"
	"github.com/barquest/barquest/internal/api/response"
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/services/spin"
	"github.com/barquest/barquest/internal/services/truthdare"
)

// PartyHandler handles the stateless party game endpoints
type PartyHandler struct {
	spinService      *spin.Service
	truthDareService *truthdare.Service
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(spinService *spin.Service, truthDareService *truthdare.Service) *PartyHandler {
	return &PartyHandler{
		spinService:      spinService,
		truthDareService: truthDareService,
	}
}

// Spin handles POST /api/v1/party/spin
func (h *PartyHandler) Spin(w http.ResponseWriter, r *http.Request) {
	var req request.SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.spinService.Spin(req.Players)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SpinResultFromService(result))
}

// Prompt handles POST /api/v1/party/prompt
func (h *PartyHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	var req request.PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var prompt catalog.Prompt
	if req.Type == "" {
		prompt = h.truthDareService.DrawAny()
	} else {
		var err error
		prompt, err = h.truthDareService.Draw(catalog.PromptType(req.Type))
		if err != nil {
			WriteError(w, err)
			return
		}
	}
	response.JSON(w, http.StatusOK, response.PromptFromCatalog(prompt))
}
