package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barquest/barquest/internal/api/request"
	"github.com/barquest/barquest/internal/api/response"
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/geo"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/profile"
)

// ProfileHandler handles profile and check-in endpoints. The proximity gate
// lives here: the profile service itself records whatever it is told, so the
// handler is the single place that refuses far-away check-ins.
type ProfileHandler struct {
	profileService *profile.Service
	venues         *catalog.VenueCatalog
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.Service, venues *catalog.VenueCatalog) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		venues:         venues,
	}
}

// Get handles GET /api/v1/profiles/{id}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.ProfileID(mux.Vars(r)["id"])

	p, err := h.profileService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}

// CheckIn handles POST /api/v1/profiles/{id}/check-ins
func (h *ProfileHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id := model.ProfileID(mux.Vars(r)["id"])

	var req request.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	venue, ok := h.venues.Get(model.VenueID(req.VenueID))
	if !ok {
		WriteError(w, model.ErrVenueNotFound)
		return
	}
	if !geo.WithinCheckInRange(req.Latitude, req.Longitude, venue.Latitude, venue.Longitude) {
		WriteError(w, model.ErrOutOfCheckInRange)
		return
	}

	p, err := h.profileService.RecordCheckIn(r.Context(), id, venue.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.ProfileFromModel(p))
}

// Update handles PATCH /api/v1/profiles/{id}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.ProfileID(mux.Vars(r)["id"])

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == nil && req.Avatar == nil {
		WriteError(w, NewInvalidRequestError("nothing to update"))
		return
	}

	var p *model.UserProfile
	var err error
	if req.Name != nil {
		if *req.Name == "" {
			WriteError(w, NewInvalidRequestError("name must not be empty"))
			return
		}
		p, err = h.profileService.UpdateName(r.Context(), id, *req.Name)
		if err != nil {
			WriteError(w, err)
			return
		}
	}
	if req.Avatar != nil {
		p, err = h.profileService.UpdateAvatar(r.Context(), id, *req.Avatar)
		if err != nil {
			WriteError(w, err)
			return
		}
	}
	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}

// Reset handles DELETE /api/v1/profiles/{id}
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := model.ProfileID(mux.Vars(r)["id"])

	p, err := h.profileService.Reset(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}
