package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barquest/barquest/internal/api/response"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/nearby"
)

// VenueHandler handles venue listing endpoints
type VenueHandler struct {
	nearbyService *nearby.Service
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(nearbyService *nearby.Service) *VenueHandler {
	return &VenueHandler{nearbyService: nearbyService}
}

// List handles GET /api/v1/venues?lat=..&lon=..
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoordinates(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	venues := h.nearbyService.List(lat, lon)
	resp := make([]response.NearbyVenue, len(venues))
	for i, v := range venues {
		resp[i] = response.NearbyVenueFromService(v)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/venues/{id}?lat=..&lon=..
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoordinates(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	id := model.VenueID(mux.Vars(r)["id"])
	venue, err := h.nearbyService.Get(id, lat, lon)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NearbyVenueFromService(venue))
}

// parseCoordinates reads the caller position from the lat/lon query params
func parseCoordinates(r *http.Request) (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return 0, 0, NewInvalidRequestError("lat must be a number")
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return 0, 0, NewInvalidRequestError("lon must be a number")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, NewInvalidRequestError("coordinates out of range")
	}
	return lat, lon, nil
}
