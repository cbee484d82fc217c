package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barquest/barquest/internal/api/handler"
	apimiddleware "github.com/barquest/barquest/internal/api/middleware"
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/middleware"
	"github.com/barquest/barquest/internal/services/cardgame"
	"github.com/barquest/barquest/internal/services/higherlower"
	"github.com/barquest/barquest/internal/services/nearby"
	"github.com/barquest/barquest/internal/services/profile"
	"github.com/barquest/barquest/internal/services/spin"
	"github.com/barquest/barquest/internal/services/truthdare"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger                *slog.Logger
	Venues                *catalog.VenueCatalog
	NearbyService         *nearby.Service
	ProfileService        *profile.Service
	CardGameController    *cardgame.Controller
	HigherLowerController *higherlower.Controller
	SpinService           *spin.Service
	TruthDareService      *truthdare.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	venueHandler := handler.NewVenueHandler(cfg.NearbyService)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService, cfg.Venues)
	cardGameHandler := handler.NewCardGameHandler(cfg.CardGameController)
	higherLowerHandler := handler.NewHigherLowerHandler(cfg.HigherLowerController)
	partyHandler := handler.NewPartyHandler(cfg.SpinService, cfg.TruthDareService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Venue routes
	api.HandleFunc("/venues", venueHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/venues/{id}", venueHandler.Get).Methods(http.MethodGet)

	// Profile routes
	api.HandleFunc("/profiles/{id}", profileHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}", profileHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/profiles/{id}", profileHandler.Reset).Methods(http.MethodDelete)
	api.HandleFunc("/profiles/{id}/check-ins", profileHandler.CheckIn).Methods(http.MethodPost)

	// Card game routes
	api.HandleFunc("/card-games", cardGameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/card-games/{id}", cardGameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/card-games/{id}/players", cardGameHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/card-games/{id}/players/{player_id}", cardGameHandler.RemovePlayer).Methods(http.MethodDelete)
	api.HandleFunc("/card-games/{id}/deal", cardGameHandler.Deal).Methods(http.MethodPost)
	api.HandleFunc("/card-games/{id}/reveal", cardGameHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/card-games/{id}/play-again", cardGameHandler.PlayAgain).Methods(http.MethodPost)
	api.HandleFunc("/card-games/{id}/reset", cardGameHandler.Reset).Methods(http.MethodPost)

	// Higher-lower routes
	api.HandleFunc("/higher-lower", higherLowerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/higher-lower/{id}", higherLowerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/higher-lower/{id}/bet", higherLowerHandler.Bet).Methods(http.MethodPost)
	api.HandleFunc("/higher-lower/{id}/advance", higherLowerHandler.Advance).Methods(http.MethodPost)
	api.HandleFunc("/higher-lower/{id}/new-round", higherLowerHandler.NewRound).Methods(http.MethodPost)

	// Party game routes
	api.HandleFunc("/party/spin", partyHandler.Spin).Methods(http.MethodPost)
	api.HandleFunc("/party/prompt", partyHandler.Prompt).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
