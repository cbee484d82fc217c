package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/dependencies/clock"
	"github.com/barquest/barquest/internal/dependencies/random"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/services/badge"
	"github.com/barquest/barquest/internal/services/cardgame"
	"github.com/barquest/barquest/internal/services/deck"
	"github.com/barquest/barquest/internal/services/higherlower"
	"github.com/barquest/barquest/internal/services/nearby"
	"github.com/barquest/barquest/internal/services/profile"
	"github.com/barquest/barquest/internal/services/spin"
	"github.com/barquest/barquest/internal/services/truthdare"
	"github.com/barquest/barquest/internal/storage"
	"github.com/barquest/barquest/internal/storage/memory"
	redisstorage "github.com/barquest/barquest/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Static catalogs
	Venues *catalog.VenueCatalog

	// Services
	NearbyService         *nearby.Service
	BadgeService          *badge.Service
	ProfileService        *profile.Service
	DeckService           *deck.Service
	CardGameController    *cardgame.Controller
	HigherLowerController *higherlower.Controller
	SpinService           *spin.Service
	TruthDareService      *truthdare.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Venues overrides the built-in venue catalog (optional)
	Venues []model.Venue
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	venueData := cfg.Venues
	if venueData == nil {
		venueData = catalog.DefaultVenues()
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, venueData, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	venueData []model.Venue,
	logger *slog.Logger,
) *App {
	venues := catalog.NewVenueCatalog(venueData)

	nearbyService := nearby.New(venues)
	badgeService := badge.New(catalog.BadgeDefinitions(), venues)
	profileService := profile.New(store, venues, badgeService, clk, logger)
	deckService := deck.New(rnd)
	cardGameController := cardgame.NewController(store, deckService, clk, logger)
	higherLowerController := higherlower.NewController(store, deckService, clk, logger)
	spinService := spin.New(rnd)
	truthDareService := truthdare.New(rnd)

	return &App{
		Storage:               store,
		Clock:                 clk,
		Random:                rnd,
		Venues:                venues,
		NearbyService:         nearbyService,
		BadgeService:          badgeService,
		ProfileService:        profileService,
		DeckService:           deckService,
		CardGameController:    cardGameController,
		HigherLowerController: higherLowerController,
		SpinService:           spinService,
		TruthDareService:      truthDareService,
	}
}
