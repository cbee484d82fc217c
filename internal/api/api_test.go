package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barquest/barquest/internal/api"
	"github.com/barquest/barquest/internal/api/response"
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/factory"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/testutil"
)

// testServer wires the router against an in-memory app with mocked
// clock and random, so game flows are deterministic at the HTTP level.
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:                testutil.NopLogger(),
		Venues:                app.Venues,
		NearbyService:         app.NearbyService,
		ProfileService:        app.ProfileService,
		CardGameController:    app.CardGameController,
		HigherLowerController: app.HigherLowerController,
		SpinService:           app.SpinService,
		TruthDareService:      app.TruthDareService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// queueIdentityShuffle makes the next 8-card shuffle return catalog order
func (ts *testServer) queueIdentityShuffle() {
	ts.app.MockRandom.QueueIntn(7, 6, 5, 4, 3, 2, 1)
}

// testVenue returns a catalog venue by id for positioning the caller
func testVenue(t *testing.T, id model.VenueID) model.Venue {
	t.Helper()
	for _, v := range catalog.DefaultVenues() {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("venue %s not in catalog", id)
	return model.Venue{}
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestListVenuesSortedByDistance(t *testing.T) {
	ts := newTestServer(t)
	v := testVenue(t, "1")

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/venues?lat=%f&lon=%f", v.Latitude, v.Longitude), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	venues := decode[[]response.NearbyVenue](t, rr)
	require.Len(t, venues, 22)

	// Standing at venue 1, it is first and in range
	assert.Equal(t, "1", venues[0].ID)
	assert.True(t, venues[0].WithinRange)

	for i := 1; i < len(venues); i++ {
		assert.GreaterOrEqual(t, venues[i].DistanceMeters, venues[i-1].DistanceMeters)
	}
}

func TestListVenuesRequiresCoordinates(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/venues", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestGetVenueNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/venues/nope?lat=41.38&lon=2.18", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "VENUE_NOT_FOUND")
}

func TestGetProfileDefaults(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/profiles/me", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	p := decode[response.Profile](t, rr)
	assert.Equal(t, "Explorer", p.Name)
	assert.Equal(t, 1, p.Level)
	assert.Len(t, p.Badges, 6)

	// Storage internals stay out of the wire format
	assert.NotContains(t, rr.Body.String(), "schema_version")
}

func TestCheckInAtVenue(t *testing.T) {
	ts := newTestServer(t)
	v := testVenue(t, "1")

	body := map[string]any{
		"venue_id":  "1",
		"latitude":  v.Latitude,
		"longitude": v.Longitude,
	}
	rr := ts.request(http.MethodPost, "/api/v1/profiles/me/check-ins", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	p := decode[response.Profile](t, rr)
	assert.Equal(t, 10, p.Points)
	require.Len(t, p.CheckIns, 1)
	assert.Equal(t, v.Name, p.CheckIns[0].VenueName)
}

func TestCheckInTooFarAway(t *testing.T) {
	ts := newTestServer(t)
	v := testVenue(t, "1")

	// Roughly 111m north of the venue
	body := map[string]any{
		"venue_id":  "1",
		"latitude":  v.Latitude + 0.001,
		"longitude": v.Longitude,
	}
	rr := ts.request(http.MethodPost, "/api/v1/profiles/me/check-ins", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "OUT_OF_CHECK_IN_RANGE")
}

func TestCheckInUnknownVenue(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"venue_id": "nope", "latitude": 41.38, "longitude": 2.18}
	rr := ts.request(http.MethodPost, "/api/v1/profiles/me/check-ins", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateAndResetProfile(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/api/v1/profiles/me", map[string]string{"name": "Nora"})
	require.Equal(t, http.StatusOK, rr.Code)
	p := decode[response.Profile](t, rr)
	assert.Equal(t, "Nora", p.Name)

	rr = ts.request(http.MethodDelete, "/api/v1/profiles/me", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	p = decode[response.Profile](t, rr)
	assert.Equal(t, "Explorer", p.Name)
}

func TestUpdateProfileEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/api/v1/profiles/me", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCardGameFlow(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/card-games", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	game := decode[response.CardGame](t, rr)
	assert.Equal(t, "setup", game.Phase)

	for _, name := range []string{"Marta", "Jordi"} {
		rr = ts.request(http.MethodPost, "/api/v1/card-games/"+game.ID+"/players", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	ts.queueIdentityShuffle()
	rr = ts.request(http.MethodPost, "/api/v1/card-games/"+game.ID+"/deal", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	game = decode[response.CardGame](t, rr)
	assert.Equal(t, "distributed", game.Phase)

	// Unrevealed card faces are withheld
	require.Len(t, game.Dealt, 2)
	assert.Nil(t, game.Dealt[0].Card)
	assert.Nil(t, game.Dealt[1].Card)

	rr = ts.request(http.MethodPost, "/api/v1/card-games/"+game.ID+"/reveal", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	game = decode[response.CardGame](t, rr)
	require.NotNil(t, game.Dealt[0].Card)
	assert.Equal(t, 1, game.Dealt[0].Card.Rank)
	assert.Nil(t, game.Dealt[1].Card)

	rr = ts.request(http.MethodPost, "/api/v1/card-games/"+game.ID+"/reveal", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	game = decode[response.CardGame](t, rr)
	assert.Equal(t, "revealed", game.Phase)
	require.NotNil(t, game.Loser)
	assert.Equal(t, "Marta", game.Loser.Name)
}

func TestCardGameDealWithoutPlayers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/card-games", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	game := decode[response.CardGame](t, rr)

	rr = ts.request(http.MethodPost, "/api/v1/card-games/"+game.ID+"/deal", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_ENOUGH_PLAYERS")
}

func TestCardGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/card-games/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestHigherLowerFlow(t *testing.T) {
	ts := newTestServer(t)

	ts.queueIdentityShuffle()
	rr := ts.request(http.MethodPost, "/api/v1/higher-lower", map[string]any{"players": []string{"Marta", "Jordi"}})
	require.Equal(t, http.StatusCreated, rr.Code)
	game := decode[response.HigherLower](t, rr)
	assert.Equal(t, "waitingForBet", game.Phase)
	assert.Equal(t, 1, game.CurrentCard.Rank)
	assert.Equal(t, 7, game.DeckRemaining)
	assert.Equal(t, "Marta", game.CurrentPlayer.Name)

	rr = ts.request(http.MethodPost, "/api/v1/higher-lower/"+game.ID+"/bet", map[string]string{"direction": "higher"})
	require.Equal(t, http.StatusOK, rr.Code)
	game = decode[response.HigherLower](t, rr)
	assert.Equal(t, "showingResult", game.Phase)
	require.NotNil(t, game.Outcome)
	assert.Equal(t, "correct", game.Outcome.Result)

	rr = ts.request(http.MethodPost, "/api/v1/higher-lower/"+game.ID+"/advance", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	game = decode[response.HigherLower](t, rr)
	assert.Equal(t, "waitingForBet", game.Phase)
	assert.Equal(t, "Jordi", game.CurrentPlayer.Name)
}

func TestHigherLowerInvalidBet(t *testing.T) {
	ts := newTestServer(t)

	ts.queueIdentityShuffle()
	rr := ts.request(http.MethodPost, "/api/v1/higher-lower", map[string]any{"players": []string{"Marta", "Jordi"}})
	require.Equal(t, http.StatusCreated, rr.Code)
	game := decode[response.HigherLower](t, rr)

	rr = ts.request(http.MethodPost, "/api/v1/higher-lower/"+game.ID+"/bet", map[string]string{"direction": "sideways"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_BET")
}

func TestHigherLowerRequiresTwoPlayers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/higher-lower", map[string]any{"players": []string{"Marta"}})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_ENOUGH_PLAYERS")
}

func TestSpinTheBottle(t *testing.T) {
	ts := newTestServer(t)

	ts.app.MockRandom.QueueIntn(270)
	rr := ts.request(http.MethodPost, "/api/v1/party/spin", map[string]any{"players": []string{"Marta", "Jordi", "Pau", "Laia"}})
	require.Equal(t, http.StatusOK, rr.Code)

	result := decode[response.SpinResult](t, rr)
	assert.Equal(t, "Laia", result.SelectedName)
	assert.Equal(t, 5*360+270, result.Rotation)
}

func TestDrawPrompt(t *testing.T) {
	ts := newTestServer(t)

	ts.app.MockRandom.QueueIntn(0)
	rr := ts.request(http.MethodPost, "/api/v1/party/prompt", map[string]string{"type": "dare"})
	require.Equal(t, http.StatusOK, rr.Code)

	prompt := decode[response.Prompt](t, rr)
	assert.Equal(t, "dare", prompt.Type)
	assert.NotEmpty(t, prompt.Text)
}

func TestDrawPromptUnknownType(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/party/prompt", map[string]string{"type": "double-dare"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNKNOWN_PROMPT_TYPE")
}
