package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barquest/barquest/internal/api"
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/factory"
	"github.com/barquest/barquest/internal/model"
	"github.com/barquest/barquest/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(projectRoot, "bin", "barquest-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cli")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

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

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
}

func venueCoords(t *testing.T, id model.VenueID) (float64, float64) {
	t.Helper()
	for _, v := range catalog.DefaultVenues() {
		if v.ID == id {
			return v.Latitude, v.Longitude
		}
	}
	t.Fatalf("venue %s not in catalog", id)
	return 0, 0
}

func parseJSON(t *testing.T, output string, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(output), target), "output: %s", output)
}

func TestCLIEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	t.Run("health", func(t *testing.T) {
		output, err := cli.run("health")
		require.NoError(t, err, output)

		var result struct {
			Status string `json:"status"`
		}
		parseJSON(t, output, &result)
		assert.Equal(t, "ok", result.Status)
	})

	t.Run("venue list", func(t *testing.T) {
		lat, lon := venueCoords(t, "1")
		output, err := cli.run("venues", "list", "--lat", fmt.Sprint(lat), "--lon", fmt.Sprint(lon))
		require.NoError(t, err, output)

		var venues []struct {
			ID          string `json:"id"`
			WithinRange bool   `json:"within_range"`
		}
		parseJSON(t, output, &venues)
		require.Len(t, venues, 22)
		assert.Equal(t, "1", venues[0].ID)
		assert.True(t, venues[0].WithinRange)
	})

	t.Run("check in and profile", func(t *testing.T) {
		lat, lon := venueCoords(t, "1")
		output, err := cli.run("profile", "checkin", "1", "--lat", fmt.Sprint(lat), "--lon", fmt.Sprint(lon))
		require.NoError(t, err, output)

		var profile struct {
			Points   int `json:"points"`
			CheckIns []struct {
				VenueID string `json:"venue_id"`
			} `json:"check_ins"`
		}
		parseJSON(t, output, &profile)
		assert.Equal(t, 10, profile.Points)
		require.Len(t, profile.CheckIns, 1)

		output, err = cli.run("profile", "get")
		require.NoError(t, err, output)
		parseJSON(t, output, &profile)
		assert.Equal(t, 10, profile.Points)
	})

	t.Run("check in out of range", func(t *testing.T) {
		lat, lon := venueCoords(t, "1")
		output, err := cli.run("profile", "checkin", "1", "--lat", fmt.Sprint(lat+0.01), "--lon", fmt.Sprint(lon))
		require.Error(t, err)
		assert.Contains(t, output, "OUT_OF_CHECK_IN_RANGE")
	})

	t.Run("card game round", func(t *testing.T) {
		output, err := cli.run("card", "new")
		require.NoError(t, err, output)

		var game struct {
			ID    string `json:"id"`
			Phase string `json:"phase"`
			Dealt []struct {
				Revealed bool `json:"revealed"`
			} `json:"dealt"`
			Loser *struct {
				Name string `json:"name"`
			} `json:"loser"`
		}
		parseJSON(t, output, &game)
		id := game.ID

		for _, name := range []string{"Marta", "Jordi"} {
			output, err = cli.run("card", "add", id, name)
			require.NoError(t, err, output)
		}

		output, err = cli.run("card", "deal", id)
		require.NoError(t, err, output)
		parseJSON(t, output, &game)
		assert.Equal(t, "distributed", game.Phase)
		require.Len(t, game.Dealt, 2)

		for i := 0; i < 2; i++ {
			output, err = cli.run("card", "reveal", id)
			require.NoError(t, err, output)
		}
		parseJSON(t, output, &game)
		assert.Equal(t, "revealed", game.Phase)
		require.NotNil(t, game.Loser)
		assert.Contains(t, []string{"Marta", "Jordi"}, game.Loser.Name)
	})

	t.Run("higher lower turn", func(t *testing.T) {
		output, err := cli.run("hl", "new", "Marta", "Jordi")
		require.NoError(t, err, output)

		var game struct {
			ID            string `json:"id"`
			Phase         string `json:"phase"`
			DeckRemaining int    `json:"deck_remaining"`
			Outcome       *struct {
				Result string `json:"result"`
			} `json:"outcome"`
			CurrentPlayer struct {
				Name string `json:"name"`
			} `json:"current_player"`
		}
		parseJSON(t, output, &game)
		id := game.ID
		assert.Equal(t, "waitingForBet", game.Phase)
		assert.Equal(t, 7, game.DeckRemaining)

		output, err = cli.run("hl", "bet", id, "higher")
		require.NoError(t, err, output)
		parseJSON(t, output, &game)
		assert.Equal(t, "showingResult", game.Phase)
		require.NotNil(t, game.Outcome)
		assert.Contains(t, []string{"correct", "incorrect", "tie"}, game.Outcome.Result)

		output, err = cli.run("hl", "advance", id)
		require.NoError(t, err, output)
		parseJSON(t, output, &game)
		assert.Equal(t, "waitingForBet", game.Phase)
		assert.Equal(t, "Jordi", game.CurrentPlayer.Name)
	})

	t.Run("party games", func(t *testing.T) {
		output, err := cli.run("party", "spin", "Marta", "Jordi", "Pau")
		require.NoError(t, err, output)

		var spin struct {
			SelectedName string `json:"selected_name"`
		}
		parseJSON(t, output, &spin)
		assert.Contains(t, []string{"Marta", "Jordi", "Pau"}, spin.SelectedName)

		output, err = cli.run("party", "prompt", "-t", "dare")
		require.NoError(t, err, output)

		var prompt struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		parseJSON(t, output, &prompt)
		assert.Equal(t, "dare", prompt.Type)
		assert.NotEmpty(t, prompt.Text)
	})
}
