package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/storetest"
)

func newTestServer() *Server {
	f := storetest.New()

	f.Add(store.TableTeams,
		store.Row{"id": float64(3), "abbreviation": "KC"},
		store.Row{"id": float64(9), "abbreviation": "MIA"},
	)
	f.Add(store.TablePlayers,
		store.Row{"id": float64(1), "first_name": "Rashee", "last_name": "Rice", "position_abbreviation": "WR", "team_id": float64(3)},
		store.Row{"id": float64(2), "first_name": "De'Von", "last_name": "Achane", "position_abbreviation": "RB", "team_id": float64(9)},
	)
	f.Add(store.TableGames,
		store.Row{"id": float64(100), "season": float64(2024), "week": float64(1), "home_team_id": float64(3), "visitor_team_id": float64(9), "postseason": false},
	)
	f.Add(store.TableSeasonStats,
		store.Row{
			"player_id": float64(1), "season": float64(2024), "postseason": false,
			"games_played": float64(16), "receiving_targets": float64(80),
			"receptions": float64(60), "receiving_yards": float64(900),
		},
		store.Row{
			"player_id": float64(2), "season": float64(2024), "postseason": false,
			"games_played": float64(17), "rushing_attempts": float64(200), "rushing_yards": float64(1100),
		},
	)
	f.Add(store.TableGameStats,
		store.Row{
			"player_id": float64(1), "game_id": float64(100), "team_id": float64(3),
			"season": float64(2024), "week": float64(1), "postseason": false,
			"receiving_targets": float64(9), "receptions": float64(7), "receiving_yards": float64(103),
		},
	)

	return NewServer("0", service.NewStatsService(f, nil))
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeRows(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	return rows
}

func TestHealthCheck(t *testing.T) {
	w := doRequest(t, newTestServer(), "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "gridiron", body["service"])
}

func TestGetPlayerSeasonList(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/players?season=2024")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	rows := decodeRows(t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, "De'Von Achane", rows[0]["player_name"])
	assert.Equal(t, "2", rows[0]["player_id"])
	assert.Equal(t, float64(1100), rows[0]["rushingYards"])
}

func TestGetPlayerSeasonListMissingSeason(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/players")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRows(t, w))
}

func TestGetPlayerSeasonListPositionFilter(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/players?season=2024&position=WR")

	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeRows(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rashee Rice", rows[0]["player_name"])
}

func TestGetPlayerGameLog(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/players/1/gamelog?season=2024")

	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeRows(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0]["game_id"])
	assert.Equal(t, "home", rows[0]["location"])
	assert.Equal(t, "MIA", rows[0]["opponent"])
}

func TestGetPlayerGameLogMissingSeason(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/players/1/gamelog")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRows(t, w))
}

func TestGetReceivingWeekly(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/dashboards/receiving?season=2024&week=1")

	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeRows(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rashee Rice", rows[0]["player_name"])
	assert.Equal(t, float64(9), rows[0]["targets"])
}

func TestGetReceivingWeeklyMissingWeek(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/dashboards/receiving?season=2024")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRows(t, w))
}

func TestGetRushingWeeklyEmpty(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/dashboards/rushing?season=2024&week=9")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRows(t, w))
}

func TestGetReceivingSeason(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/seasons/receiving?season=2024")

	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeRows(t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rashee Rice", rows[0]["player_name"])
	assert.Equal(t, float64(1), rows[0]["team_target_share"])
}

func TestGetRushingSeason(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/seasons/rushing?season=2024")

	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeRows(t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, "De'Von Achane", rows[0]["player_name"])
	assert.Equal(t, float64(1100), rows[0]["rush_yards"])
}

func TestGetFilterOptions(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/options")

	require.Equal(t, http.StatusOK, w.Code)
	var opts map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Equal(t, []any{float64(2024)}, opts["seasons"])
	assert.Equal(t, []any{"KC", "MIA"}, opts["teams"])
	assert.Equal(t, []any{"QB", "RB", "WR", "TE"}, opts["positions"])
}

func TestGetDatasetSummary(t *testing.T) {
	w := doRequest(t, newTestServer(), "/api/v1/summary")

	require.Equal(t, http.StatusOK, w.Code)
	var sum map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, float64(1), sum["games"])
	assert.Equal(t, float64(2), sum["players"])
	assert.Equal(t, float64(2), sum["teams"])
}

func TestBackendErrorReturns500(t *testing.T) {
	f := storetest.New()
	f.Err = assert.AnError
	srv := NewServer("0", service.NewStatsService(f, nil))

	w := doRequest(t, srv, "/api/v1/options")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "details")
}

func TestCORSHeaders(t *testing.T) {
	w := doRequest(t, newTestServer(), "/health")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}
