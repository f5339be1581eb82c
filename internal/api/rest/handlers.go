package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fortuna/gridiron/internal/service"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	statsService *service.StatsService
}

// NewHandler creates a new handler
func NewHandler(statsService *service.StatsService) *Handler {
	return &Handler{statsService: statsService}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "gridiron",
		"version": "1.0.0",
	})
}

// GetPlayerSeasonList returns the player season list, filtered by season,
// position and team. A missing or malformed season yields an empty list.
func (h *Handler) GetPlayerSeasonList(w http.ResponseWriter, r *http.Request) {
	params := service.SeasonListParams{
		Position: r.URL.Query().Get("position"),
		Team:     r.URL.Query().Get("team"),
		Limit:    queryInt(r, "limit", 300),
	}
	if season, ok := queryIntParam(r, "season"); ok {
		params.Season = &season
	}

	rows, err := h.statsService.SeasonList(r.Context(), params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch player season list", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// GetPlayerGameLog returns one player's per-game lines for a season.
func (h *Handler) GetPlayerGameLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["playerID"]

	season, ok := queryIntParam(r, "season")
	if !ok {
		respondJSON(w, http.StatusOK, []service.GameLogRow{})
		return
	}
	includePostseason := r.URL.Query().Get("postseason") == "true"

	rows, err := h.statsService.GameLog(r.Context(), playerID, season, includePostseason)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch game log", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// GetReceivingWeekly returns the week-level receiving dashboard.
func (h *Handler) GetReceivingWeekly(w http.ResponseWriter, r *http.Request) {
	season, okSeason := queryIntParam(r, "season")
	week, okWeek := queryIntParam(r, "week")
	if !okSeason || !okWeek {
		respondJSON(w, http.StatusOK, []service.WeeklyReceivingRow{})
		return
	}

	rows, err := h.statsService.ReceivingWeekly(r.Context(), season, week, r.URL.Query().Get("team"), queryInt(r, "limit", 200))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch receiving dashboard", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// GetRushingWeekly returns the week-level rushing dashboard.
func (h *Handler) GetRushingWeekly(w http.ResponseWriter, r *http.Request) {
	season, okSeason := queryIntParam(r, "season")
	week, okWeek := queryIntParam(r, "week")
	if !okSeason || !okWeek {
		respondJSON(w, http.StatusOK, []service.WeeklyRushingRow{})
		return
	}

	rows, err := h.statsService.RushingWeekly(r.Context(), season, week, r.URL.Query().Get("team"), queryInt(r, "limit", 200))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch rushing dashboard", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// GetReceivingSeason returns the season-level receiving summary.
func (h *Handler) GetReceivingSeason(w http.ResponseWriter, r *http.Request) {
	season, ok := queryIntParam(r, "season")
	if !ok {
		respondJSON(w, http.StatusOK, []service.SeasonReceivingRow{})
		return
	}

	rows, err := h.statsService.ReceivingSeason(r.Context(), season, r.URL.Query().Get("team"), queryInt(r, "limit", 200))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch receiving summary", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// GetRushingSeason returns the season-level rushing summary.
func (h *Handler) GetRushingSeason(w http.ResponseWriter, r *http.Request) {
	season, ok := queryIntParam(r, "season")
	if !ok {
		respondJSON(w, http.StatusOK, []service.SeasonRushingRow{})
		return
	}

	rows, err := h.statsService.RushingSeason(r.Context(), season, r.URL.Query().Get("team"), queryInt(r, "limit", 200))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch rushing summary", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// GetFilterOptions returns the dropdown filter values.
func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.statsService.FilterOptions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch filter options", err)
		return
	}

	respondJSON(w, http.StatusOK, opts)
}

// GetDatasetSummary returns dataset-level counts.
func (h *Handler) GetDatasetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.statsService.DatasetSummary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch dataset summary", err)
		return
	}

	respondJSON(w, http.StatusOK, sum)
}

// queryIntParam parses an integer query parameter; malformed or absent
// values report ok=false.
func queryIntParam(r *http.Request, name string) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// queryInt parses an integer query parameter with a fallback default.
func queryInt(r *http.Request, name string, def int) int {
	if v, ok := queryIntParam(r, name); ok {
		return v
	}
	return def
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
