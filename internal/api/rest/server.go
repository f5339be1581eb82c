package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fortuna/gridiron/internal/service"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, statsService *service.StatsService) *Server {
	handler := NewHandler(statsService)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Players
	api.HandleFunc("/players", handler.GetPlayerSeasonList).Methods("GET")
	api.HandleFunc("/players/{playerID}/gamelog", handler.GetPlayerGameLog).Methods("GET")

	// Weekly dashboards
	api.HandleFunc("/dashboards/receiving", handler.GetReceivingWeekly).Methods("GET")
	api.HandleFunc("/dashboards/rushing", handler.GetRushingWeekly).Methods("GET")

	// Season summaries
	api.HandleFunc("/seasons/receiving", handler.GetReceivingSeason).Methods("GET")
	api.HandleFunc("/seasons/rushing", handler.GetRushingSeason).Methods("GET")

	// Filter options and dataset summary
	api.HandleFunc("/options", handler.GetFilterOptions).Methods("GET")
	api.HandleFunc("/summary", handler.GetDatasetSummary).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Router exposes the configured router for tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
}
