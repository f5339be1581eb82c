package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/gridiron/internal/api/rest"
	"github.com/fortuna/gridiron/internal/headshot"
	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/postgres"
	"github.com/fortuna/gridiron/internal/store/supabase"
)

const (
	serviceName    = "gridiron"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NFL Stats Service", serviceName, serviceVersion)

	// Load configuration from environment
	config := loadConfig()

	// Pick the store backend: direct Postgres when a DSN is configured,
	// otherwise the Supabase REST gateway.
	var querier store.Querier
	if config.DatabaseDSN != "" {
		pg, err := postgres.Open(config.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		querier = pg
		log.Println("✓ Connected to Postgres")
	} else {
		querier = supabase.New(config.SupabaseURL, config.SupabaseKey)
		log.Printf("✓ Using Supabase gateway at %s", config.SupabaseURL)
	}

	// Headshot CSV loads lazily on first lookup; a missing file just
	// disables photo URLs.
	headshots := headshot.New(config.PlayerIDsCSV)
	log.Printf("✓ Headshot resolver configured (%s)", config.PlayerIDsCSV)

	statsService := service.NewStatsService(querier, headshots)

	// Initialize REST API server
	restServer := rest.NewServer(config.RESTPort, statsService)
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ REST API server listening on :%s", config.RESTPort)
	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Println("Stopped")
}

type Config struct {
	SupabaseURL  string
	SupabaseKey  string
	DatabaseDSN  string
	RESTPort     string
	PlayerIDsCSV string
}

func loadConfig() Config {
	return Config{
		SupabaseURL:  getEnv("SUPABASE_URL", "http://localhost:54321"),
		SupabaseKey:  getEnv("SUPABASE_KEY", ""),
		DatabaseDSN:  getEnv("DATABASE_DSN", ""),
		RESTPort:     getEnv("REST_PORT", "8080"),
		PlayerIDsCSV: getEnv("PLAYER_IDS_CSV", "data/db_playerids.csv"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
