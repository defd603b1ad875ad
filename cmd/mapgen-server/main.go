// Package main runs the map generation HTTP service.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/DiD92/map-generator/internal/server"
	"github.com/DiD92/map-generator/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Server will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	addr := os.Getenv("MAPGEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dataDir := os.Getenv("MAPGEN_DATA_DIR")
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory %q: %v", dataDir, err)
		}
		log.Printf("Persisting drawings to %s", dataDir)
	}

	srv := server.New(server.NewStore(dataDir))

	log.Printf("Listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
