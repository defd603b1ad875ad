// Package main is the command-line entry point: it generates a map and
// writes the rendered SVG to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/DiD92/map-generator/internal/catalog"
	"github.com/DiD92/map-generator/internal/mapgen"
	"github.com/DiD92/map-generator/internal/preview"
	"github.com/DiD92/map-generator/internal/telemetry"
)

func main() {
	columns := flag.Int("columns", 64, "number of columns in the map")
	rows := flag.Int("rows", 45, "number of rows in the map")
	style := flag.String("style", "castlevania-sotn", "map style code")
	seed := flag.Int64("seed", 0, "generation seed (0 picks a fresh one)")
	outDir := flag.String("out", "generated", "output directory for the SVG file")
	showPreview := flag.Bool("preview", false, "render the layout in the terminal")
	listStyles := flag.Bool("styles", false, "list known style codes and exit")
	flag.Parse()

	if *listStyles {
		for _, code := range catalog.Codes() {
			fmt.Println(code)
		}
		return
	}

	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	artifact, err := mapgen.Generate(ctx, *columns, *rows, *style, *seed)
	if err != nil {
		log.Fatalf("Failed to generate map: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory %q: %v", *outDir, err)
	}

	outPath := filepath.Join(*outDir, artifact.ID.String()+".svg")
	if err := os.WriteFile(outPath, artifact.SVG, 0o644); err != nil {
		log.Fatalf("Failed to write SVG file: %v", err)
	}

	fmt.Printf("Saved map to %s (seed %d, %d rooms, %d corridors)\n",
		outPath, artifact.Seed, len(artifact.Layout.Regions), len(artifact.Layout.Corridors))

	if *showPreview {
		resolved, err := catalog.Resolve(artifact.Style)
		if err != nil {
			log.Fatalf("Failed to resolve style for preview: %v", err)
		}
		if err := preview.Show(artifact.Layout, resolved.Theme); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
	}
}
