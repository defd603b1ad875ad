// Package mapgen is the generation entry point consumed by the CLI and
// server adapters: it validates a request, runs the layout core and renders
// the result into an immutable artifact.
package mapgen

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DiD92/map-generator/internal/catalog"
	"github.com/DiD92/map-generator/internal/grid"
	"github.com/DiD92/map-generator/internal/layout"
	"github.com/DiD92/map-generator/internal/render"
	"github.com/DiD92/map-generator/internal/telemetry"
)

// MaxDimension bounds the supported grid size; larger requests are rejected
// rather than letting generation time grow unchecked.
const MaxDimension = 1024

// Artifact is the immutable result of one generation run.
type Artifact struct {
	ID      uuid.UUID
	Seed    int64
	Columns int
	Rows    int
	Style   string
	Layout  layout.Layout
	SVG     []byte
}

// Generate produces a map artifact for the requested grid size and style.
// A seed of 0 means a fresh seed is generated; the seed actually used is
// recorded in the artifact so any run can be reproduced on demand.
//
// Errors are limited to *InvalidDimensionsError and *UnknownStyleError;
// generation itself degrades to fewer rooms rather than failing.
func Generate(ctx context.Context, columns, rows int, styleCode string, seed int64) (*Artifact, error) {
	tracer := telemetry.Tracer("mapgen")
	ctx, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	startTime := time.Now()

	style, err := catalog.Resolve(styleCode)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownStyle) {
			return nil, &UnknownStyleError{Style: styleCode}
		}
		return nil, err
	}

	// The grid must fit at least one minimum-size room.
	if columns < style.MinRoomSize || rows < style.MinRoomSize ||
		columns > MaxDimension || rows > MaxDimension {
		return nil, &InvalidDimensionsError{
			Columns: columns,
			Rows:    rows,
			Min:     style.MinRoomSize,
			Max:     MaxDimension,
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := grid.Grid{Columns: columns, Rows: rows}
	l := layout.Generate(ctx, g, style, seed)
	drawing := render.Render(l, style.Theme)

	artifact := &Artifact{
		ID:      uuid.New(),
		Seed:    seed,
		Columns: columns,
		Rows:    rows,
		Style:   style.ID,
		Layout:  l,
		SVG:     drawing,
	}

	span.SetAttributes(
		attribute.String("map.id", artifact.ID.String()),
		attribute.String("map.style", style.ID),
		attribute.Int("map.columns", columns),
		attribute.Int("map.rows", rows),
		attribute.Int("map.room_count", len(l.Regions)),
		attribute.Int("map.corridor_count", len(l.Corridors)),
		attribute.Int("map.svg_bytes", len(drawing)),
		attribute.Int64("map.duration_ms", time.Since(startTime).Milliseconds()),
	)

	return artifact, nil
}
