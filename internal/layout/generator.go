package layout

import (
	"context"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DiD92/map-generator/internal/catalog"
	"github.com/DiD92/map-generator/internal/grid"
	"github.com/DiD92/map-generator/internal/telemetry"
)

const (
	// candidateCount is how many independent layouts are explored per run.
	candidateCount = 4
	// attemptsPerRoom bounds the rejection-sampling loop for each room; when
	// the budget runs out the layout keeps fewer rooms instead of retrying
	// forever.
	attemptsPerRoom = 64

	// decorationStream separates the room-decoration random sequence from the
	// candidate sub-seeds.
	decorationStream = 101
)

// Generate produces a connected layout for the given grid and style. The same
// (grid, style, seed) triple always yields the same layout.
//
// Candidate layouts are explored concurrently; each candidate reads only
// immutable inputs and writes its own result slot, so the fan-out needs no
// locking. The winner is picked in a single-threaded reduction after the join.
func Generate(ctx context.Context, g grid.Grid, style *catalog.Style, seed int64) Layout {
	tracer := telemetry.Tracer("layout")
	_, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()

	candidates := make([]candidate, candidateCount)
	var wg sync.WaitGroup
	for i := 0; i < candidateCount; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(subSeed(seed, uint64(slot))))
			candidates[slot] = placeRegions(g, style, rng)
		}(i)
	}
	wg.Wait()

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score() < best.score() {
			best = c
		}
	}

	regions := best.regions
	corridors, unreachable := buildCorridors(g, regions, style.BranchingFactor)
	if len(unreachable) > 0 {
		regions, corridors = dropRegions(regions, corridors, unreachable)
	}

	decorate(regions, style.DecorationDensity,
		rand.New(rand.NewSource(subSeed(seed, decorationStream))))

	span.SetAttributes(
		attribute.Int("layout.columns", g.Columns),
		attribute.Int("layout.rows", g.Rows),
		attribute.String("layout.style", style.ID),
		attribute.Int("layout.room_target", best.target),
		attribute.Int("layout.room_count", len(regions)),
		attribute.Int("layout.corridor_count", len(corridors)),
		attribute.Int("layout.dropped_regions", len(unreachable)),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return Layout{
		Columns:   g.Columns,
		Rows:      g.Rows,
		Regions:   regions,
		Corridors: corridors,
	}
}

// subSeed derives a deterministic per-stream seed from the master seed.
func subSeed(seed int64, stream uint64) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], stream)
	return int64(xxhash.Sum64(buf[:]))
}

// candidate is one independently explored room placement.
type candidate struct {
	regions []Region
	target  int
}

// score ranks candidates: distance from the target room count dominates, a
// more even room-area distribution breaks ties. Lower is better.
func (c candidate) score() int {
	diff := c.target - len(c.regions)
	if diff < 0 {
		diff = -diff
	}

	spread := 0
	if len(c.regions) > 1 {
		minArea, maxArea := c.regions[0].Rect.Area(), c.regions[0].Rect.Area()
		for _, r := range c.regions[1:] {
			area := r.Rect.Area()
			if area < minArea {
				minArea = area
			}
			if area > maxArea {
				maxArea = area
			}
		}
		spread = maxArea - minArea
	}

	return diff*10_000 + spread
}

// placeRegions fills the grid with non-overlapping rooms by rejection
// sampling. Overlap checks go through a cell-membership set so each attempt
// stays near-constant time regardless of how many rooms were accepted.
func placeRegions(g grid.Grid, style *catalog.Style, rng *rand.Rand) candidate {
	minTarget, maxTarget := style.TargetRoomRange(g.Area())
	target := minTarget + rng.Intn(maxTarget-minTarget+1)

	occupied := make(map[grid.Cell]bool, g.Area()/2)
	regions := make([]Region, 0, target)

	for len(regions) < target {
		placed := false
		for attempt := 0; attempt < attemptsPerRoom; attempt++ {
			width := roomSpan(rng, style, g.Columns)
			height := roomSpan(rng, style, g.Rows)
			rect := grid.Rect{
				Col:    rng.Intn(g.Columns - width + 1),
				Row:    rng.Intn(g.Rows - height + 1),
				Width:  width,
				Height: height,
			}

			if overlaps(rect, occupied) {
				continue
			}

			for _, c := range rect.Cells() {
				occupied[c] = true
			}
			regions = append(regions, Region{ID: len(regions), Rect: rect})
			placed = true
			break
		}
		if !placed {
			// Attempt budget exhausted: a sparser layout beats not terminating.
			break
		}
	}

	return candidate{regions: regions, target: target}
}

func roomSpan(rng *rand.Rand, style *catalog.Style, limit int) int {
	span := style.MinRoomSize + rng.Intn(style.MaxRoomSize-style.MinRoomSize+1)
	if span > limit {
		span = limit
	}
	return span
}

func overlaps(rect grid.Rect, occupied map[grid.Cell]bool) bool {
	for _, c := range rect.Cells() {
		if occupied[c] {
			return true
		}
	}
	return false
}

// dropRegions removes the regions at the given indexes along with any
// corridor touching them. Remaining region IDs are preserved.
func dropRegions(regions []Region, corridors []Corridor, indexes []int) ([]Region, []Corridor) {
	droppedIDs := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		droppedIDs[regions[idx].ID] = true
	}

	kept := make([]Region, 0, len(regions)-len(indexes))
	for _, r := range regions {
		if !droppedIDs[r.ID] {
			kept = append(kept, r)
		}
	}

	keptCorridors := make([]Corridor, 0, len(corridors))
	for _, c := range corridors {
		if !droppedIDs[c.From] && !droppedIDs[c.To] {
			keptCorridors = append(keptCorridors, c)
		}
	}

	return kept, keptCorridors
}

// decorate marks a style-dependent share of rooms as save or navigation rooms.
func decorate(regions []Region, density float64, rng *rand.Rand) {
	if density <= 0 {
		return
	}
	for i := range regions {
		if rng.Float64() >= density {
			continue
		}
		if rng.Intn(2) == 0 {
			regions[i].Kind = KindSave
		} else {
			regions[i].Kind = KindNavigation
		}
	}
}
