package layout

import (
	"math"
	"sort"

	"github.com/DiD92/map-generator/internal/grid"
)

// regionEdge is a candidate connection between two regions, weighted by the
// Manhattan distance between their centers.
type regionEdge struct {
	a, b   int // indexes into the regions slice
	weight int
}

// buildCorridors connects the regions into one structure. It first carves the
// cheapest spanning set of corridors (greedy edge selection with union-find
// bookkeeping), then adds loop-forming extras up to the branching budget.
// It returns the carved corridors and the indexes of regions that ended up
// outside the largest connected component.
func buildCorridors(g grid.Grid, regions []Region, branching float64) ([]Corridor, []int) {
	n := len(regions)
	if n < 2 {
		return nil, nil
	}

	edges := make([]regionEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, regionEdge{
				a:      i,
				b:      j,
				weight: grid.ManhattanDistance(regions[i].Rect.Center(), regions[j].Rect.Center()),
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].weight != edges[j].weight {
			return edges[i].weight < edges[j].weight
		}
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})

	uf := newUnionFind(n)
	spanning := make([]regionEdge, 0, n-1)
	loops := make([]regionEdge, 0, len(edges))
	for _, e := range edges {
		if uf.union(e.a, e.b) {
			spanning = append(spanning, e)
		} else {
			loops = append(loops, e)
		}
	}

	// Loop edges beyond the spanning structure create alternate routes; the
	// style's branching factor bounds how many are attempted.
	extraBudget := int(math.Ceil(branching * float64(len(spanning))))
	if extraBudget > len(loops) {
		extraBudget = len(loops)
	}
	selected := append(spanning, loops[:extraBudget]...)

	regionCells := make(map[grid.Cell]int, g.Area())
	for idx := range regions {
		for _, c := range regions[idx].Rect.Cells() {
			regionCells[c] = idx
		}
	}
	corridorInterior := make(map[grid.Cell]bool)

	blocked := func(c grid.Cell) bool {
		if _, claimed := regionCells[c]; claimed {
			return true
		}
		return corridorInterior[c]
	}

	carved := newUnionFind(n)
	corridors := make([]Corridor, 0, len(selected))
	for _, e := range selected {
		start, goal := doorCells(regions[e.a].Rect, regions[e.b].Rect)

		path := findPath(g, start, goal, blocked)
		if path == nil {
			// No room left for this corridor; the edge is dropped and the
			// components stay candidates for a later edge.
			continue
		}

		for _, c := range path[1 : len(path)-1] {
			corridorInterior[c] = true
		}
		corridors = append(corridors, Corridor{
			From:  regions[e.a].ID,
			To:    regions[e.b].ID,
			Cells: path,
		})
		carved.union(e.a, e.b)
	}

	return corridors, unreachableFrom(carved, n)
}

// doorCells returns the pair of boundary cells, one per rect, with minimal
// Manhattan distance. Ties resolve by boundary iteration order so the choice
// is deterministic.
func doorCells(a, b grid.Rect) (grid.Cell, grid.Cell) {
	boundaryA := a.BoundaryCells()
	boundaryB := b.BoundaryCells()

	best := grid.ManhattanDistance(boundaryA[0], boundaryB[0]) + 1
	var from, to grid.Cell
	for _, ca := range boundaryA {
		for _, cb := range boundaryB {
			if d := grid.ManhattanDistance(ca, cb); d < best {
				best = d
				from, to = ca, cb
			}
		}
	}
	return from, to
}

// unreachableFrom returns the region indexes outside the largest connectivity
// component. Ties between equally-sized components resolve to the one holding
// the lowest index.
func unreachableFrom(uf *unionFind, n int) []int {
	sizes := make(map[int]int, n)
	for i := 0; i < n; i++ {
		sizes[uf.find(i)]++
	}
	if len(sizes) <= 1 {
		return nil
	}

	bestRoot := uf.find(0)
	for i := 1; i < n; i++ {
		root := uf.find(i)
		if sizes[root] > sizes[bestRoot] {
			bestRoot = root
		}
	}

	var unreachable []int
	for i := 0; i < n; i++ {
		if uf.find(i) != bestRoot {
			unreachable = append(unreachable, i)
		}
	}
	return unreachable
}
