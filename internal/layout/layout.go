// Package layout implements the generation core: placing non-overlapping
// rooms on a grid and connecting them into a single traversable structure.
package layout

import (
	"github.com/DiD92/map-generator/internal/grid"
)

// RoomKind marks rooms that receive special rendering.
type RoomKind int

const (
	// KindNormal is a plain room.
	KindNormal RoomKind = iota
	// KindSave marks a save room.
	KindSave
	// KindNavigation marks a navigation room.
	KindNavigation
)

// Region is a rectangular room footprint placed on the grid.
type Region struct {
	ID   int
	Rect grid.Rect
	Kind RoomKind
}

// Corridor is an ordered cell path joining two regions. The first and last
// cells lie on the boundary of the From and To regions; every interior cell
// lies outside all regions.
type Corridor struct {
	From, To int // Region IDs
	Cells    []grid.Cell
}

// Layout is the complete set of regions and corridors for one generated map.
// A layout is immutable once produced.
type Layout struct {
	Columns, Rows int
	Regions       []Region
	Corridors     []Corridor
}

// RegionByID returns the region with the given ID, or nil.
func (l *Layout) RegionByID(id int) *Region {
	for i := range l.Regions {
		if l.Regions[i].ID == id {
			return &l.Regions[i]
		}
	}
	return nil
}

// Connected reports whether every region is reachable from every other region
// by following corridors. An empty or single-region layout is connected.
func (l *Layout) Connected() bool {
	if len(l.Regions) <= 1 {
		return true
	}

	adjacency := make(map[int][]int, len(l.Regions))
	for _, c := range l.Corridors {
		adjacency[c.From] = append(adjacency[c.From], c.To)
		adjacency[c.To] = append(adjacency[c.To], c.From)
	}

	visited := make(map[int]bool, len(l.Regions))
	stack := []int{l.Regions[0].ID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, adjacency[id]...)
	}

	return len(visited) == len(l.Regions)
}
