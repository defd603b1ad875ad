package layout

import (
	"container/heap"

	"github.com/DiD92/map-generator/internal/grid"
)

// pathNode is an entry in the A* open set.
type pathNode struct {
	cell  grid.Cell
	fCost int
	order int // insertion sequence, breaks cost ties deterministically
	index int // heap bookkeeping
}

type pathQueue []*pathNode

func (q pathQueue) Len() int { return len(q) }

func (q pathQueue) Less(i, j int) bool {
	if q[i].fCost != q[j].fCost {
		return q[i].fCost < q[j].fCost
	}
	return q[i].order < q[j].order
}

func (q pathQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *pathQueue) Push(x any) {
	node := x.(*pathNode)
	node.index = len(*q)
	*q = append(*q, node)
}

func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

// findPath searches for a shortest in-grid path from start to goal, stepping
// only through cells for which blocked returns false (start and goal are
// always traversable). Cost is 1 per step with a Manhattan-distance heuristic.
// Returns nil when no path exists.
func findPath(g grid.Grid, start, goal grid.Cell, blocked func(grid.Cell) bool) []grid.Cell {
	open := &pathQueue{}
	heap.Init(open)

	gScore := map[grid.Cell]int{start: 0}
	cameFrom := make(map[grid.Cell]grid.Cell)
	closed := make(map[grid.Cell]bool)

	order := 0
	heap.Push(open, &pathNode{
		cell:  start,
		fCost: grid.ManhattanDistance(start, goal),
		order: order,
	})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if current.cell == goal {
			return reconstructPath(cameFrom, goal)
		}
		if closed[current.cell] {
			continue
		}
		closed[current.cell] = true

		for _, next := range g.Neighbors(current.cell) {
			if closed[next] {
				continue
			}
			if next != goal && next != start && blocked(next) {
				continue
			}

			tentative := gScore[current.cell] + 1
			if known, seen := gScore[next]; seen && tentative >= known {
				continue
			}

			gScore[next] = tentative
			cameFrom[next] = current.cell
			order++
			heap.Push(open, &pathNode{
				cell:  next,
				fCost: tentative + grid.ManhattanDistance(next, goal),
				order: order,
			})
		}
	}

	return nil
}

func reconstructPath(cameFrom map[grid.Cell]grid.Cell, goal grid.Cell) []grid.Cell {
	path := []grid.Cell{goal}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}

	// Reverse into start -> goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
