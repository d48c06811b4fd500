// Package pathfind computes collision-free shortest paths on the board grid.
//
// The search is A* over a uniform-cost, 4-connected grid with a Manhattan
// heuristic, which is admissible and consistent there, so returned paths are
// optimal. Every call is a fresh search over the caller's snapshot of blocked
// cells; nothing is cached between calls.
package pathfind

import (
	"container/heap"

	"github.com/vovakirdan/wordsnake/internal/grid"
)

// node is a frontier entry.
type node struct {
	cell grid.Cell
	g    int // steps from start
	h    int // heuristic steps to goal
	seq  int // insertion order
}

func (n node) f() int { return n.g + n.h }

// frontier is a min-heap ordered by f, then h, then insertion order.
type frontier []node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f() != q[j].f() {
		return q[i].f() < q[j].f()
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(node)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// FindPath returns the cells from the first step after start up to and
// including goal. It returns nil when start equals goal, when goal is off the
// board or blocked, and when no path exists. Exhausting the frontier is a
// normal outcome, not an error.
//
// The start cell itself is never tested against blocked, so callers may pass
// a set that contains the searching actor's own head.
func FindPath(start, goal grid.Cell, blocked grid.CellSet, b grid.Bounds) []grid.Cell {
	if start == goal || b.CellSize <= 0 {
		return nil
	}
	if !b.InBounds(goal) || blocked.Has(goal) {
		return nil
	}

	heuristic := func(c grid.Cell) int {
		return c.Manhattan(goal) / b.CellSize
	}

	gScore := map[grid.Cell]int{start: 0}
	cameFrom := make(map[grid.Cell]grid.Cell)
	closed := make(grid.CellSet)

	open := &frontier{}
	heap.Init(open)
	seq := 0
	heap.Push(open, node{cell: start, g: 0, h: heuristic(start), seq: seq})

	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		if closed.Has(cur.cell) || cur.g != gScore[cur.cell] {
			continue
		}
		if cur.cell == goal {
			return reconstruct(cameFrom, start, goal)
		}
		closed.Add(cur.cell)

		for _, next := range b.Neighbors(cur.cell) {
			if !b.InBounds(next) || blocked.Has(next) || closed.Has(next) {
				continue
			}
			tentative := cur.g + 1
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur.cell
			seq++
			heap.Push(open, node{cell: next, g: tentative, h: heuristic(next), seq: seq})
		}
	}

	return nil
}

// reconstruct walks parent links back from goal, excluding start.
func reconstruct(cameFrom map[grid.Cell]grid.Cell, start, goal grid.Cell) []grid.Cell {
	var path []grid.Cell
	for cur := goal; cur != start; cur = cameFrom[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NextStep returns the first cell on a shortest path, if any.
func NextStep(start, goal grid.Cell, blocked grid.CellSet, b grid.Bounds) (grid.Cell, bool) {
	path := FindPath(start, goal, blocked, b)
	if len(path) == 0 {
		return grid.Cell{}, false
	}
	return path[0], true
}
