package pathfind

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/grid"
)

// bfsDistance is a brute-force reference: shortest step count or -1.
func bfsDistance(start, goal grid.Cell, blocked grid.CellSet, b grid.Bounds) int {
	if start == goal {
		return 0
	}
	dist := map[grid.Cell]int{start: 0}
	queue := []grid.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.Neighbors(cur) {
			if !b.InBounds(n) || blocked.Has(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == goal {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return -1
}

// checkPath verifies that path is a legal walk from start to goal.
func checkPath(t *testing.T, start, goal grid.Cell, blocked grid.CellSet, b grid.Bounds, path []grid.Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if path[len(path)-1] != goal {
		t.Fatalf("path ends at %v, expected goal %v", path[len(path)-1], goal)
	}
	prev := start
	for i, c := range path {
		if !b.InBounds(c) {
			t.Fatalf("step %d %v is out of bounds", i, c)
		}
		if blocked.Has(c) {
			t.Fatalf("step %d %v is blocked", i, c)
		}
		if prev.Manhattan(c) != b.CellSize {
			t.Fatalf("step %d %v is not adjacent to %v", i, c, prev)
		}
		prev = c
	}
}

func TestFindPathEmptyGrid(t *testing.T) {
	b := grid.NewBounds(3, 3, 20)
	path := FindPath(grid.C(0, 0), grid.C(40, 40), nil, b)

	if len(path) != 4 {
		t.Fatalf("path length = %d, expected 4 (path %v)", len(path), path)
	}
	checkPath(t, grid.C(0, 0), grid.C(40, 40), nil, b, path)
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	b := grid.NewBounds(3, 3, 20)
	if path := FindPath(grid.C(20, 20), grid.C(20, 20), nil, b); len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestFindPathEnclosedGoal(t *testing.T) {
	b := grid.NewBounds(5, 5, 20)
	goal := grid.C(40, 40)
	around := b.Neighbors(goal)
	blocked := grid.NewCellSet(around[:]...)

	if path := FindPath(grid.C(0, 0), goal, blocked, b); len(path) != 0 {
		t.Errorf("expected empty path to enclosed goal, got %v", path)
	}
}

func TestFindPathBlockedGoal(t *testing.T) {
	b := grid.NewBounds(5, 5, 20)
	goal := grid.C(40, 40)
	if path := FindPath(grid.C(0, 0), goal, grid.NewCellSet(goal), b); len(path) != 0 {
		t.Errorf("expected empty path to blocked goal, got %v", path)
	}
}

func TestFindPathGoalOutOfBounds(t *testing.T) {
	b := grid.NewBounds(3, 3, 20)
	if path := FindPath(grid.C(0, 0), grid.C(60, 0), nil, b); len(path) != 0 {
		t.Errorf("expected empty path to off-board goal, got %v", path)
	}
}

func TestFindPathGoalReachableWithBlockedSurroundings(t *testing.T) {
	// Goal in a corner with one open neighbor; the goal itself is free.
	b := grid.NewBounds(4, 4, 20)
	goal := grid.C(0, 0)
	blocked := grid.NewCellSet(grid.C(20, 0))

	path := FindPath(grid.C(60, 60), goal, blocked, b)
	checkPath(t, grid.C(60, 60), goal, blocked, b, path)
	if len(path) != 6 {
		t.Errorf("path length = %d, expected 6", len(path))
	}
}

func TestFindPathStartInsideBlocked(t *testing.T) {
	// The searching snake's own head is part of the blocked snapshot.
	b := grid.NewBounds(5, 1, 20)
	body := grid.NewCellSet(grid.C(20, 0), grid.C(0, 0))

	path := FindPath(grid.C(20, 0), grid.C(80, 0), body, b)
	checkPath(t, grid.C(20, 0), grid.C(80, 0), body, b, path)
	if len(path) != 3 {
		t.Errorf("path length = %d, expected 3", len(path))
	}
}

func TestFindPathDetour(t *testing.T) {
	// Wall across the middle column with a gap at the bottom.
	b := grid.NewBounds(5, 5, 20)
	blocked := grid.NewCellSet(grid.C(40, 0), grid.C(40, 20), grid.C(40, 40), grid.C(40, 60))

	start, goal := grid.C(0, 0), grid.C(80, 0)
	path := FindPath(start, goal, blocked, b)
	checkPath(t, start, goal, blocked, b, path)
	if want := bfsDistance(start, goal, blocked, b); len(path) != want {
		t.Errorf("path length = %d, expected %d", len(path), want)
	}
}

func TestFindPathOptimalAgainstBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	b := grid.NewBounds(7, 6, 10)

	for trial := 0; trial < 300; trial++ {
		blocked := make(grid.CellSet)
		walls := rng.Intn(15)
		for i := 0; i < walls; i++ {
			blocked.Add(b.RandomCell(rng, 0))
		}
		start := b.RandomCell(rng, 0)
		goal := b.RandomCell(rng, 0)

		path := FindPath(start, goal, blocked, b)
		want := bfsDistance(start, goal, blocked, b)

		switch {
		case start == goal || blocked.Has(goal):
			if len(path) != 0 {
				t.Fatalf("trial %d: expected empty path, got %v", trial, path)
			}
		case want < 0:
			if len(path) != 0 {
				t.Fatalf("trial %d: goal unreachable but got %v", trial, path)
			}
		default:
			checkPath(t, start, goal, blocked, b, path)
			if len(path) != want {
				t.Fatalf("trial %d: path length %d, BFS says %d", trial, len(path), want)
			}
		}
	}
}

func TestFindPathDeterministic(t *testing.T) {
	b := grid.NewBounds(8, 8, 20)
	blocked := grid.NewCellSet(grid.C(60, 60), grid.C(80, 60))
	first := FindPath(grid.C(0, 0), grid.C(140, 140), blocked, b)

	for i := 0; i < 10; i++ {
		again := FindPath(grid.C(0, 0), grid.C(140, 140), blocked, b)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d differs from %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: step %d %v differs from %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestNextStep(t *testing.T) {
	b := grid.NewBounds(3, 1, 20)
	step, ok := NextStep(grid.C(0, 0), grid.C(40, 0), nil, b)
	if !ok || step != grid.C(20, 0) {
		t.Errorf("NextStep = %v, %v; expected (20,0), true", step, ok)
	}

	if _, ok := NextStep(grid.C(0, 0), grid.C(40, 0), grid.NewCellSet(grid.C(20, 0)), b); ok {
		t.Error("NextStep should fail when the corridor is blocked")
	}
}
