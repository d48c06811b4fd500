// Package hazard implements the roaming obstacle that hunts the human player.
package hazard

import (
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/pathfind"
	"github.com/vovakirdan/wordsnake/internal/spawn"
)

// DefaultEvery is the default number of ticks between hazard moves.
const DefaultEvery = 5

// Hazard is a single mobile obstacle. It moves one cell toward its target
// every Every ticks and plans through everything, other obstacles included.
type Hazard struct {
	pos    grid.Cell
	active bool
	every  int
	ticks  int
}

// New creates an inactive hazard that moves every n ticks.
func New(every int) *Hazard {
	if every <= 0 {
		every = DefaultEvery
	}
	return &Hazard{every: every}
}

// Pos returns the hazard cell and whether the hazard is on the board.
func (h *Hazard) Pos() (grid.Cell, bool) {
	return h.pos, h.active
}

// Every returns the move cadence in ticks.
func (h *Hazard) Every() int {
	return h.every
}

// Place puts the hazard on c. The tick counter keeps running.
func (h *Hazard) Place(c grid.Cell) {
	h.pos = c
	h.active = true
}

// Remove takes the hazard off the board.
func (h *Hazard) Remove() {
	h.active = false
}

// PlaceFromObstacles moves the hazard onto the first Eagle obstacle, or
// removes it when there is none. Returns whether the hazard is active.
func (h *Hazard) PlaceFromObstacles(obstacles []spawn.Obstacle) bool {
	for _, o := range obstacles {
		if o.Kind == spawn.Eagle {
			h.Place(o.Cell)
			return true
		}
	}
	h.Remove()
	return false
}

// Tick counts one game tick and, on every Every-th tick, steps toward target
// along a shortest path with nothing blocked. Returns true if it moved.
func (h *Hazard) Tick(target grid.Cell, b grid.Bounds) bool {
	if !h.active {
		return false
	}
	h.ticks++
	if h.ticks%h.every != 0 {
		return false
	}
	next, ok := pathfind.NextStep(h.pos, target, nil, b)
	if !ok {
		return false
	}
	h.pos = next
	return true
}

// Sync writes the hazard position back into the obstacle list so that the
// Eagle entry tracks the moving hazard.
func (h *Hazard) Sync(obstacles []spawn.Obstacle) {
	if !h.active {
		return
	}
	for i := range obstacles {
		if obstacles[i].Kind == spawn.Eagle {
			obstacles[i].Cell = h.pos
			return
		}
	}
}
