package engine

import (
	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/pathfind"
)

// Autopilot suggests a heading for id the way the AI snakes plan: a shortest
// path to the nearest needed letter. Without one it picks the first safe
// neighbor that is not a reversal. ok is false when nothing is safe.
func (w *World) Autopilot(id actor.ID) (dir grid.Direction, ok bool) {
	s, exists := w.snakes[id]
	if !exists || w.over {
		return 0, false
	}
	head := s.Head()
	blocked := w.blockedFor()

	if goal, found := w.nearestPickup(id); found {
		if next, found := pathfind.NextStep(head, goal, blocked, w.cfg.Bounds); found {
			if d, adjacent := grid.DirectionTo(head, next); adjacent && d != s.Heading().Opposite() {
				return d, true
			}
		}
	}

	for _, d := range grid.Directions {
		if d == s.Heading().Opposite() {
			continue
		}
		c := head.Step(d, w.cfg.Bounds.CellSize)
		if w.cfg.Bounds.InBounds(c) && !blocked.Has(c) {
			return d, true
		}
	}
	return s.Dir, false
}

// AutopilotInput steers every human with Autopilot.
func (w *World) AutopilotInput() Input {
	in := make(Input, len(w.humans))
	for _, id := range w.humans {
		if d, ok := w.Autopilot(id); ok {
			in[id] = d
		}
	}
	return in
}
