package engine

import (
	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/spawn"
)

// RoundEndReason explains why a round ended.
type RoundEndReason string

const (
	ReasonNone        RoundEndReason = ""
	ReasonWall        RoundEndReason = "wall"
	ReasonSelf        RoundEndReason = "self"
	ReasonActor       RoundEndReason = "actor"
	ReasonObstacle    RoundEndReason = "obstacle"
	ReasonHazard      RoundEndReason = "hazard"
	ReasonSpawnFailed RoundEndReason = "spawn_failed"
)

// ActorState is the public view of one snake.
type ActorState struct {
	ID       actor.ID
	Kind     actor.Kind
	Body     []grid.Cell // Head at index 0
	Dir      grid.Direction
	Score    int
	Progress int
	Frozen   int // remaining freeze ticks
	Slowed   int // remaining slowdown ticks
}

// Head returns the head cell.
func (a ActorState) Head() grid.Cell {
	return a.Body[0]
}

// Snapshot is an immutable copy of the world after a tick.
type Snapshot struct {
	Tick           uint64
	Seed           int64
	Word           string
	WordsCompleted int
	Actors         []ActorState
	Pickups        []spawn.Pickup
	Obstacles      []spawn.Obstacle
	Hazard         grid.Cell
	HazardActive   bool
	RoundOver      bool
	Reason         RoundEndReason
	Culprit        actor.ID // actor whose move ended the round
	Events         []Event
}

// Actor returns the state of id.
func (s Snapshot) Actor(id actor.ID) (ActorState, bool) {
	for _, a := range s.Actors {
		if a.ID == id {
			return a, true
		}
	}
	return ActorState{}, false
}

// LeadingHumanScore returns the highest human score.
func (s Snapshot) LeadingHumanScore() int {
	best := 0
	for _, a := range s.Actors {
		if a.Kind == actor.KindHuman && a.Score > best {
			best = a.Score
		}
	}
	return best
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           w.tick,
		Seed:           w.seed,
		Word:           w.target.Word(),
		WordsCompleted: w.completed,
		Actors:         make([]ActorState, 0, len(w.order)),
		Pickups:        append([]spawn.Pickup(nil), w.pickups...),
		Obstacles:      append([]spawn.Obstacle(nil), w.obstacles...),
		RoundOver:      w.over,
		Reason:         w.reason,
		Culprit:        w.culprit,
		Events:         append([]Event(nil), w.events...),
	}
	s.Hazard, s.HazardActive = w.hazard.Pos()
	for _, id := range w.order {
		sn, ok := w.snakes[id]
		if !ok {
			continue
		}
		s.Actors = append(s.Actors, ActorState{
			ID:       id,
			Kind:     id.Kind(),
			Body:     sn.Cells(),
			Dir:      sn.Dir,
			Score:    w.scores[id],
			Progress: w.target.Progress(id),
			Frozen:   w.freeze[id],
			Slowed:   w.slow[id],
		})
	}
	return s
}
