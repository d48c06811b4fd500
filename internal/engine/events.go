package engine

import (
	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/grid"
)

// EventKind identifies a tick event.
type EventKind string

const (
	EventPickup        EventKind = "pickup"
	EventWordCompleted EventKind = "word_completed"
	EventFrozen        EventKind = "frozen"
	EventRoundOver     EventKind = "round_over"
)

// Event is a cosmetic notification produced during a tick.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Actor  actor.ID
	Cell   grid.Cell
	Char   rune
	Word   string
	Ticks  int
	Reason RoundEndReason
}

// Observer receives every tick's snapshot after the world has been updated.
type Observer interface {
	OnTick(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s Snapshot)

// OnTick calls f(s).
func (f ObserverFunc) OnTick(s Snapshot) {
	f(s)
}
