package words

import (
	"unicode"

	"github.com/vovakirdan/wordsnake/internal/actor"
)

// State is the phase of a word cycle.
type State uint8

const (
	Collecting State = iota
	Completed
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome is the result of offering a letter to the target.
type Outcome uint8

const (
	Rejected Outcome = iota
	Progressed
	Finished
)

// Target tracks one shared word and each actor's progress through it.
type Target struct {
	word      []rune
	state     State
	progress  map[actor.ID]int
	completer actor.ID
}

// NewTarget starts a word cycle for the given actors.
func NewTarget(word string, actors []actor.ID) *Target {
	t := &Target{progress: make(map[actor.ID]int, len(actors))}
	for _, id := range actors {
		t.progress[id] = 0
	}
	t.Reset(word)
	return t
}

// Word returns the active word in lowercase.
func (t *Target) Word() string {
	return string(t.word)
}

// State returns the current phase.
func (t *Target) State() State {
	return t.state
}

// Completer returns the actor that finished the word, if any.
func (t *Target) Completer() (actor.ID, bool) {
	return t.completer, t.state == Completed
}

// Progress returns how many letters id has collected.
func (t *Target) Progress(id actor.ID) int {
	return t.progress[id]
}

// Required returns the next letter id needs. ok is false once the word is
// done or the actor is not competing.
func (t *Target) Required(id actor.ID) (r rune, ok bool) {
	if t.state != Collecting {
		return 0, false
	}
	p, known := t.progress[id]
	if !known || p >= len(t.word) {
		return 0, false
	}
	return t.word[p], true
}

// Accept offers ch to id. A matching letter (case-insensitive) advances that
// actor only. Reaching the end of the word moves the target to Completed,
// after which every offer is rejected until Reset.
func (t *Target) Accept(id actor.ID, ch rune) Outcome {
	want, ok := t.Required(id)
	if !ok || unicode.ToLower(ch) != want {
		return Rejected
	}
	t.progress[id]++
	if t.progress[id] == len(t.word) {
		t.state = Completed
		t.completer = id
		return Finished
	}
	return Progressed
}

// Reset starts a new cycle with word, zeroing every actor's progress.
func (t *Target) Reset(word string) {
	t.word = []rune(normalize(word))
	t.state = Collecting
	t.completer = 0
	for id := range t.progress {
		t.progress[id] = 0
	}
}
