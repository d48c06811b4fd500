// Package actor models snake bodies and the identities of competing actors.
package actor

import (
	"strconv"

	"github.com/vovakirdan/wordsnake/internal/grid"
)

// ID identifies a competing actor within a round.
type ID int

// Fixed actor IDs. AI snakes are numbered from AI1 upward.
const (
	Player1 ID = iota + 1
	Player2
	AI1
)

// AI returns the ID of the n-th AI snake (0-indexed).
func AI(n int) ID {
	return AI1 + ID(n)
}

// Kind tells human- and computer-controlled actors apart.
type Kind uint8

const (
	KindHuman Kind = iota
	KindAI
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Kind reports whether the ID belongs to a human or an AI snake.
func (id ID) Kind() Kind {
	if id >= AI1 {
		return KindAI
	}
	return KindHuman
}

// String returns a display name for the actor.
func (id ID) String() string {
	switch {
	case id == Player1:
		return "player1"
	case id == Player2:
		return "player2"
	case id >= AI1:
		return "ai" + strconv.Itoa(int(id-AI1)+1)
	default:
		return "unknown"
	}
}

// Snake is an ordered body of cells, head first.
type Snake struct {
	ID   ID
	Body []grid.Cell // Head at index 0
	Dir  grid.Direction
}

// NewSnake creates a single-cell snake facing dir.
func NewSnake(id ID, head grid.Cell, dir grid.Direction) *Snake {
	return &Snake{
		ID:   id,
		Body: []grid.Cell{head},
		Dir:  dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() grid.Cell {
	return s.Body[0]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies checks if any body cell, head included, equals c.
func (s *Snake) Occupies(c grid.Cell) bool {
	for _, seg := range s.Body {
		if seg == c {
			return true
		}
	}
	return false
}

// HitsSelf reports whether moving the head to c overlaps the current body.
// The tail has not been vacated yet, so entering it counts as a collision.
func (s *Snake) HitsSelf(c grid.Cell) bool {
	return s.Occupies(c)
}

// Heading returns the direction the head last travelled in: from the neck to
// the head, or Dir for a single-cell snake.
func (s *Snake) Heading() grid.Direction {
	if len(s.Body) > 1 {
		if d, ok := grid.DirectionTo(s.Body[1], s.Body[0]); ok {
			return d
		}
	}
	return s.Dir
}

// Turn changes direction unless d reverses the direction of travel. Dir may
// already differ from Heading when a turn was queued on a tick the snake did
// not move; the check is against Heading so the head never folds onto the neck.
// Returns false if the turn was rejected.
func (s *Snake) Turn(d grid.Direction) bool {
	if d == s.Heading().Opposite() {
		return false
	}
	s.Dir = d
	return true
}

// Advance returns the cell the head would enter moving one step in dir.
func (s *Snake) Advance(dir grid.Direction, cellSize int) grid.Cell {
	return s.Head().Step(dir, cellSize)
}

// Grow prepends a new head and keeps the tail.
func (s *Snake) Grow(newHead grid.Cell) {
	s.prepend(newHead)
}

// Step prepends a new head and removes the tail, keeping the length constant.
func (s *Snake) Step(newHead grid.Cell) {
	s.prepend(newHead)
	s.Body = s.Body[:len(s.Body)-1]
}

// Shrink removes the tail cell. The head is never removed.
func (s *Snake) Shrink() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) prepend(newHead grid.Cell) {
	if d, ok := grid.DirectionTo(s.Head(), newHead); ok {
		s.Dir = d
	}
	s.Body = append(s.Body, grid.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []grid.Cell {
	out := make([]grid.Cell, len(s.Body))
	copy(out, s.Body)
	return out
}

// Clone returns a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	return &Snake{ID: s.ID, Body: s.Cells(), Dir: s.Dir}
}
