package actor

import (
	"testing"

	"github.com/vovakirdan/wordsnake/internal/grid"
)

func TestHeadOnSelfCollision(t *testing.T) {
	s := &Snake{
		ID:   Player1,
		Body: []grid.Cell{grid.C(100, 100), grid.C(80, 100), grid.C(80, 120)},
		Dir:  grid.DirRight,
	}

	newHead := s.Advance(grid.DirLeft, 20)
	if newHead != grid.C(80, 100) {
		t.Fatalf("Advance(left) = %v, expected (80,100)", newHead)
	}
	if !s.HitsSelf(newHead) {
		t.Error("moving into body[1] should be a self collision")
	}
}

func TestEnteringTailCountsAsCollision(t *testing.T) {
	// Square loop: the head moves into the cell the tail still occupies.
	s := &Snake{
		ID:   Player1,
		Body: []grid.Cell{grid.C(0, 0), grid.C(20, 0), grid.C(20, 20), grid.C(0, 20)},
		Dir:  grid.DirLeft,
	}

	if !s.HitsSelf(s.Advance(grid.DirDown, 20)) {
		t.Error("entering the pre-move tail cell should collide")
	}
}

func TestGrowAndStep(t *testing.T) {
	s := NewSnake(AI1, grid.C(40, 40), grid.DirRight)

	s.Grow(grid.C(60, 40))
	if s.Len() != 2 {
		t.Fatalf("Len after Grow = %d, expected 2", s.Len())
	}
	if s.Head() != grid.C(60, 40) {
		t.Errorf("Head = %v, expected (60,40)", s.Head())
	}

	s.Step(grid.C(60, 60))
	if s.Len() != 2 {
		t.Errorf("Len after Step = %d, expected 2", s.Len())
	}
	want := []grid.Cell{grid.C(60, 60), grid.C(60, 40)}
	for i, c := range want {
		if s.Body[i] != c {
			t.Errorf("Body[%d] = %v, expected %v", i, s.Body[i], c)
		}
	}
	if s.Dir != grid.DirDown {
		t.Errorf("Dir = %v, expected down", s.Dir)
	}
}

func TestShrinkKeepsHead(t *testing.T) {
	s := &Snake{Body: []grid.Cell{grid.C(0, 0), grid.C(20, 0)}}
	s.Shrink()
	s.Shrink()
	s.Shrink()

	if s.Len() != 1 || s.Head() != grid.C(0, 0) {
		t.Errorf("Shrink should stop at the head, got %v", s.Body)
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	s := NewSnake(Player1, grid.C(0, 0), grid.DirRight)

	if s.Turn(grid.DirLeft) {
		t.Error("reversing right -> left should be rejected")
	}
	if s.Dir != grid.DirRight {
		t.Errorf("Dir = %v, expected right", s.Dir)
	}
	if !s.Turn(grid.DirUp) {
		t.Error("turning up should be accepted")
	}
	if s.Dir != grid.DirUp {
		t.Errorf("Dir = %v, expected up", s.Dir)
	}
}

func TestTurnChecksHeadingNotQueuedDir(t *testing.T) {
	// Moving right with the neck at (20,0).
	s := &Snake{ID: Player1, Body: []grid.Cell{grid.C(40, 0), grid.C(20, 0), grid.C(0, 0)}, Dir: grid.DirRight}

	if !s.Turn(grid.DirUp) {
		t.Fatal("turning up should be accepted")
	}
	// The snake has not moved yet, so left still points into the neck.
	if s.Turn(grid.DirLeft) {
		t.Error("turning left before moving should be rejected")
	}
	if s.Dir != grid.DirUp {
		t.Errorf("Dir = %v, expected the queued up", s.Dir)
	}
	if s.Heading() != grid.DirRight {
		t.Errorf("Heading() = %v, expected right", s.Heading())
	}

	s.Step(s.Advance(s.Dir, 20))
	if s.Heading() != grid.DirUp {
		t.Errorf("Heading() after moving = %v, expected up", s.Heading())
	}
	if !s.Turn(grid.DirLeft) {
		t.Error("turning left after moving up should be accepted")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSnake(Player2, grid.C(0, 0), grid.DirLeft)
	c := s.Clone()
	c.Grow(grid.C(20, 0))

	if s.Len() != 1 {
		t.Error("Clone should not share the body slice")
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		id   ID
		kind Kind
		name string
	}{
		{Player1, KindHuman, "player1"},
		{Player2, KindHuman, "player2"},
		{AI(0), KindAI, "ai1"},
		{AI(1), KindAI, "ai2"},
		{AI(11), KindAI, "ai12"},
		{AI(99), KindAI, "ai100"},
		{0, KindHuman, "unknown"},
	}

	for _, tc := range tests {
		if tc.id.Kind() != tc.kind {
			t.Errorf("%v.Kind() = %v, expected %v", tc.id, tc.id.Kind(), tc.kind)
		}
		if tc.id.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.id.String(), tc.name)
		}
	}
}
