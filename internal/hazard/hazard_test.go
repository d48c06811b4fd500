package hazard

import (
	"testing"

	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/spawn"
)

func TestTickMovesOnCadence(t *testing.T) {
	b := grid.NewBounds(10, 10, 20)
	h := New(5)
	h.Place(grid.C(0, 0))
	target := grid.C(180, 0)

	for tick := 1; tick <= 4; tick++ {
		if h.Tick(target, b) {
			t.Fatalf("tick %d: hazard moved before its cadence", tick)
		}
	}
	if !h.Tick(target, b) {
		t.Fatal("tick 5: hazard should move")
	}
	pos, _ := h.Pos()
	if pos != grid.C(20, 0) {
		t.Errorf("Pos = %v, expected (20,0)", pos)
	}

	for tick := 6; tick <= 10; tick++ {
		h.Tick(target, b)
	}
	if pos, _ := h.Pos(); pos != grid.C(40, 0) {
		t.Errorf("after 10 ticks Pos = %v, expected (40,0)", pos)
	}
}

func TestTickIgnoresOtherObstacles(t *testing.T) {
	// The only shortest route runs straight through cells a snake would
	// treat as blocked; the hazard takes it anyway.
	b := grid.NewBounds(3, 1, 20)
	h := New(1)
	h.Place(grid.C(0, 0))

	h.Tick(grid.C(40, 0), b)
	if pos, _ := h.Pos(); pos != grid.C(20, 0) {
		t.Errorf("Pos = %v, expected (20,0)", pos)
	}
	h.Tick(grid.C(40, 0), b)
	if pos, _ := h.Pos(); pos != grid.C(40, 0) {
		t.Errorf("Pos = %v, expected to reach target (40,0)", pos)
	}
}

func TestInactiveHazardDoesNothing(t *testing.T) {
	h := New(1)
	if h.Tick(grid.C(20, 0), grid.NewBounds(3, 3, 20)) {
		t.Error("inactive hazard should not move")
	}
	if _, ok := h.Pos(); ok {
		t.Error("new hazard should be inactive")
	}
}

func TestPlaceFromObstacles(t *testing.T) {
	h := New(0)
	if h.Every() != DefaultEvery {
		t.Errorf("Every = %d, expected default %d", h.Every(), DefaultEvery)
	}

	obs := []spawn.Obstacle{
		{Cell: grid.C(0, 0), Kind: spawn.Water},
		{Cell: grid.C(40, 20), Kind: spawn.Eagle},
		{Cell: grid.C(60, 20), Kind: spawn.Eagle},
	}
	if !h.PlaceFromObstacles(obs) {
		t.Fatal("expected hazard to be placed")
	}
	if pos, _ := h.Pos(); pos != grid.C(40, 20) {
		t.Errorf("Pos = %v, expected first eagle (40,20)", pos)
	}

	h.Place(grid.C(80, 80))
	h.Sync(obs)
	if obs[1].Cell != grid.C(80, 80) {
		t.Errorf("Sync did not update the eagle entry: %v", obs[1])
	}

	if h.PlaceFromObstacles(obs[:1]) {
		t.Error("no eagle should remove the hazard")
	}
	if _, ok := h.Pos(); ok {
		t.Error("hazard should be inactive")
	}
}
