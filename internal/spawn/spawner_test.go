package spawn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/grid"
)

func newTestSpawner(seed int64, cols, rows int) (*Spawner, grid.Bounds) {
	b := grid.NewBounds(cols, rows, 20)
	return New(b, rand.New(rand.NewSource(seed)), 0), b
}

func TestLettersDisjoint(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		s, b := newTestSpawner(seed, 10, 8)
		excluded := grid.NewCellSet(grid.C(0, 0), grid.C(20, 0), grid.C(40, 40), grid.C(100, 100))

		pickups, err := s.Letters("game", 3, excluded)
		if err != nil {
			t.Fatalf("seed %d: Letters() error = %v", seed, err)
		}
		if len(pickups) != 12 {
			t.Fatalf("seed %d: got %d pickups, expected 12", seed, len(pickups))
		}

		seen := make(grid.CellSet)
		for _, p := range pickups {
			if excluded.Has(p.Cell) {
				t.Fatalf("seed %d: pickup %v on excluded cell", seed, p)
			}
			if seen.Has(p.Cell) {
				t.Fatalf("seed %d: duplicate pickup cell %v", seed, p.Cell)
			}
			if !b.InBounds(p.Cell) {
				t.Fatalf("seed %d: pickup %v out of bounds", seed, p)
			}
			seen.Add(p.Cell)
		}
	}
}

func TestLettersUppercaseEveryLetter(t *testing.T) {
	s, _ := newTestSpawner(3, 10, 10)
	pickups, err := s.Letters("cat", 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []rune{'C', 'A', 'T'}
	for i, p := range pickups {
		if p.Char != want[i] {
			t.Errorf("pickup %d char = %q, expected %q", i, p.Char, want[i])
		}
	}
}

func TestLettersDoesNotMutateExcluded(t *testing.T) {
	s, _ := newTestSpawner(5, 6, 6)
	excluded := grid.NewCellSet(grid.C(0, 0))

	if _, err := s.Letters("dog", 2, excluded); err != nil {
		t.Fatal(err)
	}
	if len(excluded) != 1 {
		t.Errorf("excluded grew to %d cells", len(excluded))
	}
}

func TestObstaclesDisjointAndKinds(t *testing.T) {
	s, _ := newTestSpawner(11, 12, 12)
	excluded := grid.NewCellSet(grid.C(60, 60))
	kinds := []Kind{Water, Pit}

	obs, err := s.Obstacles(30, kinds, excluded)
	if err != nil {
		t.Fatalf("Obstacles() error = %v", err)
	}
	if len(obs) != 30 {
		t.Fatalf("got %d obstacles, expected 30", len(obs))
	}

	seen := make(grid.CellSet)
	for _, o := range obs {
		if excluded.Has(o.Cell) || seen.Has(o.Cell) {
			t.Fatalf("obstacle %v overlaps", o)
		}
		if o.Kind != Water && o.Kind != Pit {
			t.Fatalf("obstacle kind %v not in requested kinds", o.Kind)
		}
		seen.Add(o.Cell)
	}
}

func TestObstaclesZeroCount(t *testing.T) {
	s, _ := newTestSpawner(1, 4, 4)
	obs, err := s.Obstacles(0, AllKinds, nil)
	if err != nil || len(obs) != 0 {
		t.Errorf("Obstacles(0) = %v, %v", obs, err)
	}
}

func TestBoardFull(t *testing.T) {
	s, b := newTestSpawner(1, 2, 2)
	all := make(grid.CellSet)
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			all.Add(b.At(col, row))
		}
	}

	if _, err := s.Letters("a", 1, all); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Letters() on full board error = %v, expected ErrBoardFull", err)
	}
	if _, err := s.Obstacles(1, AllKinds, all); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Obstacles() on full board error = %v, expected ErrBoardFull", err)
	}
	// Four cells cannot hold five letters.
	if _, err := s.Letters("abcde", 1, nil); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Letters() overflow error = %v, expected ErrBoardFull", err)
	}
}

func TestFreeScansWhenSamplingMisses(t *testing.T) {
	b := grid.NewBounds(10, 10, 20)
	s := New(b, rand.New(rand.NewSource(3)), 1)
	last := b.At(9, 9)
	taken := make(grid.CellSet)
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if c := b.At(col, row); c != last {
				taken.Add(c)
			}
		}
	}

	for i := 0; i < 20; i++ {
		p, err := s.Letter('q', taken)
		if err != nil {
			t.Fatalf("Letter() with one free cell error = %v", err)
		}
		if p.Cell != last {
			t.Fatalf("Letter() = %v, expected the only free cell %v", p.Cell, last)
		}
	}

	taken.Add(last)
	if _, err := s.Letter('q', taken); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Letter() on full board error = %v, expected ErrBoardFull", err)
	}
}

func TestSafeCellScanKeepsMargin(t *testing.T) {
	b := grid.NewBounds(5, 5, 20)
	s := New(b, rand.New(rand.NewSource(5)), 1)
	center := b.At(2, 2)

	c, err := s.SafeCell(nil, 2)
	if err != nil || c != center {
		t.Fatalf("SafeCell() = %v, %v, expected %v", c, err, center)
	}
	taken := make(grid.CellSet)
	taken.Add(center)
	if _, err := s.SafeCell(taken, 2); !errors.Is(err, ErrBoardFull) {
		t.Errorf("SafeCell() with the margin area full error = %v, expected ErrBoardFull", err)
	}
}

func TestSafeCellMargin(t *testing.T) {
	s, b := newTestSpawner(8, 10, 10)
	for i := 0; i < 200; i++ {
		c, err := s.SafeCell(nil, 2)
		if err != nil {
			t.Fatal(err)
		}
		col, row := b.Index(c)
		if col < 2 || col > 7 || row < 2 || row > 7 {
			t.Fatalf("SafeCell() = %v outside margin", c)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range AllKinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("lava"); err == nil {
		t.Error("ParseKind(lava) should fail")
	}
}
