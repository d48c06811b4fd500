// Package spawn places letter pickups, obstacles and actors onto free cells.
package spawn

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/vovakirdan/wordsnake/internal/grid"
)

// ErrBoardFull is returned when no free cell was found within the attempt cap.
var ErrBoardFull = errors.New("spawn: board full")

// DefaultMaxAttempts caps rejection sampling for one placement.
const DefaultMaxAttempts = 1000

// Kind is an obstacle kind.
type Kind uint8

const (
	Water Kind = iota
	Fire
	Pit
	Eagle // mobile hazard
)

// AllKinds lists every obstacle kind in declaration order.
var AllKinds = []Kind{Water, Fire, Pit, Eagle}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Water:
		return "water"
	case Fire:
		return "fire"
	case Pit:
		return "pit"
	case Eagle:
		return "eagle"
	default:
		return "unknown"
	}
}

// ParseKind converts a config name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("spawn: unknown obstacle kind %q", s)
}

// Pickup is a letter lying on the board.
type Pickup struct {
	Cell grid.Cell `yaml:"cell"`
	Char rune      `yaml:"char"`
}

// Obstacle is a terrain cell or the mobile hazard.
type Obstacle struct {
	Cell grid.Cell `yaml:"cell"`
	Kind Kind      `yaml:"kind"`
}

// Spawner samples uniformly random free cells.
type Spawner struct {
	bounds      grid.Bounds
	rng         *rand.Rand
	maxAttempts int
}

// New creates a spawner. maxAttempts <= 0 selects DefaultMaxAttempts.
func New(b grid.Bounds, rng *rand.Rand, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Spawner{bounds: b, rng: rng, maxAttempts: maxAttempts}
}

// Letters places perLetter pickups for every letter of word. Pickup chars are
// uppercase. The returned cells are disjoint from excluded and from each other.
func (s *Spawner) Letters(word string, perLetter int, excluded grid.CellSet) ([]Pickup, error) {
	if perLetter < 1 {
		perLetter = 1
	}
	taken := excluded.Clone()
	out := make([]Pickup, 0, len(word)*perLetter)
	for _, ch := range word {
		for i := 0; i < perLetter; i++ {
			c, err := s.free(taken, 0)
			if err != nil {
				return nil, fmt.Errorf("spawn: letter %q: %w", ch, err)
			}
			taken.Add(c)
			out = append(out, Pickup{Cell: c, Char: unicode.ToUpper(ch)})
		}
	}
	return out, nil
}

// Letter places a single pickup for ch.
func (s *Spawner) Letter(ch rune, excluded grid.CellSet) (Pickup, error) {
	c, err := s.free(excluded, 0)
	if err != nil {
		return Pickup{}, fmt.Errorf("spawn: letter %q: %w", ch, err)
	}
	return Pickup{Cell: c, Char: unicode.ToUpper(ch)}, nil
}

// Obstacles places count obstacles, each of a kind drawn uniformly from kinds.
func (s *Spawner) Obstacles(count int, kinds []Kind, excluded grid.CellSet) ([]Obstacle, error) {
	if count <= 0 || len(kinds) == 0 {
		return nil, nil
	}
	taken := excluded.Clone()
	out := make([]Obstacle, 0, count)
	for len(out) < count {
		c, err := s.free(taken, 0)
		if err != nil {
			return nil, fmt.Errorf("spawn: obstacle %d of %d: %w", len(out)+1, count, err)
		}
		taken.Add(c)
		out = append(out, Obstacle{Cell: c, Kind: kinds[s.rng.Intn(len(kinds))]})
	}
	return out, nil
}

// SafeCell picks a free cell at least margin cells away from every edge.
func (s *Spawner) SafeCell(excluded grid.CellSet, margin int) (grid.Cell, error) {
	c, err := s.free(excluded, margin)
	if err != nil {
		return grid.Cell{}, fmt.Errorf("spawn: actor: %w", err)
	}
	return c, nil
}

// free draws up to maxAttempts random cells and takes the first one not in
// taken. When every draw hits a taken cell it scans the margin area for the
// remaining free cells and picks one of them, so ErrBoardFull means the area
// really is full.
func (s *Spawner) free(taken grid.CellSet, margin int) (grid.Cell, error) {
	for i := 0; i < s.maxAttempts; i++ {
		c := s.bounds.RandomCell(s.rng, margin)
		if !taken.Has(c) {
			return c, nil
		}
	}

	cols, rows := s.bounds.Cols(), s.bounds.Rows()
	if cols-2*margin <= 0 || rows-2*margin <= 0 {
		margin = 0
	}
	var open []grid.Cell
	for row := margin; row < rows-margin; row++ {
		for col := margin; col < cols-margin; col++ {
			if c := s.bounds.At(col, row); !taken.Has(c) {
				open = append(open, c)
			}
		}
	}
	if len(open) == 0 {
		return grid.Cell{}, ErrBoardFull
	}
	return open[s.rng.Intn(len(open))], nil
}
