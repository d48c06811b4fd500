// Package grid models the discretized Word Snake board.
// Cells are stored in board units: every coordinate is a multiple of the
// cell size, matching how the board is addressed by the rendering layer.
package grid

import "fmt"

// Cell is a grid-aligned board position.
// X increases to the right, Y increases downward (screen coordinates).
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell, in board units.
func (c Cell) Manhattan(other Cell) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	s.Add(cells...)
	return s
}

// Add inserts cells into the set.
func (s CellSet) Add(cells ...Cell) {
	for _, c := range cells {
		s[c] = struct{}{}
	}
}

// Has reports whether c is in the set. A nil set contains nothing.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Clone returns a copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}
