package grid

import "math/rand"

// Bounds describes the board extent in board units.
// Width and Height are exclusive upper limits; CellSize is the grid step.
type Bounds struct {
	Width    int
	Height   int
	CellSize int
}

// NewBounds creates bounds for a board of cols x rows cells.
func NewBounds(cols, rows, cellSize int) Bounds {
	return Bounds{Width: cols * cellSize, Height: rows * cellSize, CellSize: cellSize}
}

// Cols returns the number of cell columns.
func (b Bounds) Cols() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Width / b.CellSize
}

// Rows returns the number of cell rows.
func (b Bounds) Rows() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Height / b.CellSize
}

// CellCount returns the number of cells on the board.
func (b Bounds) CellCount() int {
	return b.Cols() * b.Rows()
}

// ToCell snaps a pixel position down to the cell containing it.
func (b Bounds) ToCell(px, py int) Cell {
	return Cell{X: snap(px, b.CellSize), Y: snap(py, b.CellSize)}
}

// InBounds returns true if the cell lies on the board.
func (b Bounds) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Neighbors returns the four cells adjacent to c in the fixed order
// up, down, left, right. Search tie-breaking depends on this order.
// Cells outside the board are included; callers filter with InBounds.
func (b Bounds) Neighbors(c Cell) [4]Cell {
	s := b.CellSize
	return [4]Cell{
		{X: c.X, Y: c.Y - s},
		{X: c.X, Y: c.Y + s},
		{X: c.X - s, Y: c.Y},
		{X: c.X + s, Y: c.Y},
	}
}

// Index converts a cell to its column and row.
func (b Bounds) Index(c Cell) (col, row int) {
	return c.X / b.CellSize, c.Y / b.CellSize
}

// At returns the cell at the given column and row.
func (b Bounds) At(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}

// RandomCell returns a uniformly random cell at least margin cells away from
// every edge. A margin that leaves no room falls back to the whole board.
func (b Bounds) RandomCell(rng *rand.Rand, margin int) Cell {
	cols, rows := b.Cols(), b.Rows()
	if cols-2*margin <= 0 || rows-2*margin <= 0 {
		margin = 0
	}
	col := margin + rng.Intn(cols-2*margin)
	row := margin + rng.Intn(rows-2*margin)
	return b.At(col, row)
}

// snap rounds v down to a multiple of step, also for negative values.
func snap(v, step int) int {
	if step <= 0 {
		return v
	}
	q := v / step
	if v < 0 && v%step != 0 {
		q--
	}
	return q * step
}
