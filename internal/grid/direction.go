package grid

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in neighbor order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for one cell of the given size.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta(cellSize int) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -cellSize
	case DirDown:
		return 0, cellSize
	case DirLeft:
		return -cellSize, 0
	case DirRight:
		return cellSize, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Step returns the cell one step from c in direction d.
func (c Cell) Step(d Direction, cellSize int) Cell {
	dx, dy := d.Delta(cellSize)
	return c.Add(dx, dy)
}

// DirectionTo returns the direction of a single step from one cell to an
// adjacent one. ok is false when the cells are not 4-adjacent.
func DirectionTo(from, to Cell) (d Direction, ok bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy < 0:
		return DirUp, true
	case dx == 0 && dy > 0:
		return DirDown, true
	case dy == 0 && dx < 0:
		return DirLeft, true
	case dy == 0 && dx > 0:
		return DirRight, true
	default:
		return 0, false
	}
}
