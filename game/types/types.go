package types

// Board and timing defaults
const (
	DefaultSize     = 27 // Side length of the square board
	DefaultTickRate = 8  // Ticks per second
)

// Cell is a board coordinate, 0 <= X,Y < size
type Cell struct {
	X, Y int
}

// Center returns the starting cell of a board of the given size
func Center(size int) Cell {
	return Cell{X: (size - 1) / 2, Y: (size - 1) / 2}
}

// InBounds reports whether the cell lies on a board of the given size
func (c Cell) InBounds(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Direction is a cardinal direction. None only appears in the pending buffer.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four committed directions in clockwise order
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Valid reports whether d is one of the four committed directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// Neighbor returns the adjacent cell in direction d. Moving off the board is
// clamped: the coordinate on that axis stays unchanged.
func Neighbor(c Cell, d Direction, size int) Cell {
	switch d {
	case Up:
		if c.Y == 0 {
			return c
		}
		return Cell{X: c.X, Y: c.Y - 1}
	case Down:
		if c.Y == size-1 {
			return c
		}
		return Cell{X: c.X, Y: c.Y + 1}
	case Left:
		if c.X == 0 {
			return c
		}
		return Cell{X: c.X - 1, Y: c.Y}
	case Right:
		if c.X == size-1 {
			return c
		}
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

// Grid represents the board dimensions
type Grid struct {
	Size int
}

// Cells returns every cell of the board, x outer and y inner
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size*g.Size)
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Neighbor is Neighbor bound to this grid's size
func (g Grid) Neighbor(c Cell, d Direction) Cell {
	return Neighbor(c, d, g.Size)
}
