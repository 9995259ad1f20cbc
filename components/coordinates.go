package components

import "fmt"

// Coordinates is a cell on the board, or an offset between two cells.
// Storage is 0-indexed; String renders 1-indexed for people.
type Coordinates struct {
	X int
	Y int
}

func (c Coordinates) Add(other Coordinates) Coordinates {
	return Coordinates{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coordinates) Sub(other Coordinates) Coordinates {
	return Coordinates{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale multiplies both components by n.
func (c Coordinates) Scale(n int) Coordinates {
	return Coordinates{X: c.X * n, Y: c.Y * n}
}

// InBounds reports whether c lies on a board of the given extent.
func (c Coordinates) InBounds(extent int) bool {
	return c.X >= 0 && c.X < extent && c.Y >= 0 && c.Y < extent
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X+1, c.Y+1)
}
