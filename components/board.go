package components

import "fmt"

// DefaultExtent is the side length of a regular chess board.
const DefaultExtent = 8

// Board is a square grid of cells, each empty or holding one figure whose
// position equals the cell. Figures are only created through PlaceFigure.
type Board struct {
	extent int
	cells  [][]*Figure // indexed [y][x]
	getter *Getter
}

// NewBoard returns an empty extent x extent board.
func NewBoard(extent int) (*Board, error) {
	if extent < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, extent)
	}

	board := &Board{
		extent: extent,
		cells:  make([][]*Figure, extent),
		getter: NewGetter(extent),
	}
	for y := range board.cells {
		board.cells[y] = make([]*Figure, extent)
	}
	return board, nil
}

func (cb *Board) Extent() int {
	return cb.extent
}

func (cb *Board) IsWithinBounds(position Coordinates) bool {
	return position.InBounds(cb.extent)
}

// PlaceFigure creates a figure of kind at position and puts it on the board.
func (cb *Board) PlaceFigure(kind Kind, position Coordinates) (*Figure, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	occupied, err := cb.CellIsOccupied(position)
	if err != nil {
		return nil, fmt.Errorf("figure can't be placed outside the board: %w", err)
	}
	if occupied {
		return nil, fmt.Errorf("%w: two figures can't share %v", ErrOccupiedCell, position)
	}

	figure := &Figure{kind: kind, position: position, board: cb}
	cb.cells[position.Y][position.X] = figure
	return figure, nil
}

// CellIsOccupied reports whether a figure stands at position.
func (cb *Board) CellIsOccupied(position Coordinates) (bool, error) {
	figure, err := cb.FigureAt(position)
	if err != nil {
		return false, err
	}
	return figure != nil, nil
}

// FigureAt returns the figure at position, or nil if the cell is empty.
func (cb *Board) FigureAt(position Coordinates) (*Figure, error) {
	if !cb.IsWithinBounds(position) {
		return nil, fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, position, cb.extent, cb.extent)
	}
	return cb.cells[position.Y][position.X], nil
}

// Figures lists the figures row by row, starting from y = 0.
func (cb *Board) Figures() []*Figure {
	var figures []*Figure
	for y := 0; y < cb.extent; y++ {
		for x := 0; x < cb.extent; x++ {
			if figure := cb.cells[y][x]; figure != nil {
				figures = append(figures, figure)
			}
		}
	}
	return figures
}

// relocate moves figure's slot to the cell at to. Callers have already
// checked that to is on the board and empty.
func (cb *Board) relocate(figure *Figure, to Coordinates) {
	from := figure.position
	cb.cells[from.Y][from.X] = nil
	cb.cells[to.Y][to.X] = figure
	figure.position = to
}
