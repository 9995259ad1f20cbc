package components

import "golang.org/x/exp/slices"

// Figure is a piece standing on a Board. It keeps a reference to the board
// only to look up occupancy and to have its slot moved on a successful
// MoveTo.
type Figure struct {
	kind     Kind
	position Coordinates
	board    *Board
}

func (f *Figure) Kind() Kind {
	return f.kind
}

func (f *Figure) Position() Coordinates {
	return f.position
}

// MovesInBounds grounds every detached move of the figure's kind at its
// position and keeps those whose every step stays on the board. Occupancy
// is not considered.
func (f *Figure) MovesInBounds() []RelativeMove {
	var moves []RelativeMove
	for _, detached := range f.board.getter.For(f.kind) {
		move := detached.Ground(f.position)
		if slices.ContainsFunc(move.steps, func(step Coordinates) bool {
			return !f.board.IsWithinBounds(step)
		}) {
			continue
		}
		moves = append(moves, move)
	}
	return moves
}

// PossibleMoves returns the moves the figure can make right now: those in
// bounds whose path crosses no occupied cell. Occupied cells are never
// destinations, whoever stands on them.
func (f *Figure) PossibleMoves() []RelativeMove {
	var moves []RelativeMove
	for _, move := range f.MovesInBounds() {
		if !move.IsBlockedOn(f.board) {
			moves = append(moves, move)
		}
	}
	return moves
}

// Destinations returns the endpoints of PossibleMoves in the same order.
func (f *Figure) Destinations() []Coordinates {
	moves := f.PossibleMoves()
	destinations := make([]Coordinates, len(moves))
	for i, move := range moves {
		destinations[i] = move.EndPoint()
	}
	return destinations
}

// MoveTo moves the figure to destination if it is the endpoint of one of
// its possible moves. Otherwise nothing changes and false is returned.
func (f *Figure) MoveTo(destination Coordinates) bool {
	if !f.board.IsWithinBounds(destination) {
		return false
	}
	if !slices.ContainsFunc(f.PossibleMoves(), func(move RelativeMove) bool {
		return move.EndPoint() == destination
	}) {
		return false
	}
	f.board.relocate(f, destination)
	return true
}
