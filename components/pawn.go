package components

// Pawns only ever step forward one cell. No double step, no captures.
func pawnMoves() []DetachedMove {
	return singleStepMoves([]Coordinates{forward})
}
