package components

// The queen moves like a rook and a bishop combined.
func queenMoves(extent int) []DetachedMove {
	moves := rookMoves(extent)
	return append(moves, bishopMoves(extent)...)
}
