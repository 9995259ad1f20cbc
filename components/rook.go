package components

var rookDirections = []Coordinates{
	forward,
	right,
	back,
	left,
}

func rookMoves(extent int) []DetachedMove {
	return rayMoves(rookDirections, extent)
}
