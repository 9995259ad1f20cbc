package components

var bishopDirections = []Coordinates{
	forward.Add(right),
	back.Add(right),
	back.Add(left),
	forward.Add(left),
}

func bishopMoves(extent int) []DetachedMove {
	return rayMoves(bishopDirections, extent)
}
