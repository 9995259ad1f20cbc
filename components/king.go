package components

func kingMoves() []DetachedMove {
	// One step in each compass direction, clockwise from forward
	return singleStepMoves([]Coordinates{
		forward,
		forward.Add(right),
		right,
		back.Add(right),
		back,
		back.Add(left),
		left,
		forward.Add(left),
	})
}
