package components

func knightMoves() []DetachedMove {
	// Two cells along one axis, then one across it
	return singleStepMoves([]Coordinates{
		forward.Add(forward).Add(right),
		forward.Add(forward).Add(left),
		right.Add(right).Add(forward),
		right.Add(right).Add(back),
		back.Add(back).Add(right),
		back.Add(back).Add(left),
		left.Add(left).Add(forward),
		left.Add(left).Add(back),
	})
}
