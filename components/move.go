package components

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DetachedMove is one candidate move described as cumulative offsets from an
// unspecified origin. It is not bound to any board or figure, so a single
// value is shared by every figure of a kind. The last step is the endpoint.
type DetachedMove struct {
	steps []Coordinates
}

// NewDetachedMove builds a move from its steps. At least one step is required.
func NewDetachedMove(steps ...Coordinates) (DetachedMove, error) {
	if len(steps) == 0 {
		return DetachedMove{}, ErrEmptyMove
	}
	return DetachedMove{steps: slices.Clone(steps)}, nil
}

// MustDetachedMove is like NewDetachedMove but panics on an empty step list.
// The catalog uses it for its fixed tables.
func MustDetachedMove(steps ...Coordinates) DetachedMove {
	move, err := NewDetachedMove(steps...)
	if err != nil {
		panic(err)
	}
	return move
}

// Steps returns a copy of the offsets in order.
func (m DetachedMove) Steps() []Coordinates {
	return slices.Clone(m.steps)
}

func (m DetachedMove) Len() int {
	return len(m.steps)
}

func (m DetachedMove) EndPoint() Coordinates {
	return m.steps[len(m.steps)-1]
}

// Ground translates every step by origin. It does not check bounds.
func (m DetachedMove) Ground(origin Coordinates) RelativeMove {
	steps := make([]Coordinates, len(m.steps))
	for i, step := range m.steps {
		steps[i] = origin.Add(step)
	}
	return RelativeMove{origin: origin, steps: steps}
}

// RelativeMove is a DetachedMove grounded at a figure's position: its steps
// are absolute board cells, not including the origin itself.
type RelativeMove struct {
	origin Coordinates
	steps  []Coordinates
}

func (m RelativeMove) Origin() Coordinates {
	return m.origin
}

func (m RelativeMove) EndPoint() Coordinates {
	return m.steps[len(m.steps)-1]
}

func (m RelativeMove) Steps() []Coordinates {
	return slices.Clone(m.steps)
}

// IsBlockedOn reports whether any cell along the path is occupied, the
// endpoint included. Cells off the board count as blocking.
func (m RelativeMove) IsBlockedOn(board *Board) bool {
	return slices.ContainsFunc(m.steps, func(step Coordinates) bool {
		occupied, err := board.CellIsOccupied(step)
		return err != nil || occupied
	})
}

func (m RelativeMove) String() string {
	return fmt.Sprintf("%v => %v", m.origin, m.EndPoint())
}
