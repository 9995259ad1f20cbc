package components

import "fmt"

// Unit steps every template is composed of.
var (
	forward = Coordinates{X: 0, Y: 1}
	right   = Coordinates{X: 1, Y: 0}
	back    = Coordinates{X: 0, Y: -1}
	left    = Coordinates{X: -1, Y: 0}
)

// Getter hands out the detached moves of each kind. The tables depend only
// on the kind and the board extent, never on where figures stand, so one
// Getter serves every figure on boards of that extent.
type Getter struct {
	extent int
	moves  map[Kind][]DetachedMove
}

// NewGetter precomputes the move tables for boards of the given extent.
func NewGetter(extent int) *Getter {
	getter := &Getter{
		extent: extent,
		moves: map[Kind][]DetachedMove{
			Pawn:   pawnMoves(),
			Bishop: bishopMoves(extent),
			Knight: knightMoves(),
			Rook:   rookMoves(extent),
			Queen:  queenMoves(extent),
			King:   kingMoves(),
		},
	}
	return getter
}

func (g *Getter) Extent() int {
	return g.extent
}

// For returns the detached moves of kind. Asking for a kind outside the
// enumeration is a programming error and panics.
func (g *Getter) For(kind Kind) []DetachedMove {
	moves, ok := g.moves[kind]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownKind, kind))
	}
	out := make([]DetachedMove, len(moves))
	copy(out, moves)
	return out
}

// rayMoves builds, for every length from 1 to extent-1, one move per
// direction whose steps walk that many cells. Each move of length i is the
// move of length i-1 extended by a single step, so blocking can be decided
// per move.
func rayMoves(directions []Coordinates, extent int) []DetachedMove {
	var moves []DetachedMove
	for i := 1; i < extent; i++ {
		for _, direction := range directions {
			steps := make([]Coordinates, i)
			for n := 1; n <= i; n++ {
				steps[n-1] = direction.Scale(n)
			}
			moves = append(moves, MustDetachedMove(steps...))
		}
	}
	return moves
}

func singleStepMoves(offsets []Coordinates) []DetachedMove {
	moves := make([]DetachedMove, 0, len(offsets))
	for _, offset := range offsets {
		moves = append(moves, MustDetachedMove(offset))
	}
	return moves
}
