// Package crosscheck recomputes sliding figures' destinations with
// dragontoothmg's magic bitboards and compares them with the figure's own
// answer.
package crosscheck

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/dylhunn/dragontoothmg"

	"github.com/LIAMBB/figure-moves/components"
)

var (
	ErrUnsupportedExtent = errors.New("bitboards only describe 8x8 boards")
	ErrNotSliding        = errors.New("only rooks, bishops and queens can be checked")
	ErrMismatch          = errors.New("destinations differ from the bitboard oracle")
)

const bitboardExtent = 8

// square maps x to the file and y to the rank, a1 being (0, 0).
func square(c components.Coordinates) uint8 {
	return uint8(c.Y*bitboardExtent + c.X)
}

func coordinates(sq int) components.Coordinates {
	return components.Coordinates{X: sq % bitboardExtent, Y: sq / bitboardExtent}
}

// Occupancy returns the bitboard of every occupied cell.
func Occupancy(board *components.Board) (uint64, error) {
	if board.Extent() != bitboardExtent {
		return 0, fmt.Errorf("%w: board is %dx%d", ErrUnsupportedExtent, board.Extent(), board.Extent())
	}
	var occupied uint64
	for _, figure := range board.Figures() {
		occupied |= 1 << square(figure.Position())
	}
	return occupied, nil
}

// SlidingDestinations returns the cells a sliding figure reaches according
// to the attack bitboards, minus occupied cells since nothing is captured.
// Cells are ordered by square index.
func SlidingDestinations(board *components.Board, figure *components.Figure) ([]components.Coordinates, error) {
	if !figure.Kind().Sliding() {
		return nil, fmt.Errorf("%w: got %v", ErrNotSliding, figure.Kind())
	}
	occupied, err := Occupancy(board)
	if err != nil {
		return nil, err
	}

	from := square(figure.Position())
	var attacks uint64
	if figure.Kind() == components.Rook || figure.Kind() == components.Queen {
		attacks |= dragontoothmg.CalculateRookMoveBitboard(from, occupied)
	}
	if figure.Kind() == components.Bishop || figure.Kind() == components.Queen {
		attacks |= dragontoothmg.CalculateBishopMoveBitboard(from, occupied)
	}
	attacks &^= occupied

	destinations := make([]components.Coordinates, 0, bits.OnesCount64(attacks))
	for attacks != 0 {
		sq := bits.TrailingZeros64(attacks)
		destinations = append(destinations, coordinates(sq))
		attacks &= attacks - 1
	}
	return destinations, nil
}

// Verify compares the figure's destinations with SlidingDestinations.
func Verify(board *components.Board, figure *components.Figure) error {
	want, err := SlidingDestinations(board, figure)
	if err != nil {
		return err
	}

	var got uint64
	for _, destination := range figure.Destinations() {
		got |= 1 << square(destination)
	}
	var expected uint64
	for _, destination := range want {
		expected |= 1 << square(destination)
	}
	if got != expected {
		return fmt.Errorf("%w: %v at %v, missing %v, extra %v", ErrMismatch, figure.Kind(), figure.Position(),
			cells(expected&^got), cells(got&^expected))
	}
	return nil
}

func cells(bb uint64) []components.Coordinates {
	var out []components.Coordinates
	for bb != 0 {
		out = append(out, coordinates(bits.TrailingZeros64(bb)))
		bb &= bb - 1
	}
	return out
}
