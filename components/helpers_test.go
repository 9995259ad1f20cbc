package components_test

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"

	. "github.com/LIAMBB/figure-moves/components"
)

func c(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func sorted(coords []Coordinates) []Coordinates {
	out := append([]Coordinates(nil), coords...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func sameCells(a, b []Coordinates) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = sorted(a), sorted(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newBoard(t *testing.T) *Board {
	t.Helper()
	board, err := NewBoard(DefaultExtent)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return board
}

func place(t *testing.T, board *Board, kind Kind, x, y int) *Figure {
	t.Helper()
	figure, err := board.PlaceFigure(kind, c(x, y))
	if err != nil {
		t.Fatalf("PlaceFigure(%v, %d, %d): %v", kind, x, y, err)
	}
	return figure
}

func assertDestinations(t *testing.T, figure *Figure, want []Coordinates) {
	t.Helper()
	got := figure.Destinations()
	if !sameCells(got, want) {
		t.Fatalf("%v at %v: destinations mismatch\ngot:  %s\nwant: %s",
			figure.Kind(), figure.Position(), spew.Sdump(sorted(got)), spew.Sdump(sorted(want)))
	}
}
