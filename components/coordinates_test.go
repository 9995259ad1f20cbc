package components_test

import (
	"testing"

	. "github.com/LIAMBB/figure-moves/components"
)

func TestCoordinatesArithmetic(t *testing.T) {
	a := Coordinates{X: 3, Y: 4}
	b := Coordinates{X: 2, Y: 3}

	if got := a.Add(b); got != (Coordinates{X: 5, Y: 7}) {
		t.Errorf("Add: got %#v", got)
	}
	if got := a.Add(b).Sub(Coordinates{X: 5, Y: 0}); got != (Coordinates{X: 0, Y: 7}) {
		t.Errorf("Add then Sub: got %#v", got)
	}
	if got := b.Scale(-2); got != (Coordinates{X: -4, Y: -6}) {
		t.Errorf("Scale: got %#v", got)
	}
}

func TestCoordinatesInBounds(t *testing.T) {
	tests := []struct {
		name   string
		coord  Coordinates
		extent int
		want   bool
	}{
		{name: "origin", coord: Coordinates{X: 0, Y: 0}, extent: 8, want: true},
		{name: "far corner", coord: Coordinates{X: 7, Y: 7}, extent: 8, want: true},
		{name: "x equals extent", coord: Coordinates{X: 8, Y: 0}, extent: 8, want: false},
		{name: "negative y", coord: Coordinates{X: 0, Y: -1}, extent: 8, want: false},
		{name: "small board", coord: Coordinates{X: 4, Y: 4}, extent: 5, want: true},
		{name: "small board edge", coord: Coordinates{X: 5, Y: 4}, extent: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coord.InBounds(tt.extent); got != tt.want {
				t.Errorf("InBounds(%d) = %v, want %v", tt.extent, got, tt.want)
			}
		})
	}
}

func TestCoordinatesStringIsOneBased(t *testing.T) {
	if got := (Coordinates{X: 0, Y: 7}).String(); got != "(1, 8)" {
		t.Errorf("got %q", got)
	}
}
