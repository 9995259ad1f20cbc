package components_test

import (
	"errors"
	"testing"

	. "github.com/LIAMBB/figure-moves/components"
)

func TestNewDetachedMoveRejectsEmpty(t *testing.T) {
	if _, err := NewDetachedMove(); !errors.Is(err, ErrEmptyMove) {
		t.Fatalf("expected ErrEmptyMove, got %v", err)
	}
}

func TestMustDetachedMovePanicsOnEmpty(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyMove) {
			t.Fatalf("expected panic with ErrEmptyMove, got %v", r)
		}
	}()
	MustDetachedMove()
}

func TestDetachedMoveIsNotAliased(t *testing.T) {
	steps := []Coordinates{c(0, 1), c(0, 2)}
	move, err := NewDetachedMove(steps...)
	if err != nil {
		t.Fatal(err)
	}
	steps[1] = c(9, 9)
	move.Steps()[0] = c(9, 9)

	if move.EndPoint() != c(0, 2) || move.Steps()[0] != c(0, 1) {
		t.Fatalf("move changed through shared slices: %v", move.Steps())
	}
}

func TestGroundTranslatesEveryStep(t *testing.T) {
	move := MustDetachedMove(c(1, 1), c(2, 2), c(3, 3))
	grounded := move.Ground(c(2, 0))

	want := []Coordinates{c(3, 1), c(4, 2), c(5, 3)}
	got := grounded.Steps()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if grounded.Origin() != c(2, 0) || grounded.EndPoint() != c(5, 3) {
		t.Fatalf("origin %v endpoint %v", grounded.Origin(), grounded.EndPoint())
	}
	if got := grounded.String(); got != "(3, 1) => (6, 4)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestIsBlockedOnChecksWholePath(t *testing.T) {
	board := newBoard(t)
	place(t, board, Pawn, 0, 2)

	tests := []struct {
		name string
		move DetachedMove
		want bool
	}{
		{name: "short of blocker", move: MustDetachedMove(c(0, 1)), want: false},
		{name: "onto blocker", move: MustDetachedMove(c(0, 1), c(0, 2)), want: true},
		{name: "past blocker", move: MustDetachedMove(c(0, 1), c(0, 2), c(0, 3)), want: true},
		{name: "other file", move: MustDetachedMove(c(1, 1), c(2, 2)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.Ground(c(0, 0)).IsBlockedOn(board); got != tt.want {
				t.Errorf("IsBlockedOn = %v, want %v", got, tt.want)
			}
		})
	}
}
