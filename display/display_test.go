package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LIAMBB/figure-moves/components"
	"github.com/LIAMBB/figure-moves/display"
)

func TestShowPossibleMoves(t *testing.T) {
	board, err := components.NewBoard(components.DefaultExtent)
	if err != nil {
		t.Fatal(err)
	}
	king, err := board.PlaceFigure(components.King, components.Coordinates{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := display.ShowPossibleMoves(&buf, king); err != nil {
		t.Fatal(err)
	}

	want := "King : (1, 1)\n" +
		"1. (1, 1) => (1, 2)\n" +
		"2. (1, 1) => (2, 2)\n" +
		"3. (1, 1) => (2, 1)\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBoard(t *testing.T) {
	board, err := components.NewBoard(3)
	if err != nil {
		t.Fatal(err)
	}
	rook, err := board.PlaceFigure(components.Rook, components.Coordinates{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := board.PlaceFigure(components.Knight, components.Coordinates{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}

	out := display.RenderBoard(board, rook.Destinations())
	for _, want := range []string{"R", "N", "*", "."} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered board lacks %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "*"); got != 4 {
		t.Errorf("expected 4 highlighted cells, got %d:\n%s", got, out)
	}
}
