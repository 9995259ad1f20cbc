// Package display prints figures' moves and draws boards for people.
// Coordinates are shown 1-based.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LIAMBB/figure-moves/components"
)

// ShowPossibleMoves writes the figure's kind and position followed by one
// numbered line per possible move and a blank line.
func ShowPossibleMoves(w io.Writer, figure *components.Figure) error {
	if _, err := fmt.Fprintf(w, "%v : %v\n", figure.Kind(), figure.Position()); err != nil {
		return err
	}
	for i, move := range figure.PossibleMoves() {
		if _, err := fmt.Fprintf(w, "%d. %v\n", i+1, move); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

var (
	figureStyle    = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle     = lipgloss.NewStyle().Faint(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// RenderBoard draws the board with the highest row on top. Figures show
// their letter, highlighted cells a star, empty cells a dot.
func RenderBoard(board *components.Board, highlight []components.Coordinates) string {
	marked := make(map[components.Coordinates]bool, len(highlight))
	for _, cell := range highlight {
		marked[cell] = true
	}

	extent := board.Extent()
	width := len(fmt.Sprint(extent))
	var rows []string
	for y := extent - 1; y >= 0; y-- {
		var sb strings.Builder
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%*d", width, y+1)))
		for x := 0; x < extent; x++ {
			sb.WriteString(" ")
			sb.WriteString(cell(board, components.Coordinates{X: x, Y: y}, marked, width))
		}
		rows = append(rows, sb.String())
	}

	var footer strings.Builder
	footer.WriteString(strings.Repeat(" ", width))
	for x := 0; x < extent; x++ {
		footer.WriteString(" ")
		footer.WriteString(labelStyle.Render(fmt.Sprintf("%*d", width, x+1)))
	}
	rows = append(rows, footer.String())

	return frameStyle.Render(strings.Join(rows, "\n"))
}

func cell(board *components.Board, position components.Coordinates, marked map[components.Coordinates]bool, width int) string {
	pad := strings.Repeat(" ", width-1)
	figure, _ := board.FigureAt(position)
	switch {
	case figure != nil:
		return pad + figureStyle.Render(figure.Kind().Letter())
	case marked[position]:
		return pad + highlightStyle.Render("*")
	default:
		return pad + emptyStyle.Render(".")
	}
}
