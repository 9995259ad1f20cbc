package components

import "fmt"

// FigureState describes one figure of a Snapshot.
type FigureState struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Snapshot is a serialisable description of a board and the figures on it.
type Snapshot struct {
	Extent  int           `json:"extent"`
	Figures []FigureState `json:"figures"`
}

func (cb *Board) Snapshot() Snapshot {
	snapshot := Snapshot{Extent: cb.extent, Figures: []FigureState{}}
	for _, figure := range cb.Figures() {
		snapshot.Figures = append(snapshot.Figures, FigureState{
			Kind: figure.kind.String(),
			X:    figure.position.X,
			Y:    figure.position.Y,
		})
	}
	return snapshot
}

// Restore builds a fresh board from snapshot, placing figures in order.
func Restore(snapshot Snapshot) (*Board, error) {
	board, err := NewBoard(snapshot.Extent)
	if err != nil {
		return nil, err
	}
	for i, state := range snapshot.Figures {
		kind, err := ParseKind(state.Kind)
		if err != nil {
			return nil, fmt.Errorf("figure %d: %w", i, err)
		}
		if _, err := board.PlaceFigure(kind, Coordinates{X: state.X, Y: state.Y}); err != nil {
			return nil, fmt.Errorf("figure %d: %w", i, err)
		}
	}
	return board, nil
}
