// Package console runs a line-oriented session over a board: placing
// figures, listing and making moves, and saving or loading board states.
// Coordinates typed by the user are 1-based, like the ones printed.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"

	"github.com/LIAMBB/figure-moves/components"
	"github.com/LIAMBB/figure-moves/crosscheck"
	"github.com/LIAMBB/figure-moves/display"
	"github.com/LIAMBB/figure-moves/storage"
)

var (
	ErrUsage         = errors.New("usage")
	ErrNoFigure      = errors.New("no figure at that cell")
	ErrNoPersistence = errors.New("persistence is disabled, start with -db")
)

type command struct {
	args  int
	usage string
	run   func(s *Session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"place":   {args: 3, usage: "place <kind> <x> <y>", run: (*Session).place},
		"moves":   {args: 2, usage: "moves <x> <y>", run: (*Session).moves},
		"move":    {args: 4, usage: "move <x> <y> <tx> <ty>", run: (*Session).move},
		"board":   {args: 0, usage: "board", run: (*Session).showBoard},
		"verify":  {args: 2, usage: "verify <x> <y>", run: (*Session).verify},
		"save":    {args: 0, usage: "save", run: (*Session).save},
		"load":    {args: 1, usage: "load <id>", run: (*Session).load},
		"history": {args: 0, usage: "history", run: (*Session).history},
		"dump":    {args: 0, usage: "dump", run: (*Session).dump},
		"help":    {args: 0, usage: "help", run: (*Session).help},
	}
}

// Session drives one board. store may be nil.
type Session struct {
	board   *components.Board
	store   *storage.Store
	stateID int64 // id of the stored current state, 0 when not stored yet
	in      *bufio.Reader
	out     io.Writer
}

func New(board *components.Board, store *storage.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		board: board,
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

func (s *Session) Board() *components.Board {
	return s.board
}

// Run reads commands until "quit" or the end of input. Errors from single
// commands are printed and the session goes on.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return nil
		}
		if line != "" {
			if cmdErr := s.Execute(line); cmdErr != nil {
				fmt.Fprintf(s.out, "Error: %v\n", cmdErr)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// Execute runs a single command line.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
	if len(fields)-1 != cmd.args {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}
	return cmd.run(s, fields[1:])
}

// cell parses a pair of 1-based coordinates.
func cell(x, y string) (components.Coordinates, error) {
	cx, err := strconv.Atoi(x)
	if err != nil {
		return components.Coordinates{}, fmt.Errorf("invalid x %q", x)
	}
	cy, err := strconv.Atoi(y)
	if err != nil {
		return components.Coordinates{}, fmt.Errorf("invalid y %q", y)
	}
	return components.Coordinates{X: cx - 1, Y: cy - 1}, nil
}

func (s *Session) figureAt(x, y string) (*components.Figure, error) {
	position, err := cell(x, y)
	if err != nil {
		return nil, err
	}
	figure, err := s.board.FigureAt(position)
	if err != nil {
		return nil, err
	}
	if figure == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFigure, position)
	}
	return figure, nil
}

func (s *Session) place(args []string) error {
	kind, err := components.ParseKind(args[0])
	if err != nil {
		return err
	}
	position, err := cell(args[1], args[2])
	if err != nil {
		return err
	}
	if _, err := s.board.PlaceFigure(kind, position); err != nil {
		return err
	}
	s.stateID = 0
	fmt.Fprintf(s.out, "Placed %v at %v\n", kind, position)
	return nil
}

func (s *Session) moves(args []string) error {
	figure, err := s.figureAt(args[0], args[1])
	if err != nil {
		return err
	}
	if err := display.ShowPossibleMoves(s.out, figure); err != nil {
		return err
	}
	fmt.Fprintln(s.out, display.RenderBoard(s.board, figure.Destinations()))
	return nil
}

func (s *Session) move(args []string) error {
	figure, err := s.figureAt(args[0], args[1])
	if err != nil {
		return err
	}
	destination, err := cell(args[2], args[3])
	if err != nil {
		return err
	}

	from := figure.Position()
	var stateID int64
	if s.store != nil {
		if stateID, err = s.currentState(); err != nil {
			return err
		}
	}

	accepted := figure.MoveTo(destination)
	if s.store != nil {
		if err := s.store.RecordMove(stateID, figure.Kind(), from, destination, accepted); err != nil {
			return err
		}
	}
	if !accepted {
		fmt.Fprintf(s.out, "%v can't move from %v to %v\n", figure.Kind(), from, destination)
		return nil
	}
	s.stateID = 0
	fmt.Fprintf(s.out, "%v moved from %v to %v\n", figure.Kind(), from, destination)
	return nil
}

func (s *Session) showBoard([]string) error {
	fmt.Fprintln(s.out, display.RenderBoard(s.board, nil))
	return nil
}

func (s *Session) verify(args []string) error {
	figure, err := s.figureAt(args[0], args[1])
	if err != nil {
		return err
	}
	if err := crosscheck.Verify(s.board, figure); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%v at %v agrees with the bitboard oracle\n", figure.Kind(), figure.Position())
	return nil
}

func (s *Session) currentState() (int64, error) {
	if s.stateID != 0 {
		return s.stateID, nil
	}
	id, err := s.store.SaveBoardState(s.board.Snapshot())
	if err != nil {
		return 0, err
	}
	s.stateID = id
	return id, nil
}

func (s *Session) save([]string) error {
	if s.store == nil {
		return ErrNoPersistence
	}
	id, err := s.currentState()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved board state %d\n", id)
	return nil
}

func (s *Session) load(args []string) error {
	if s.store == nil {
		return ErrNoPersistence
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	snapshot, err := s.store.BoardState(id)
	if err != nil {
		return err
	}
	board, err := components.Restore(snapshot)
	if err != nil {
		return err
	}
	s.board = board
	s.stateID = id
	fmt.Fprintf(s.out, "Loaded board state %d\n", id)
	return nil
}

func (s *Session) history([]string) error {
	if s.store == nil {
		return ErrNoPersistence
	}
	id, err := s.currentState()
	if err != nil {
		return err
	}
	records, err := s.store.Moves(id)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(s.out, "No moves recorded for state %d\n", id)
		return nil
	}
	for i, record := range records {
		verdict := "rejected"
		if record.Accepted {
			verdict = "accepted"
		}
		fmt.Fprintf(s.out, "%d. %s %v => %v %s\n", i+1, record.Kind, record.From, record.To, verdict)
	}
	return nil
}

func (s *Session) dump([]string) error {
	spew.Fdump(s.out, s.board.Snapshot())
	return nil
}

func (s *Session) help([]string) error {
	var lines []string
	for _, cmd := range commands {
		lines = append(lines, "  "+cmd.usage)
	}
	slices.Sort(lines)
	fmt.Fprintln(s.out, "Commands (coordinates start at 1):")
	fmt.Fprintln(s.out, strings.Join(lines, "\n"))
	fmt.Fprintln(s.out, "  quit")
	return nil
}
