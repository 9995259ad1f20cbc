package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/LIAMBB/figure-moves/components"
	"github.com/LIAMBB/figure-moves/console"
	"github.com/LIAMBB/figure-moves/display"
	"github.com/LIAMBB/figure-moves/storage"
)

func main() {
	// Flags, with environment fallbacks
	size := flag.Int("size", getenvInt("FIGMOVES_SIZE", components.DefaultExtent), "board extent")
	dbPath := flag.String("db", getenv("FIGMOVES_DB", ""), "SQLite file for board states and moves (empty disables persistence)")
	demo := flag.Bool("demo", getenvBool("FIGMOVES_DEMO", true), "run the demonstration scenario")
	interactive := flag.Bool("interactive", getenvBool("FIGMOVES_INTERACTIVE", false), "start a console session afterwards")
	flag.Parse()

	board, err := components.NewBoard(*size)
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	var store *storage.Store
	if *dbPath != "" {
		store, err = storage.Open(*dbPath)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		defer store.Close()
		fmt.Printf("Recording board states in %s\n", *dbPath)
	}

	if *demo && board.Extent() < components.DefaultExtent {
		fmt.Printf("Demo needs a board of at least %dx%[1]d, skipping\n", components.DefaultExtent)
	} else if *demo {
		if err := runDemo(board); err != nil {
			log.Fatalf("demo: %v", err)
		}
	}

	if *interactive {
		session := console.New(board, store, os.Stdin, os.Stdout)
		if err := session.Run(); err != nil {
			log.Fatalf("console: %v", err)
		}
	}
}

// runDemo places a knight next to a rook, moves the knight out of the way
// and shows what both can do.
func runDemo(board *components.Board) error {
	knight, err := board.PlaceFigure(components.Knight, components.Coordinates{X: 6, Y: 3})
	if err != nil {
		return err
	}
	rook, err := board.PlaceFigure(components.Rook, components.Coordinates{X: 6, Y: 2})
	if err != nil {
		return err
	}

	if err := display.ShowPossibleMoves(os.Stdout, knight); err != nil {
		return err
	}
	destination := components.Coordinates{X: 7, Y: 5}
	if !knight.MoveTo(destination) {
		fmt.Printf("Knight could not move to %v\n", destination)
	}
	if err := display.ShowPossibleMoves(os.Stdout, rook); err != nil {
		return err
	}
	fmt.Println(display.RenderBoard(board, rook.Destinations()))
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v, err := strconv.Atoi(getenv(key, "")); err == nil {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(getenv(key, "")); err == nil {
		return v
	}
	return def
}
