package components

import (
	"fmt"
	"strings"
)

// Kind is the closed set of figures a board can hold.
type Kind int

const (
	Pawn Kind = iota
	Bishop
	Knight
	Rook
	Queen
	King
)

var kindNames = [...]string{
	Pawn:   "Pawn",
	Bishop: "Bishop",
	Knight: "Knight",
	Rook:   "Rook",
	Queen:  "Queen",
	King:   "King",
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{Pawn, Bishop, Knight, Rook, Queen, King}
}

func (k Kind) Valid() bool {
	return k >= Pawn && k <= King
}

// Sliding reports whether the kind moves along rays of any length.
func (k Kind) Sliding() bool {
	return k == Rook || k == Bishop || k == Queen
}

// Letter is the single-letter symbol used on board diagrams. Knight is N
// so it doesn't clash with King.
func (k Kind) Letter() string {
	switch k {
	case Knight:
		return "N"
	case Pawn, Bishop, Rook, Queen, King:
		return kindNames[k][:1]
	}
	return "?"
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts a kind name in any letter case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
