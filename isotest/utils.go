package isotest

import (
	"strings"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

func Move(s string) isolation.Move {
	m, e := notation.ParseMove(isolation.DefaultGeometry, s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []isolation.Move {
	if s == "" {
		return nil
	}
	bits := strings.Split(s, " ")
	var ms []isolation.Move
	for _, b := range bits {
		ms = append(ms, Move(b))
	}
	return ms
}

func FormatMoves(ms []isolation.Move) string {
	return strings.Join(notation.FormatMoves(isolation.DefaultGeometry, ms), " ")
}

// Position plays ms from the empty default board.
func Position(ms string) *isolation.Position {
	p := isolation.New(isolation.Config{})
	var e error
	for _, m := range Moves(ms) {
		p, e = p.Result(m)
		if e != nil {
			panic(e)
		}
	}
	return p
}

func IPN(s string) *isolation.Position {
	p, e := notation.ParseIPN(s)
	if e != nil {
		panic(e)
	}
	return p
}

// Cell converts an (x, y) pair on the default board.
func Cell(x, y int) isolation.Cell {
	return isolation.DefaultGeometry.XYToIndex(x, y)
}
