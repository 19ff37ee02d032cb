package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

var squareRE = regexp.MustCompile(`^([a-z])([1-9][0-9]?)$`)

// ParseSquare reads an algebraic square: the file letter is the
// column, starting at `a`, and the rank is the row, starting at 1.
func ParseSquare(g isolation.Geometry, s string) (isolation.Cell, error) {
	groups := squareRE.FindStringSubmatch(s)
	if groups == nil {
		return isolation.NoCell, fmt.Errorf("bad square: %q", s)
	}
	x := int(groups[1][0] - 'a')
	rank, _ := strconv.Atoi(groups[2])
	y := rank - 1
	if !g.Contains(x, y) {
		return isolation.NoCell, fmt.Errorf("square off board: %q", s)
	}
	return g.XYToIndex(x, y), nil
}

func FormatSquare(g isolation.Geometry, c isolation.Cell) string {
	if c == isolation.NoCell {
		return "-"
	}
	x, y := g.IndexToXY(c)
	return fmt.Sprintf("%c%d", 'a'+x, y+1)
}

func ParseMove(g isolation.Geometry, s string) (isolation.Move, error) {
	if s == "-" {
		return 0, errors.New("not a move: -")
	}
	c, err := ParseSquare(g, s)
	if err != nil {
		return 0, err
	}
	return isolation.Move(c), nil
}

func FormatMove(g isolation.Geometry, m isolation.Move) string {
	return FormatSquare(g, m.Cell())
}

func FormatMoves(g isolation.Geometry, ms []isolation.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = FormatMove(g, m)
	}
	return out
}
