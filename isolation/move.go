package isolation

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Move is the destination cell of the player to move.
type Move Cell

func (m Move) Cell() Cell {
	return Cell(m)
}

var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Actions returns the legal moves for the player to move, in
// increasing cell order.
func (p *Position) Actions() []Move {
	libs := p.Liberties(p.Location(p.ToMove()))
	moves := make([]Move, len(libs))
	for i, c := range libs {
		moves[i] = Move(c)
	}
	slices.Sort(moves)
	return moves
}

func (p *Position) IsLegal(m Move) bool {
	c := Cell(m)
	if !p.Geometry().Valid(c) || p.blocked.Has(int(c)) {
		return false
	}
	from := p.Location(p.ToMove())
	if from == NoCell {
		return true
	}
	return slices.Contains(p.cfg.knight[from], c)
}

// Result returns the position after m. The receiver is unchanged.
func (p *Position) Result(m Move) (*Position, error) {
	if !p.IsLegal(m) {
		return nil, fmt.Errorf("%w: %s to cell %d at ply %d", ErrIllegalMove, p.ToMove(), m, p.ply)
	}
	next := *p
	next.blocked = next.blocked.With(int(m))
	next.locs[p.ToMove()] = Cell(m)
	next.ply++
	return &next, nil
}
