package isolation

import (
	"errors"
	"fmt"

	"github.com/LuisKeys/isolation-adversarial-search/bitboard"
)

const (
	DefaultWidth  = 11
	DefaultHeight = 9
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrBadPosition = errors.New("malformed position")
)

type Config struct {
	Width  int
	Height int

	c      bitboard.Constants
	knight [][]Cell
}

func (c *Config) Geometry() Geometry {
	return Geometry{Width: c.Width, Height: c.Height}
}

func (c *Config) precompute() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	c.c = bitboard.Precompute(uint(c.Width), uint(c.Height))
	g := c.Geometry()
	c.knight = make([][]Cell, g.Cells())
	for i := range c.knight {
		x, y := g.IndexToXY(Cell(i))
		for _, d := range knightSteps {
			if g.Contains(x+d[0], y+d[1]) {
				c.knight[i] = append(c.knight[i], g.XYToIndex(x+d[0], y+d[1]))
			}
		}
	}
}

// Player identifies a token. Player1 moves on even plies.
type Player int8

const (
	Player1 Player = 0
	Player2 Player = 1
)

func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return fmt.Sprintf("Player(%d)", int8(p))
}

func New(cfg Config) *Position {
	cfg.precompute()
	return &Position{
		cfg:  &cfg,
		locs: [2]Cell{NoCell, NoCell},
	}
}

// Position is an immutable snapshot of a game. Every cell a token has
// ever occupied, including the current locations, is blocked.
type Position struct {
	cfg     *Config
	ply     int
	blocked bitboard.Set
	locs    [2]Cell
}

// FromCells builds a position from its blocked cells, the token
// locations and the number of plies played. Locations are blocked
// implicitly.
func FromCells(cfg Config, blocked []Cell, locs [2]Cell, ply int) (*Position, error) {
	p := New(cfg)
	g := p.Geometry()
	if ply < 0 {
		return nil, fmt.Errorf("%w: negative ply %d", ErrBadPosition, ply)
	}
	for _, c := range blocked {
		if !g.Valid(c) {
			return nil, fmt.Errorf("%w: cell %d off board", ErrBadPosition, c)
		}
		p.blocked = p.blocked.With(int(c))
	}
	for i, c := range locs {
		pl := Player(i)
		switch {
		case c == NoCell:
			if ply > int(pl) {
				return nil, fmt.Errorf("%w: %s unplaced at ply %d", ErrBadPosition, pl, ply)
			}
		case !g.Valid(c):
			return nil, fmt.Errorf("%w: %s at cell %d off board", ErrBadPosition, pl, c)
		default:
			p.blocked = p.blocked.With(int(c))
		}
	}
	if locs[0] != NoCell && locs[0] == locs[1] {
		return nil, fmt.Errorf("%w: tokens share cell %d", ErrBadPosition, locs[0])
	}
	p.locs = locs
	p.ply = ply
	return p, nil
}

func (p *Position) Geometry() Geometry {
	return p.cfg.Geometry()
}

func (p *Position) PlyCount() int {
	return p.ply
}

func (p *Position) ToMove() Player {
	return Player(p.ply % 2)
}

func (p *Position) Locations() [2]Cell {
	return p.locs
}

func (p *Position) Location(pl Player) Cell {
	return p.locs[pl]
}

func (p *Position) Blocked(c Cell) bool {
	return p.blocked.Has(int(c))
}

// Open returns every cell no token has visited.
func (p *Position) Open() []Cell {
	return toCells(p.cfg.c.Mask.AndNot(p.blocked))
}

// Liberties returns the open cells reachable in one move from c. An
// unplaced token (NoCell) may go to any open cell.
func (p *Position) Liberties(c Cell) []Cell {
	if c == NoCell {
		return p.Open()
	}
	var out []Cell
	for _, n := range p.cfg.knight[c] {
		if !p.blocked.Has(int(n)) {
			out = append(out, n)
		}
	}
	return out
}

func (p *Position) hasLiberties(c Cell) bool {
	if c == NoCell {
		return p.blocked != p.cfg.c.Mask
	}
	for _, n := range p.cfg.knight[c] {
		if !p.blocked.Has(int(n)) {
			return true
		}
	}
	return false
}

func (p *Position) IsTerminal() bool {
	return !p.hasLiberties(p.Location(p.ToMove()))
}

// Utility is +1 if pl has won, -1 if pl has lost and 0 while the game
// is still running.
func (p *Position) Utility(pl Player) int {
	if !p.IsTerminal() {
		return 0
	}
	if pl == p.ToMove() {
		return -1
	}
	return 1
}

// Winner reports the winner of a finished game.
func (p *Position) Winner() (Player, bool) {
	if !p.IsTerminal() {
		return Player1, false
	}
	return p.ToMove().Other(), true
}

// Swap returns the player-swapped mirror of p: the tokens trade places
// and the other side is to move.
func (p *Position) Swap() *Position {
	return &Position{
		cfg:     p.cfg,
		ply:     p.ply ^ 1,
		blocked: p.blocked,
		locs:    [2]Cell{p.locs[1], p.locs[0]},
	}
}

// Mirror reflects the board left to right.
func (p *Position) Mirror() *Position {
	g := p.Geometry()
	next := &Position{cfg: p.cfg, ply: p.ply, locs: p.locs}
	for _, c := range toCells(p.blocked) {
		next.blocked = next.blocked.With(int(g.MirrorX(c)))
	}
	for i, c := range p.locs {
		if c != NoCell {
			next.locs[i] = g.MirrorX(c)
		}
	}
	return next
}

func (p *Position) Equal(o *Position) bool {
	return p.Geometry() == o.Geometry() &&
		p.ply == o.ply &&
		p.blocked == o.blocked &&
		p.locs == o.locs
}

func toCells(s bitboard.Set) []Cell {
	var buf [bitboard.MaxCells]int
	idx := s.Cells(buf[:0])
	out := make([]Cell, len(idx))
	for i, c := range idx {
		out[i] = Cell(c)
	}
	return out
}
