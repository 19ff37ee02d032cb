package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

type Player interface {
	GetMove(p *isolation.Position) (isolation.Move, error)
}

type Glyphs struct {
	Open    string
	Blocked string
	Player1 string
	Player2 string
}

type CLI struct {
	moves []isolation.Move
	p     *isolation.Position

	Config  isolation.Config
	Initial *isolation.Position
	Glyphs  *Glyphs
	Out     io.Writer
	Player1 Player
	Player2 Player
}

var DefaultGlyphs = Glyphs{
	Open:    ".",
	Blocked: "#",
	Player1: "1",
	Player2: "2",
}

var UnicodeGlyphs = Glyphs{
	Open:    "·",
	Blocked: "▪",
	Player1: "♘",
	Player2: "♞",
}

// Play runs a game to the end and returns the final position. It stops
// early if a player fails to produce a move.
func (c *CLI) Play() (*isolation.Position, error) {
	c.moves = nil
	c.p = c.Initial
	if c.p == nil {
		c.p = isolation.New(c.Config)
	}
	g := c.p.Geometry()
	for {
		c.render()
		if w, over := c.p.Winner(); over {
			fmt.Fprintf(c.Out, "Game Over! %s wins after %d plies.\n", w, c.p.PlyCount())
			return c.p, nil
		}
		var (
			m   isolation.Move
			err error
		)
		if c.p.ToMove() == isolation.Player1 {
			m, err = c.Player1.GetMove(c.p)
		} else {
			m, err = c.Player2.GetMove(c.p)
		}
		if err != nil {
			return c.p, fmt.Errorf("%s: %w", c.p.ToMove(), err)
		}
		p, e := c.p.Result(m)
		if e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", c.p.PlyCount()+1, c.p.ToMove(), notation.FormatMove(g, m))
		c.p = p
		c.moves = append(c.moves, m)
	}
}

func (c *CLI) Moves() []isolation.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.p)
}

func RenderBoard(gl *Glyphs, out io.Writer, p *isolation.Position) {
	if gl == nil {
		gl = &DefaultGlyphs
	}
	g := p.Geometry()
	locs := p.Locations()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", p.ToMove())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for y := g.Height - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%d.\t", y+1)
		for x := 0; x < g.Width; x++ {
			c := g.XYToIndex(x, y)
			switch {
			case c == locs[isolation.Player1]:
				fmt.Fprintf(w, "%s\t", gl.Player1)
			case c == locs[isolation.Player2]:
				fmt.Fprintf(w, "%s\t", gl.Player2)
			case p.Blocked(c):
				fmt.Fprintf(w, "%s\t", gl.Blocked)
			default:
				fmt.Fprintf(w, "%s\t", gl.Open)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < g.Width; x++ {
		fmt.Fprintf(w, "%c\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "liberties: 1:%d 2:%d\n",
		len(p.Liberties(locs[isolation.Player1])),
		len(p.Liberties(locs[isolation.Player2])))
}
