package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(p *isolation.Position) (isolation.Move, error) {
	for {
		fmt.Fprintf(c.out, "%s> ", p.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		m, err := notation.ParseMove(p.Geometry(), strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return m, nil
	}
}
