package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

func endgame(t *testing.T) *isolation.Position {
	t.Helper()
	g := isolation.Geometry{Width: 5, Height: 5}
	open := map[isolation.Cell]bool{
		g.XYToIndex(1, 2): true,
		g.XYToIndex(2, 1): true,
		g.XYToIndex(3, 2): true,
		g.XYToIndex(2, 3): true,
	}
	var blocked []isolation.Cell
	for c := isolation.Cell(0); int(c) < g.Cells(); c++ {
		if !open[c] {
			blocked = append(blocked, c)
		}
	}
	p, err := isolation.FromCells(isolation.Config{Width: 5, Height: 5}, blocked,
		[2]isolation.Cell{g.XYToIndex(0, 0), g.XYToIndex(4, 4)}, 2)
	require.NoError(t, err)
	return p
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Initial: endgame(t),
		Out:     &out,
		Player1: NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("zz\na5\nb3\n"))),
		Player2: NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("d3\n"))),
	}
	p, err := c.Play()
	require.NoError(t, err)
	assert.True(t, p.IsTerminal())
	assert.Equal(t, []isolation.Move{11, 13}, c.Moves())
	assert.Contains(t, out.String(), "parse error")
	assert.Contains(t, out.String(), "illegal move")
	assert.Contains(t, out.String(), "Game Over! player2 wins after 4 plies.")
}

type failing struct{}

func (failing) GetMove(*isolation.Position) (isolation.Move, error) {
	return 0, errors.New("resigned")
}

func TestPlayPlayerError(t *testing.T) {
	c := &CLI{
		Initial: endgame(t),
		Out:     &bytes.Buffer{},
		Player1: failing{},
		Player2: failing{},
	}
	_, err := c.Play()
	assert.ErrorContains(t, err, "resigned")
}

func TestRenderBoard(t *testing.T) {
	var out bytes.Buffer
	RenderBoard(nil, &out, endgame(t))
	s := out.String()
	assert.Contains(t, s, "[player1 to play]")
	assert.Contains(t, s, "liberties: 1:2 2:2")
	lines := strings.Split(strings.TrimSpace(s), "\n")
	// header, five ranks, file letters, liberties
	assert.Len(t, lines, 8)
	assert.Equal(t, "1. 1 # # # #", strings.TrimSpace(lines[5]))
}
