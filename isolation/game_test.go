package isolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateRoundTrip(t *testing.T) {
	for _, g := range []Geometry{DefaultGeometry, {Width: 7, Height: 7}, {Width: 5, Height: 3}} {
		for i := 0; i < g.Cells(); i++ {
			x, y := g.IndexToXY(Cell(i))
			require.True(t, g.Contains(x, y), "cell %d -> (%d,%d)", i, x, y)
			assert.Equal(t, Cell(i), g.XYToIndex(x, y), "geometry %+v", g)
		}
	}
	assert.Equal(t, Cell(49), DefaultGeometry.Center())
}

func TestOpeningActions(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, 0, p.PlyCount())
	assert.Equal(t, Player1, p.ToMove())
	assert.Len(t, p.Actions(), 99)
	assert.False(t, p.IsTerminal())
	assert.Equal(t, 0, p.Utility(Player1))

	next, err := p.Result(Move(49))
	require.NoError(t, err)
	assert.Equal(t, 1, next.PlyCount())
	assert.Equal(t, Player2, next.ToMove())
	assert.Len(t, next.Actions(), 98)
	assert.NotContains(t, next.Actions(), Move(49))

	// the receiver is untouched
	assert.Equal(t, 0, p.PlyCount())
	assert.Equal(t, NoCell, p.Location(Player1))
	assert.False(t, p.Blocked(49))
}

func TestKnightMoves(t *testing.T) {
	g := DefaultGeometry
	p, err := FromCells(Config{}, nil, [2]Cell{g.XYToIndex(0, 0), g.XYToIndex(10, 8)}, 2)
	require.NoError(t, err)
	assert.Equal(t, []Move{Move(g.XYToIndex(2, 1)), Move(g.XYToIndex(1, 2))}, p.Actions())

	p, err = FromCells(Config{}, nil, [2]Cell{g.XYToIndex(5, 4), g.XYToIndex(10, 8)}, 2)
	require.NoError(t, err)
	assert.Len(t, p.Actions(), 8)
	assert.Len(t, p.Liberties(g.XYToIndex(10, 8)), 2)

	_, err = p.Result(Move(g.XYToIndex(6, 4)))
	assert.ErrorIs(t, err, ErrIllegalMove)
	_, err = p.Result(Move(-3))
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestTerminal(t *testing.T) {
	g := DefaultGeometry
	blocked := []Cell{g.XYToIndex(2, 1), g.XYToIndex(1, 2)}
	p, err := FromCells(Config{}, blocked, [2]Cell{g.XYToIndex(0, 0), g.XYToIndex(5, 4)}, 2)
	require.NoError(t, err)
	assert.True(t, p.IsTerminal())
	assert.Empty(t, p.Actions())
	assert.Equal(t, -1, p.Utility(Player1))
	assert.Equal(t, 1, p.Utility(Player2))
	w, over := p.Winner()
	assert.True(t, over)
	assert.Equal(t, Player2, w)

	// same board, but player2 to move and free
	p, err = FromCells(Config{}, blocked, [2]Cell{g.XYToIndex(0, 0), g.XYToIndex(5, 4)}, 3)
	require.NoError(t, err)
	assert.False(t, p.IsTerminal())
	assert.Equal(t, 0, p.Utility(Player1))
}

func TestSwap(t *testing.T) {
	g := DefaultGeometry
	p, err := FromCells(Config{}, []Cell{3}, [2]Cell{g.XYToIndex(1, 1), g.XYToIndex(7, 7)}, 4)
	require.NoError(t, err)
	s := p.Swap()
	assert.Equal(t, Player2, s.ToMove())
	assert.Equal(t, p.Location(Player1), s.Location(Player2))
	assert.Equal(t, p.Location(Player2), s.Location(Player1))
	assert.True(t, s.Swap().Equal(p))
	assert.False(t, s.Equal(p))
}

func TestFromCellsErrors(t *testing.T) {
	cases := []struct {
		name    string
		blocked []Cell
		locs    [2]Cell
		ply     int
	}{
		{"negative ply", nil, [2]Cell{NoCell, NoCell}, -1},
		{"unplaced late", nil, [2]Cell{3, NoCell}, 2},
		{"player1 unplaced", nil, [2]Cell{NoCell, NoCell}, 1},
		{"off board", []Cell{99}, [2]Cell{NoCell, NoCell}, 0},
		{"token off board", nil, [2]Cell{120, 3}, 2},
		{"shared cell", nil, [2]Cell{3, 3}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromCells(Config{}, tc.blocked, tc.locs, tc.ply)
			assert.ErrorIs(t, err, ErrBadPosition)
		})
	}
}

func TestMirror(t *testing.T) {
	g := DefaultGeometry
	p, err := FromCells(Config{}, []Cell{g.XYToIndex(0, 3)}, [2]Cell{g.XYToIndex(1, 1), g.XYToIndex(7, 7)}, 4)
	require.NoError(t, err)
	m := p.Mirror()
	assert.Equal(t, g.XYToIndex(9, 1), m.Location(Player1))
	assert.Equal(t, g.XYToIndex(3, 7), m.Location(Player2))
	assert.True(t, m.Blocked(g.XYToIndex(10, 3)))
	assert.False(t, m.Blocked(g.XYToIndex(0, 3)))
	assert.Equal(t, len(p.Actions()), len(m.Actions()))
	assert.True(t, m.Mirror().Equal(p))
}
