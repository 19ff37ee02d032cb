package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
)

func TestParseIPN(t *testing.T) {
	ipn := `x11/x11/x11/x11/x5,1,x5/x11/x3,#,x,2,x5/x11/x11 4`
	p, err := ParseIPN(ipn)
	require.NoError(t, err)
	g := p.Geometry()
	assert.Equal(t, isolation.DefaultGeometry, g)
	assert.Equal(t, 4, p.PlyCount())
	assert.Equal(t, g.XYToIndex(5, 4), p.Location(isolation.Player1))
	assert.Equal(t, g.XYToIndex(5, 2), p.Location(isolation.Player2))
	assert.True(t, p.Blocked(g.XYToIndex(3, 2)))
	assert.False(t, p.Blocked(g.XYToIndex(4, 2)))
	assert.Equal(t, ipn, FormatIPN(p))
}

func TestIPNRoundTrip(t *testing.T) {
	p := isolation.New(isolation.Config{})
	for _, sq := range []string{"f5", "a1", "e7", "c2", "g6", "b4"} {
		m, err := ParseMove(p.Geometry(), sq)
		require.NoError(t, err)
		p, err = p.Result(m)
		require.NoError(t, err, "move %s", sq)
		ipn := FormatIPN(p)
		back, err := ParseIPN(ipn)
		require.NoError(t, err, ipn)
		assert.True(t, back.Equal(p), "round trip of %q", ipn)
	}
	assert.Equal(t, "x11/x11/x11/x11/x11/x11/x11/x11/x11 0", FormatIPN(isolation.New(isolation.Config{})))
}

func TestParseIPNErrors(t *testing.T) {
	cases := []string{
		"",
		"x11/x11 0",
		"x5/x5/x5",
		"x5/x5/x5 -1",
		"x5/x4/x5 0",
		"x5/x5/x3,q,x 0",
		"x5/x5/x0,x5 0",
		"1,x4/x5/x4,1 2",
		"1,x4/x5/x5 3",
		"x27/x27/x27 0",
	}
	for _, c := range cases {
		_, err := ParseIPN(c)
		assert.Error(t, err, "ParseIPN(%q)", c)
	}
}

func TestSquares(t *testing.T) {
	g := isolation.DefaultGeometry
	cases := []struct {
		in   string
		x, y int
	}{
		{"a1", 0, 0},
		{"f5", 5, 4},
		{"k9", 10, 8},
		{"c7", 2, 6},
	}
	for _, tc := range cases {
		c, err := ParseSquare(g, tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, g.XYToIndex(tc.x, tc.y), c, tc.in)
		assert.Equal(t, tc.in, FormatSquare(g, c))
	}
	for _, bad := range []string{"", "l1", "a10", "a0", "A1", "-", "a"} {
		_, err := ParseMove(g, bad)
		assert.Error(t, err, bad)
	}
	assert.Equal(t, "-", FormatSquare(g, isolation.NoCell))
	assert.Equal(t, []string{"a1", "f5"}, FormatMoves(g, []isolation.Move{0, 49}))
}
