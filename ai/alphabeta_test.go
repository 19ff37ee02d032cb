package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/isotest"
)

// node is a hand-built game tree. Leaf values are from player1's point
// of view and returned by both Evaluate and Utility.
type node struct {
	player   isolation.Player
	value    Score
	terminal bool
	fail     bool
	children []*node
}

func (n *node) Geometry() isolation.Geometry { return isolation.DefaultGeometry }
func (n *node) PlyCount() int                { return 2 }
func (n *node) ToMove() isolation.Player     { return n.player }
func (n *node) IsTerminal() bool             { return n.terminal }

func (n *node) Locations() [2]isolation.Cell {
	return [2]isolation.Cell{isolation.NoCell, isolation.NoCell}
}

func (n *node) Liberties(isolation.Cell) []isolation.Cell { return nil }

func (n *node) Actions() []isolation.Move {
	out := make([]isolation.Move, len(n.children))
	for i := range n.children {
		out[i] = isolation.Move(i)
	}
	return out
}

var errBoom = errors.New("boom")

func (n *node) Result(m isolation.Move) (StateView, error) {
	if n.fail {
		return nil, errBoom
	}
	return n.children[m], nil
}

func (n *node) Utility(pl isolation.Player) Score {
	if pl == isolation.Player1 {
		return n.value
	}
	return -n.value
}

func evalNode(s StateView, pl isolation.Player) Score {
	return s.(*node).Utility(pl)
}

func leaf(v Score) *node {
	return &node{player: isolation.Player2, value: v}
}

func end(v Score) *node {
	return &node{player: isolation.Player2, value: v, terminal: true}
}

// minimax is a plain search without pruning, breaking root ties the
// same way.
func minimax(s StateView, pl isolation.Player, depth int, eval EvaluationFunc) Score {
	if s.IsTerminal() {
		return s.Utility(pl)
	}
	if depth <= 0 {
		return eval(s, pl)
	}
	actions := s.Actions()
	maxing := s.ToMove() == pl
	if len(actions) == 0 {
		if maxing {
			return MinScore
		}
		return MaxScore
	}
	var best Score
	for i, a := range actions {
		child, err := s.Result(a)
		if err != nil {
			panic(err)
		}
		v := minimax(child, pl, depth-1, eval)
		if i == 0 || (maxing && v > best) || (!maxing && v < best) {
			best = v
		}
	}
	return best
}

func rootMinimax(s StateView, depth int, eval EvaluationFunc) (isolation.Move, Score) {
	best := NoMove
	bestV := MinScore - 1
	for _, a := range s.Actions() {
		child, err := s.Result(a)
		if err != nil {
			panic(err)
		}
		v := minimax(child, s.ToMove(), depth-1, eval)
		if v >= bestV {
			best, bestV = a, v
		}
	}
	return best, bestV
}

var searchPositions = []string{
	"f5 a1",
	"f5 a1 e7 c2",
	"f5 a1 e7 c2 g6 b4",
	"c3 h7 d5 g5 f6 e6",
	"a1 k9 b3 j7 c1 h8",
}

func TestSearchReturnsLegalMove(t *testing.T) {
	e := Evaluator{Evaluate: EvaluateMobilityDistance}
	for _, g := range searchPositions {
		p := isotest.Position(g)
		m, _, err := e.Search(View(p), 1, nil)
		require.NoError(t, err)
		assert.Contains(t, p.Actions(), m, "game %q", g)
	}
}

func TestSearchVisitsEveryRootAction(t *testing.T) {
	e := Evaluator{Evaluate: EvaluateMobility}
	for _, g := range searchPositions {
		p := isotest.Position(g)
		var st Stats
		_, _, err := e.Search(View(p), 3, &st)
		require.NoError(t, err)
		assert.Equal(t, uint64(len(p.Actions())), st.RootActions, "game %q", g)
		assert.NotZero(t, st.Evaluated)
	}
}

func TestSearchMatchesMinimax(t *testing.T) {
	for _, strat := range []Strategy{Mobility, MobilityDistance, MobilityPartition} {
		eval := strat.Evaluator()
		for _, g := range searchPositions {
			p := View(isotest.Position(g))
			for depth := 1; depth <= 3; depth++ {
				wantM, wantV := rootMinimax(p, depth, eval)

				serial := Evaluator{Evaluate: eval}
				m, v, err := serial.Search(p, depth, nil)
				require.NoError(t, err)
				assert.Equal(t, wantM, m, "%s %q depth=%d", strat, g, depth)
				assert.Equal(t, wantV, v, "%s %q depth=%d", strat, g, depth)

				parallel := Evaluator{Evaluate: eval, Parallel: true}
				pm, pv, err := parallel.Search(p, depth, &Stats{})
				require.NoError(t, err)
				assert.Equal(t, m, pm, "parallel %s %q depth=%d", strat, g, depth)
				assert.Equal(t, v, pv, "parallel %s %q depth=%d", strat, g, depth)
			}
		}
	}
}

func TestSearchTerminalRoot(t *testing.T) {
	c := isotest.Cell
	p := mustPosition(t, []isolation.Cell{c(2, 1), c(1, 2)}, [2]isolation.Cell{c(0, 0), c(5, 4)}, 2)
	require.True(t, p.IsTerminal())
	e := Evaluator{}
	for depth := 0; depth <= 4; depth++ {
		var st Stats
		m, v, err := e.Search(View(p), depth, &st)
		require.NoError(t, err)
		assert.Equal(t, NoMove, m)
		assert.Equal(t, MinScore, v, "depth=%d", depth)
		assert.Equal(t, uint64(1), st.Terminal)
	}
}

func TestSearchTieBreak(t *testing.T) {
	root := &node{children: []*node{leaf(3), leaf(5), leaf(5)}}
	e := Evaluator{Evaluate: evalNode}
	m, v, err := e.Search(root, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, isolation.Move(2), m)
	assert.Equal(t, Score(5), v)

	// the tie survives pruning one level down
	root = &node{children: []*node{
		{player: isolation.Player2, children: []*node{leaf(4), leaf(7)}},
		{player: isolation.Player2, children: []*node{leaf(9), leaf(4)}},
		{player: isolation.Player2, children: []*node{leaf(1), leaf(8)}},
	}}
	for i := range root.children {
		for _, c := range root.children[i].children {
			c.player = isolation.Player1
		}
	}
	m, v, err = e.Search(root, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, isolation.Move(1), m)
	assert.Equal(t, Score(4), v)
}

func TestSearchStuckChild(t *testing.T) {
	// a live opponent node with no moves counts as our win
	root := &node{children: []*node{
		end(2),
		{player: isolation.Player2},
		end(3),
	}}
	e := Evaluator{Evaluate: evalNode}
	m, v, err := e.Search(root, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, isolation.Move(1), m)
	assert.Equal(t, MaxScore, v)

	_, _, err = e.Search(&node{}, 2, nil)
	assert.ErrorIs(t, err, ErrNoActions)
}

func TestSearchStuckGrandchild(t *testing.T) {
	// a live node of ours with no moves counts as our loss
	stuck := &node{player: isolation.Player2, children: []*node{
		{player: isolation.Player1},
		{player: isolation.Player1, children: []*node{leaf(5)}},
	}}
	safe := &node{player: isolation.Player2, children: []*node{
		{player: isolation.Player1, children: []*node{leaf(4)}},
	}}
	root := &node{children: []*node{safe, stuck}}

	for _, parallel := range []bool{false, true} {
		e := Evaluator{Evaluate: evalNode, Parallel: parallel}
		m, v, err := e.Search(root, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, isolation.Move(0), m, "parallel=%v", parallel)
		assert.Equal(t, Score(4), v, "parallel=%v", parallel)
		wm, wv := rootMinimax(root, 3, evalNode)
		assert.Equal(t, wm, m)
		assert.Equal(t, wv, v)

		_, v, err = e.Search(&node{children: []*node{stuck}}, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, MinScore, v, "parallel=%v", parallel)
	}
}

func TestSearchResultError(t *testing.T) {
	root := &node{children: []*node{
		{player: isolation.Player2, fail: true, children: []*node{leaf(1)}},
	}}
	e := Evaluator{Evaluate: evalNode}
	_, _, err := e.Search(root, 3, nil)
	assert.ErrorIs(t, err, errBoom)

	e.Parallel = true
	_, _, err = e.Search(root, 3, nil)
	assert.ErrorIs(t, err, errBoom)
}

func TestSearchCanceled(t *testing.T) {
	p := isotest.Position("f5 a1")
	e := Evaluator{}
	cancel := int32(1)
	_, _, err := e.search(View(p), 3, nil, &cancel)
	assert.ErrorIs(t, err, errCanceled)

	// a depth-one search reaches only leaves and always finishes
	m, _, err := e.search(View(p), 1, nil, &cancel)
	require.NoError(t, err)
	assert.Contains(t, p.Actions(), m)
}
