package players

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/isotest"
)

func TestParse(t *testing.T) {
	cases := []struct {
		spec string
		base ai.Config
		name string
	}{
		{"random", ai.Config{}, "random"},
		{"greedy", ai.Config{Strategy: ai.MobilityPartition}, "greedy"},
		{"minimax", ai.Config{}, "minimax@3"},
		{"minimax", ai.Config{MaxDepth: 5}, "minimax@5"},
		{"minimax@2", ai.Config{MaxDepth: 5}, "minimax@2"},
		{"iei:isolation iei -depth 2", ai.Config{}, "iei:isolation iei -depth 2"},
	}
	for _, tc := range cases {
		f, err := Parse(tc.spec, tc.base)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.name, f.String())
	}

	for _, bad := range []string{"", "human", "minimax@", "minimax@x", "minimax@0", "iei:", "iei:   "} {
		_, err := Parse(bad, ai.Config{})
		assert.Error(t, err, "spec %q", bad)
	}
}

func TestLocalPlayers(t *testing.T) {
	p := isotest.Position("f5 a1")
	for _, spec := range []string{"random", "greedy", "minimax@2"} {
		f, err := Parse(spec, ai.Config{})
		require.NoError(t, err)
		seat, err := f.Start()
		require.NoError(t, err)
		pl, err := seat.NewGame(isolation.DefaultGeometry, 3)
		require.NoError(t, err)
		m, err := pl.GetMove(context.Background(), p)
		require.NoError(t, err, spec)
		assert.True(t, p.IsLegal(m), "%s played %d", spec, m)
		seat.Close()
	}
}

func TestMinimaxDepth(t *testing.T) {
	f, err := Parse("minimax@2", ai.Config{Debug: 0})
	require.NoError(t, err)
	seat, _ := f.Start()
	pl, err := seat.NewGame(isolation.DefaultGeometry, 1)
	require.NoError(t, err)
	e, ok := pl.(*ai.Engine)
	require.True(t, ok)
	assert.Equal(t, 2, e.Config().MaxDepth)
	assert.Equal(t, int64(1), e.Config().Seed)
}
