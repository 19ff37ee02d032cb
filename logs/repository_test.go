package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func game(p1, p2, winner string, plies int) *Game {
	return &Game{
		Timestamp: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Width:     11,
		Height:    9,
		Player1:   p1,
		Player2:   p2,
		Winner:    winner,
		Plies:     plies,
		Moves:     "f5 a1 e7 c2",
	}
}

func TestInsertAndQuery(t *testing.T) {
	repo := openTemp(t)
	g := game("minimax@3", "random", "player1", 20)
	require.NoError(t, repo.InsertGame(g))
	assert.NotZero(t, g.ID)

	require.NoError(t, repo.InsertGames([]*Game{
		game("random", "minimax@3", "player2", 18),
		game("greedy", "random", "player2", 11),
	}))

	gs, err := repo.Games("minimax@3")
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, g.ID, gs[0].ID)
	assert.Equal(t, "random", gs[0].Player2)
	assert.Equal(t, 20, gs[0].Plies)
	assert.Equal(t, "f5 a1 e7 c2", gs[0].Moves)
	assert.True(t, gs[0].Timestamp.Equal(g.Timestamp), "got %v", gs[0].Timestamp)

	gs, err = repo.Games("nobody")
	require.NoError(t, err)
	assert.Empty(t, gs)
}

func TestSummary(t *testing.T) {
	repo := openTemp(t)
	require.NoError(t, repo.InsertGames([]*Game{
		game("minimax@3", "random", "player1", 20),
		game("random", "minimax@3", "player2", 18),
		game("random", "minimax@3", "player1", 10),
	}))

	sum, err := repo.Summary()
	require.NoError(t, err)
	require.Len(t, sum, 2)

	mm, rnd := sum[0], sum[1]
	assert.Equal(t, "minimax@3", mm.Player)
	assert.Equal(t, 3, mm.Games)
	assert.Equal(t, 2, mm.Wins)
	assert.Equal(t, 1, mm.WinsFirst)
	assert.InDelta(t, 16.0, mm.AvgPlies, 1e-9)
	assert.InDelta(t, 2.0/3, mm.WinRate(), 1e-9)

	assert.Equal(t, "random", rnd.Player)
	assert.Equal(t, 1, rnd.Wins)
	assert.Equal(t, 1, rnd.WinsFirst)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	repo, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, repo.InsertGame(game("a", "b", "player1", 5)))
	require.NoError(t, repo.Close())

	repo, err = Open(path)
	require.NoError(t, err)
	defer repo.Close()
	gs, err := repo.Games("b")
	require.NoError(t, err)
	assert.Len(t, gs, 1)
}

func TestEmptySummary(t *testing.T) {
	sum, err := openTemp(t).Summary()
	require.NoError(t, err)
	assert.Empty(t, sum)
}
