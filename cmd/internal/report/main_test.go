package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisKeys/isolation-adversarial-search/logs"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, []logs.PlayerSummary{
		{Player: "minimax@3", Games: 1500, Wins: 1200, WinsFirst: 700, AvgPlies: 31.5},
		{Player: "random", Games: 1500, Wins: 300, WinsFirst: 100, AvgPlies: 31.5},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "player"))
	assert.Contains(t, lines[1], "1,500")
	assert.Contains(t, lines[1], "0.800")
	assert.Contains(t, lines[2], "31.5")
}

func TestWriteGamesFromRepository(t *testing.T) {
	repo, err := logs.Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	defer repo.Close()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.InsertGames([]*logs.Game{
		{Timestamp: now, Width: 11, Height: 9, Player1: "minimax@3", Player2: "random", Winner: "player1", Plies: 20, Moves: "f5 a1"},
		{Timestamp: now, Width: 7, Height: 7, Player1: "random", Player2: "minimax@3", Winner: "player1", Plies: 9, Moves: "d4 a1"},
	}))
	gs, err := repo.Games("minimax@3")
	require.NoError(t, err)

	var buf bytes.Buffer
	writeGames(&buf, "minimax@3", gs)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "11x9")
	assert.Contains(t, lines[1], "win")
	assert.Contains(t, lines[2], "7x7")
	assert.Contains(t, lines[2], "loss")
}
