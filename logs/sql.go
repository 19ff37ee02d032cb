package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime not null,
  width int not null,
  height int not null,
  player1 varchar not null,
  player2 varchar not null,
  winner string,
  plies int not null,
  moves string not null
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, color, win, plies
) AS
SELECT id, player2, player1, 'player2',
       CASE winner WHEN 'player2' THEN 1 ELSE 0 END,
       plies
 FROM games
UNION ALL
SELECT id, player1, player2, 'player1',
       CASE winner WHEN 'player1' THEN 1 ELSE 0 END,
       plies
 FROM games
`

const insertStmt = `
INSERT INTO games (time, width, height, player1, player2, winner, plies, moves)
VALUES (:time, :width, :height, :player1, :player2, :winner, :plies, :moves)
`

const selectPlayerGames = `
SELECT id, time, width, height, player1, player2, winner, plies, moves
FROM games
WHERE player1 = ? OR player2 = ?
ORDER BY id
`

const selectSummary = `
SELECT player,
       count(*) AS games,
       sum(win) AS wins,
       sum(CASE color WHEN 'player1' THEN win ELSE 0 END) AS wins_first,
       avg(plies) AS avg_plies
FROM player_games
GROUP BY player
ORDER BY player
`
