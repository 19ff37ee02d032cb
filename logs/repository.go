package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Game is one finished game. Winner is "player1" or "player2"; Moves
// holds the squares played, space separated.
type Game struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	Winner    string    `db:"winner"`
	Plies     int       `db:"plies"`
	Moves     string    `db:"moves"`
}

type PlayerSummary struct {
	Player    string  `db:"player"`
	Games     int     `db:"games"`
	Wins      int     `db:"wins"`
	WinsFirst int     `db:"wins_first"`
	AvgPlies  float64 `db:"avg_plies"`
}

func (s *PlayerSummary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(createGameTable)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	_, err = db.Exec(createPlayerView)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	return insertGame(r.insert, g)
}

func insertGame(stmt *sqlx.NamedStmt, g *Game) error {
	res, err := stmt.Exec(g)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

// InsertGames stores gs in a single transaction.
func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if e := insertGame(stmt, g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Games returns every game player took part in, oldest first.
func (r *Repository) Games(player string) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectPlayerGames, player, player); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	return out, nil
}

// Summary reports results per player across all stored games.
func (r *Repository) Summary() ([]PlayerSummary, error) {
	var out []PlayerSummary
	if err := r.db.Select(&out, selectSummary); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return out, nil
}

func (r *Repository) Close() error {
	if r.insert != nil {
		r.insert.Close()
	}
	return r.db.Close()
}
