// internal/daily/store.go
//
// SQLite persistence for daily challenge results: one row per player per
// date (wins only), plus the per-date leaderboard query.

package daily

import (
	"context"
	"database/sql"
)

// Result is one player's winning attempt at the daily challenge.
type Result struct {
	PlayerID       string `json:"playerId"`
	Date           string `json:"date"`
	WordIndex      int    `json:"wordIndex"`
	Guesses        int    `json:"guesses"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

// Store wraps the daily_results table.
type Store struct{ db *sql.DB }

// NewStore wraps a database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the player has a recorded result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, playerID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE player_id=? AND date=?`,
		playerID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a result, ignoring duplicates for the same
// player/date (UNIQUE constraint).
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results (player_id, date, word_index, guesses, elapsed_seconds)
		 VALUES (?,?,?,?,?)`,
		r.PlayerID, r.Date, r.WordIndex, r.Guesses, r.ElapsedSeconds,
	)
	return err
}

// LeaderboardRow is one entry in the per-date leaderboard.
type LeaderboardRow struct {
	PlayerID       string `json:"playerId"`
	Guesses        int    `json:"guesses"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

// Leaderboard returns the fastest results for a date, ties broken by fewer
// guesses, then earliest finish.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, guesses, elapsed_seconds
		 FROM daily_results
		 WHERE date=?
		 ORDER BY elapsed_seconds ASC, guesses ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0, limit)
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.PlayerID, &r.Guesses, &r.ElapsedSeconds); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
