// internal/stats/store.go
//
// SQLite persistence for player statistics. Each player owns a single
// versioned JSON document in player_stats. Loading is deliberately lenient:
// numeric fields are coerced to integers and anything malformed resets to
// zero, so a drifted document (floats or strings where ints belong) can
// never wedge a player out of the game.

package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/game"
)

// Store reads and writes stats documents.
type Store struct {
	db *sql.DB
}

// NewStore wraps a database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Load returns the player's stats, or a fresh record when none exists yet.
func (s *Store) Load(ctx context.Context, playerID string) (*Stats, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM player_stats WHERE player_id=?`, playerID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return NewStats(), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeStats(raw), nil
}

// Save upserts the player's stats document.
func (s *Store) Save(ctx context.Context, playerID string, st *Stats) error {
	st.SchemaVersion = SchemaVersion
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO player_stats (player_id, schema_version, data, updated_at)
        VALUES (?,?,?,?)
        ON CONFLICT(player_id) DO UPDATE SET
            schema_version=excluded.schema_version,
            data=excluded.data,
            updated_at=excluded.updated_at`,
		playerID, SchemaVersion, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Claim re-keys an anonymous player's stats document to a registered user,
// provided the user has no record of their own yet. Either way the source
// row is gone afterwards: re-keyed on success, deleted when the target
// already had a record (the anonymous identity is abandoned at signup).
func (s *Store) Claim(ctx context.Context, fromID, toID string) error {
	if fromID == "" || toID == "" || fromID == toID {
		return nil
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE OR IGNORE player_stats SET player_id=? WHERE player_id=?`, toID, fromID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM player_stats WHERE player_id=?`, fromID)
	return err
}

// decodeStats rebuilds a Stats record from a raw document. Unknown fields
// are ignored, missing fields default to zero, numeric values are coerced
// to int where the schema says int. Derived fields are recomputed rather
// than read back.
func decodeStats(raw []byte) *Stats {
	st := NewStats()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Warn().Err(err).Msg("unreadable stats document, starting fresh")
		return st
	}

	st.GamesPlayed = asInt(m["gamesPlayed"])
	st.GamesWon = asInt(m["gamesWon"])
	st.WinStreak = asInt(m["winStreak"])
	st.MaxStreak = asInt(m["maxStreak"])
	st.TotalPlayTimeSeconds = asInt(m["totalPlayTimeSeconds"])

	if v, ok := m["fastestWinSeconds"]; ok && v != nil {
		if n := asInt(v); n > 0 {
			st.FastestWinSeconds = &n
		}
	}
	if v, ok := m["lastPlayed"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			st.LastPlayed = t
		}
	}

	if dist, ok := m["guessDistribution"].(map[string]any); ok {
		for k, v := range dist {
			bucket, err := strconv.Atoi(k)
			if err != nil || bucket < minGuessBucket || bucket > maxGuessBucket {
				continue
			}
			st.GuessDistribution[bucket] = asInt(v)
		}
	}

	if ds, ok := m["difficultyStats"].(map[string]any); ok {
		for k, v := range ds {
			diff := game.ParseDifficulty(k)
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			st.DifficultyStats[diff] = DifficultyCount{
				Played: asInt(entry["played"]),
				Won:    asInt(entry["won"]),
			}
		}
	}

	st.recompute()
	return st
}

// asInt coerces a decoded JSON value to a non-negative int. Floats are
// truncated, numeric strings parsed, everything else is zero.
func asInt(v any) int {
	var n int
	switch x := v.(type) {
	case float64:
		n = int(x)
	case string:
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		n = int(parsed)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0
		}
		n = int(parsed)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}
