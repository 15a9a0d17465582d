// internal/stats/recorder.go
//
// Recorder glues the aggregator to the store and implements game.Recorder.
// A stats write failure is logged and swallowed: the round outcome the
// player sees never depends on the backing store.

package stats

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/clock"
	"github.com/wordplaylabs/wordplay/internal/game"
)

// Recorder loads, updates and saves one player's stats per completed round.
type Recorder struct {
	store *Store
	clock clock.Clock
}

// NewRecorder builds a Recorder.
func NewRecorder(store *Store, clk clock.Clock) *Recorder {
	if clk == nil {
		clk = clock.Default{}
	}
	return &Recorder{store: store, clock: clk}
}

// RecordRound folds a completed round into the player's record.
func (r *Recorder) RecordRound(ctx context.Context, playerID string, round game.Round) {
	st, err := r.store.Load(ctx, playerID)
	if err != nil {
		log.Error().Err(err).Str("player", playerID).Msg("stats load failed, applying round to fresh record")
		st = NewStats()
	}
	st.ApplyRound(round, r.clock.Now())
	if err := r.store.Save(ctx, playerID, st); err != nil {
		log.Error().Err(err).Str("player", playerID).Msg("stats save failed")
		return
	}
	log.Info().
		Str("player", playerID).
		Int("gamesPlayed", st.GamesPlayed).
		Int("gamesWon", st.GamesWon).
		Float64("winRate", st.WinRatePercent).
		Msg("stats updated")
}

// Claim transfers an anonymous player's record to a registered account.
func (r *Recorder) Claim(ctx context.Context, fromID, toID string) error {
	return r.store.Claim(ctx, fromID, toID)
}

// PlayerStats exposes the stored record for display.
func (r *Recorder) PlayerStats(ctx context.Context, playerID string) (*Stats, error) {
	return r.store.Load(ctx, playerID)
}
