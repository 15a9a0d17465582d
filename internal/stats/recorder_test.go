package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordplaylabs/wordplay/internal/clock"
	"github.com/wordplaylabs/wordplay/internal/game"
)

func TestRecorderRecordRound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rec := NewRecorder(NewStore(db), clk)

	rec.RecordRound(ctx, "p1", game.Round{Won: true, Guesses: 3, Duration: 45 * time.Second, Difficulty: game.DifficultyNormal})
	rec.RecordRound(ctx, "p1", game.Round{Won: false, Guesses: 5, Duration: 60 * time.Second, Difficulty: game.DifficultyNormal})

	st, err := rec.PlayerStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, st.GamesPlayed)
	assert.Equal(t, 1, st.GamesWon)
	assert.Equal(t, 105, st.TotalPlayTimeSeconds)
	assert.Equal(t, 50.0, st.WinRatePercent)
	assert.True(t, st.LastPlayed.Equal(clk.T))
}

func TestRecorderPlayerStatsFresh(t *testing.T) {
	rec := NewRecorder(NewStore(openTestDB(t)), nil)
	st, err := rec.PlayerStats(context.Background(), "newbie")
	require.NoError(t, err)
	assert.Zero(t, st.GamesPlayed)
}
