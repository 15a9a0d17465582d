// internal/stats/stats.go
//
// Player statistics: the running win/loss/streak/timing record mutated
// exclusively at round completion. Derived fields (win rate, average
// guesses on win) are recomputed from their inputs after every completed
// round and never trusted from storage.

package stats

import (
	"math"
	"time"

	"github.com/wordplaylabs/wordplay/internal/game"
)

// SchemaVersion tags the persisted stats document for forward-compatible
// loading.
const SchemaVersion = 1

// Guess distribution covers winning guess counts 1..8 (8 is the longest
// word, and the guess budget equals the word length).
const (
	minGuessBucket = 1
	maxGuessBucket = 8
)

// DifficultyCount tracks played/won totals for one difficulty tier.
type DifficultyCount struct {
	Played int `json:"played"`
	Won    int `json:"won"`
}

// Stats is one player's persistent record.
type Stats struct {
	SchemaVersion        int                                 `json:"schemaVersion"`
	GamesPlayed          int                                 `json:"gamesPlayed"`
	GamesWon             int                                 `json:"gamesWon"`
	GuessDistribution    map[int]int                         `json:"guessDistribution"`
	WinStreak            int                                 `json:"winStreak"`
	MaxStreak            int                                 `json:"maxStreak"`
	TotalPlayTimeSeconds int                                 `json:"totalPlayTimeSeconds"`
	FastestWinSeconds    *int                                `json:"fastestWinSeconds"`
	WinRatePercent       float64                             `json:"winRatePercent"`
	AverageGuessesOnWin  float64                             `json:"averageGuessesOnWin"`
	DifficultyStats      map[game.Difficulty]DifficultyCount `json:"difficultyStats"`
	LastPlayed           time.Time                           `json:"lastPlayed"`
}

// NewStats returns a zeroed record with all buckets present.
func NewStats() *Stats {
	dist := make(map[int]int, maxGuessBucket)
	for i := minGuessBucket; i <= maxGuessBucket; i++ {
		dist[i] = 0
	}
	return &Stats{
		SchemaVersion:     SchemaVersion,
		GuessDistribution: dist,
		DifficultyStats: map[game.Difficulty]DifficultyCount{
			game.DifficultyEasy:   {},
			game.DifficultyNormal: {},
			game.DifficultyHard:   {},
		},
	}
}

// ApplyRound folds one completed round into the record and refreshes the
// derived fields.
func (st *Stats) ApplyRound(r game.Round, now time.Time) {
	duration := int(r.Duration.Seconds())
	if duration < 0 {
		duration = 0
	}

	st.GamesPlayed++
	st.TotalPlayTimeSeconds += duration
	st.LastPlayed = now

	dc := st.DifficultyStats[r.Difficulty]
	dc.Played++

	if r.Won {
		st.GamesWon++
		st.WinStreak++
		if st.WinStreak > st.MaxStreak {
			st.MaxStreak = st.WinStreak
		}
		if r.Guesses >= minGuessBucket && r.Guesses <= maxGuessBucket {
			st.GuessDistribution[r.Guesses]++
		}
		dc.Won++
		if st.FastestWinSeconds == nil || duration < *st.FastestWinSeconds {
			d := duration
			st.FastestWinSeconds = &d
		}
	} else {
		st.WinStreak = 0
	}
	st.DifficultyStats[r.Difficulty] = dc

	st.recompute()
}

// recompute refreshes the derived fields from their inputs.
func (st *Stats) recompute() {
	if st.GamesPlayed > 0 {
		st.WinRatePercent = round1(float64(st.GamesWon) / float64(st.GamesPlayed) * 100)
	}
	if st.GamesWon > 0 {
		total := 0
		for guesses, wins := range st.GuessDistribution {
			total += guesses * wins
		}
		st.AverageGuessesOnWin = round2(float64(total) / float64(st.GamesWon))
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
