package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGuessRequiresActiveRound(t *testing.T) {
	s := NewSession("p1")
	res, rej := s.ApplyGuess("HOUSE", time.Now())
	assert.Nil(t, res)
	require.NotNil(t, rej)
	assert.Equal(t, RejectNoGame, rej.Kind)
	assert.Equal(t, "No game in progress", rej.Reason)
}

func TestApplyGuessWin(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession("p1")
	s.StartRound("r1", "HOUSE", DefaultLanguage, DifficultyNormal, start)

	_, rej := s.ApplyGuess("mouse", start.Add(5*time.Second))
	require.Nil(t, rej)

	res, rej := s.ApplyGuess(" house ", start.Add(20*time.Second))
	require.Nil(t, rej)
	assert.Equal(t, StateWon, res.State)
	assert.Equal(t, "HOUSE", res.Guess)
	assert.Equal(t, "Congratulations! You guessed HOUSE in 2 tries!", res.Message)

	assert.True(t, s.Finished())
	assert.Equal(t, "HOUSE", s.Revealed)

	round := s.CompletedRound()
	assert.True(t, round.Won)
	assert.Equal(t, 2, round.Guesses)
	assert.Equal(t, 20*time.Second, round.Duration)
	assert.Equal(t, DifficultyNormal, round.Difficulty)
}

func TestApplyGuessBudgetEqualsWordLength(t *testing.T) {
	s := NewSession("p1")
	s.StartRound("r1", "HOUSE", DefaultLanguage, DifficultyNormal, time.Now())
	require.Equal(t, 5, s.GuessesRemaining())

	wrong := []string{"TRAIN", "CRANE", "STOMP", "BLINK", "FROND"}
	for i, g := range wrong {
		res, rej := s.ApplyGuess(g, time.Now())
		require.Nil(t, rej, "guess %d", i)
		if i < len(wrong)-1 {
			assert.Equal(t, StatePlaying, res.State)
			assert.Equal(t, 4-i, res.Remaining)
		} else {
			assert.Equal(t, StateLost, res.State)
			assert.Equal(t, 0, res.Remaining)
			assert.Equal(t, "Game over! The word was HOUSE", res.Message)
		}
	}
	assert.Equal(t, "HOUSE", s.Revealed)

	round := s.CompletedRound()
	assert.False(t, round.Won)
	assert.Equal(t, 5, round.Guesses)
}

func TestApplyGuessRejectionConsumesNothing(t *testing.T) {
	s := NewSession("p1")
	s.StartRound("r1", "HOUSE", DefaultLanguage, DifficultyNormal, time.Now())

	_, rej := s.ApplyGuess("AEIOU", time.Now())
	require.NotNil(t, rej)
	assert.Empty(t, s.Guesses)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 5, s.GuessesRemaining())
	assert.Equal(t, rej.Reason, s.LastMsg)
	assert.Equal(t, "error", s.MsgType)
}

func TestApplyGuessAfterTerminalState(t *testing.T) {
	s := NewSession("p1")
	s.StartRound("r1", "HOUSE", DefaultLanguage, DifficultyNormal, time.Now())
	_, rej := s.ApplyGuess("HOUSE", time.Now())
	require.Nil(t, rej)

	_, rej = s.ApplyGuess("MOUSE", time.Now())
	require.NotNil(t, rej)
	assert.Equal(t, RejectNoGame, rej.Kind)
	assert.Len(t, s.Guesses, 1)
}

func TestStartRoundResetsEverything(t *testing.T) {
	s := NewSession("p1")
	s.StartRound("r1", "HOUSE", DefaultLanguage, DifficultyNormal, time.Now())
	_, rej := s.ApplyGuess("HOUSE", time.Now())
	require.Nil(t, rej)

	s.StartRound("r2", "castle", DefaultLanguage, DifficultyHard, time.Now())
	assert.Equal(t, "CASTLE", s.Secret)
	assert.Equal(t, 6, s.WordLength)
	assert.Equal(t, StatePlaying, s.State)
	assert.Empty(t, s.Guesses)
	assert.Empty(t, s.Results)
	assert.Empty(t, s.Revealed)
	assert.Empty(t, s.Hint)
	assert.True(t, s.EndedAt.IsZero())
	assert.Equal(t, "New 6 letter game started! No hints in hard mode - good luck!", s.LastMsg)
}

func TestHardModeMessages(t *testing.T) {
	s := NewSession("p1")
	s.StartRound("r1", "HOUSE", DefaultLanguage, DifficultyHard, time.Now())
	res, rej := s.ApplyGuess("HOUSE", time.Now())
	require.Nil(t, rej)
	assert.Equal(t, "Congratulations! You guessed HOUSE in 1 tries! Impressive work in hard mode!", res.Message)
}
