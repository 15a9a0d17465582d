// internal/game/session.go
//
// State machine transitions for a player's session. These methods are pure
// with respect to I/O: word fetching, hint fetching, persistence and stats
// recording are orchestrated by the Engine. Transitions are monotonic
// within a round: idle/terminal -> playing -> won|lost.

package game

import (
	"fmt"
	"strings"
	"time"
)

// StartRound resets the session for a fresh round with the given secret.
// Valid from any state; prior round data is discarded.
func (s *Session) StartRound(roundID, secret string, language string, difficulty Difficulty, now time.Time) {
	s.RoundID = roundID
	s.Secret = strings.ToUpper(secret)
	s.WordLength = len(secret)
	s.Language = language
	s.Difficulty = difficulty
	s.Guesses = []string{}
	s.Results = [][]Mark{}
	s.Hint = ""
	s.Revealed = ""
	s.State = StatePlaying
	s.StartedAt = now
	s.EndedAt = time.Time{}

	switch difficulty {
	case DifficultyEasy:
		s.setMessage(fmt.Sprintf("New %d letter game started! Hint coming right up...", s.WordLength), "success")
	case DifficultyHard:
		s.setMessage(fmt.Sprintf("New %d letter game started! No hints in hard mode - good luck!", s.WordLength), "success")
	default:
		s.setMessage(fmt.Sprintf("New %d letter game started!", s.WordLength), "success")
	}
}

// ApplyGuess validates and scores a guess, mutating session state.
//
// A rejection (no active round, anti-cheat failure) leaves the session
// untouched apart from the status message. An accepted guess is appended
// together with its marks, and the round transitions to won when the guess
// equals the secret, or to lost once the guess budget (== word length) is
// spent.
func (s *Session) ApplyGuess(guess string, now time.Time) (*GuessResult, *Rejection) {
	if s.State != StatePlaying {
		return nil, reject(RejectNoGame, "No game in progress")
	}

	guess = strings.ToUpper(strings.TrimSpace(guess))
	if rej := ValidateGuess(guess, s); rej != nil {
		s.setMessage(rej.Reason, "error")
		return nil, rej
	}

	marks := Evaluate(s.Secret, guess)
	s.Guesses = append(s.Guesses, guess)
	s.Results = append(s.Results, marks)

	switch {
	case allCorrect(marks):
		s.State = StateWon
		s.EndedAt = now
		s.Revealed = s.Secret
		msg := fmt.Sprintf("Congratulations! You guessed %s in %d tries!", s.Secret, len(s.Guesses))
		if s.Difficulty == DifficultyHard {
			msg += " Impressive work in hard mode!"
		}
		s.setMessage(msg, "success")

	case len(s.Guesses) >= s.WordLength:
		s.State = StateLost
		s.EndedAt = now
		s.Revealed = s.Secret
		msg := fmt.Sprintf("Game over! The word was %s", s.Secret)
		if s.Difficulty == DifficultyHard {
			msg += " Hard mode is tough - try again!"
		}
		s.setMessage(msg, "info")

	default:
		s.setMessage(fmt.Sprintf("Good guess! %d tries remaining", s.GuessesRemaining()), "info")
	}

	return &GuessResult{
		Guess:     guess,
		Marks:     marks,
		State:     s.State,
		Remaining: s.GuessesRemaining(),
		Message:   s.LastMsg,
	}, nil
}

// Finished reports whether the session sits in a terminal state.
func (s *Session) Finished() bool {
	return s.State == StateWon || s.State == StateLost
}

// CompletedRound builds the summary record for the statistics aggregator.
// Only meaningful once the session is terminal.
func (s *Session) CompletedRound() Round {
	return Round{
		Won:        s.State == StateWon,
		Guesses:    len(s.Guesses),
		Duration:   s.EndedAt.Sub(s.StartedAt),
		Difficulty: s.Difficulty,
	}
}
