// internal/httpserver/views.go
//
// Display projection for sessions. The secret word never crosses the wire
// while a round is in play; terminal states expose it via revealedWord.

package httpserver

import (
	"time"

	"github.com/wordplaylabs/wordplay/internal/game"
)

// sessionView is what /game/new and /game/state return.
type sessionView struct {
	State            game.State      `json:"state"`
	WordLength       int             `json:"wordLength"`
	Language         string          `json:"language"`
	Difficulty       game.Difficulty `json:"difficulty"`
	Guesses          []string        `json:"guesses"`
	Results          [][]game.Mark   `json:"results"`
	GuessesRemaining int             `json:"guessesRemaining"`
	Hint             string          `json:"hint,omitempty"`
	RevealedWord     string          `json:"revealedWord,omitempty"`
	Message          string          `json:"message"`
	MessageType      string          `json:"messageType"`
	StartedAt        *time.Time      `json:"startedAt,omitempty"`
	EndedAt          *time.Time      `json:"endedAt,omitempty"`
}

func viewOf(s *game.Session) sessionView {
	v := sessionView{
		State:            s.State,
		WordLength:       s.WordLength,
		Language:         s.Language,
		Difficulty:       s.Difficulty,
		Guesses:          s.Guesses,
		Results:          s.Results,
		GuessesRemaining: s.GuessesRemaining(),
		Hint:             s.Hint,
		Message:          s.LastMsg,
		MessageType:      s.MsgType,
	}
	if s.Finished() {
		v.RevealedWord = s.Revealed
	}
	if !s.StartedAt.IsZero() {
		t := s.StartedAt
		v.StartedAt = &t
	}
	if !s.EndedAt.IsZero() {
		t := s.EndedAt
		v.EndedAt = &t
	}
	return v
}
