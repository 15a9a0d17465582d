// internal/game/types.go
//
// Core type definitions for the WordPlay session engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/partial/absent).
//   - State: session state machine values (idle/playing/won/lost).
//   - Difficulty: hint availability tiers (easy/normal/hard).
//   - Session: per-player state for an in-progress or finished round.
//   - Round: completed-round summary handed to the statistics layer.

package game

import "time"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is correct and in the correct position.
//   - "partial": letter exists in the word but in a different position.
//   - "absent":  letter does not exist in the word at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPartial Mark = "partial"
	MarkAbsent  Mark = "absent"
)

// State is the coarse state of a player's session.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Difficulty controls hint availability and timing only.
//   - easy:   hint fetched up front and shown immediately.
//   - normal: hint fetched up front, shown on request.
//   - hard:   hints disabled.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a raw string to a Difficulty, defaulting to normal
// for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyNormal
	}
}

// Word length bounds for a round. The number of allowed guesses equals the
// word length, so longer words also mean more attempts.
const (
	MinWordLength     = 5
	MaxWordLength     = 8
	DefaultWordLength = 5
	DefaultLanguage   = "en"
)

// Session holds the state of a single player's WordPlay session. A Session
// is created on the player's first game and reused (reset) for subsequent
// rounds. It is a plain data record: callers serialize access per player
// (see Engine), and stores may round-trip it through JSON.
type Session struct {
	PlayerID   string     `json:"playerId"`
	RoundID    string     `json:"roundId"` // unique per round
	Secret     string     `json:"secret"`  // upper-case target word
	WordLength int        `json:"wordLength"`
	Language   string     `json:"language"`
	Difficulty Difficulty `json:"difficulty"`
	Guesses    []string   `json:"guesses"` // chronological, upper-case
	Results    [][]Mark   `json:"results"` // aligned 1:1 with Guesses
	State      State      `json:"state"`
	Hint       string     `json:"hint"`     // lazily populated, cleared on new game
	Revealed   string     `json:"revealed"` // secret word, populated on terminal states only
	LastMsg    string     `json:"lastMessage"`
	MsgType    string     `json:"messageType"` // success | error | info
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    time.Time  `json:"endedAt"`
}

// NewSession returns an idle session for a player.
func NewSession(playerID string) *Session {
	return &Session{
		PlayerID:   playerID,
		WordLength: DefaultWordLength,
		Language:   DefaultLanguage,
		Difficulty: DifficultyNormal,
		State:      StateIdle,
		Guesses:    []string{},
		Results:    [][]Mark{},
	}
}

// Clone returns a deep copy of the session. Stores that share process
// memory hand out clones so no two callers ever alias live state.
func (s *Session) Clone() *Session {
	c := *s
	c.Guesses = append([]string(nil), s.Guesses...)
	c.Results = make([][]Mark, len(s.Results))
	for i, marks := range s.Results {
		c.Results[i] = append([]Mark(nil), marks...)
	}
	return &c
}

// GuessesRemaining reports how many guesses the player has left.
func (s *Session) GuessesRemaining() int {
	return s.WordLength - len(s.Guesses)
}

// setMessage records a user-facing status line on the session.
func (s *Session) setMessage(msg, msgType string) {
	s.LastMsg = msg
	s.MsgType = msgType
}

// Round summarizes a completed round for the statistics aggregator.
type Round struct {
	Won        bool
	Guesses    int
	Duration   time.Duration
	Difficulty Difficulty
}

// GuessResult is the outcome of an accepted guess.
type GuessResult struct {
	Guess     string `json:"guess"`
	Marks     []Mark `json:"result"`
	State     State  `json:"gameState"`
	Remaining int    `json:"guessesRemaining"`
	Message   string `json:"message"`
}
