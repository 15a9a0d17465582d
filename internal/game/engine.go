// internal/game/engine.go
//
// Engine orchestrates sessions: it owns the per-player locking, pulls words
// from the word source cascade (with static fallback), consults the hint
// provider, and hands completed rounds to the statistics recorder.
//
// Provider failures never surface to callers: a failed word fetch falls
// back to the local lists, a failed hint fetch yields a canned hint, and a
// failed stats write is logged without blocking the round outcome.

package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/clock"
)

// WordSource produces candidate secret words. FetchWord returns "" when
// every remote provider failed; FallbackWord always returns a usable word.
type WordSource interface {
	FetchWord(ctx context.Context, length int, language string) string
	FallbackWord(language string, length int) string
}

// HintSource produces a safe, word-hiding hint for a secret word. It never
// fails: on any provider error it returns a static fallback hint.
type HintSource interface {
	FetchHint(ctx context.Context, word, language string, difficulty Difficulty) string
}

// Recorder folds a completed round into the player's persistent statistics.
// Implementations absorb persistence errors (log-only).
type Recorder interface {
	RecordRound(ctx context.Context, playerID string, r Round)
}

// SessionStore is the keyed per-player session capability. Implementations
// exchange copies (or freshly unmarshaled values): a session returned by
// GetOrCreate is owned by the caller, and a session passed to Save must not
// be mutated by the store afterwards. That lets handlers read a returned
// session outside the engine lock.
type SessionStore interface {
	GetOrCreate(ctx context.Context, playerID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

var (
	ErrNilWordSource   = errors.New("word source cannot be nil")
	ErrNilHintSource   = errors.New("hint source cannot be nil")
	ErrNilRecorder     = errors.New("stats recorder cannot be nil")
	ErrNilSessionStore = errors.New("session store cannot be nil")
)

// Engine coordinates all session operations for all players. Safe for
// concurrent use: every operation runs under that player's lock so a guess
// is processed end-to-end (validate, evaluate, mutate, persist) before the
// next one is accepted.
type Engine struct {
	words    WordSource
	hints    HintSource
	stats    Recorder
	sessions SessionStore
	clock    clock.Clock

	locks sync.Map // playerID -> *sync.Mutex
}

// NewEngine wires an Engine from its collaborators.
func NewEngine(words WordSource, hints HintSource, stats Recorder, sessions SessionStore, clk clock.Clock) (*Engine, error) {
	if words == nil {
		return nil, ErrNilWordSource
	}
	if hints == nil {
		return nil, ErrNilHintSource
	}
	if stats == nil {
		return nil, ErrNilRecorder
	}
	if sessions == nil {
		return nil, ErrNilSessionStore
	}
	if clk == nil {
		clk = clock.Default{}
	}
	return &Engine{words: words, hints: hints, stats: stats, sessions: sessions, clock: clk}, nil
}

// lockFor returns the mutex serializing operations for one player.
func (e *Engine) lockFor(playerID string) *sync.Mutex {
	v, _ := e.locks.LoadOrStore(playerID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// StartNewGame begins a fresh round for the player. Valid from any state;
// the only failure is a word length outside [5,8], which leaves the session
// as it was. Word fetching cascades through the remote providers and falls
// back to the embedded lists, so starting a game cannot fail on network
// trouble.
func (e *Engine) StartNewGame(ctx context.Context, playerID string, wordLength int, language string, difficulty Difficulty) (*Session, error) {
	if wordLength == 0 {
		wordLength = DefaultWordLength
	}
	if wordLength < MinWordLength || wordLength > MaxWordLength {
		return nil, reject(RejectBadInput,
			fmt.Sprintf("Word length must be between %d and %d", MinWordLength, MaxWordLength))
	}
	if language == "" {
		language = DefaultLanguage
	}

	mu := e.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.sessions.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	word := e.words.FetchWord(ctx, wordLength, language)
	apisDown := word == ""
	if apisDown {
		word = e.words.FallbackWord(language, wordLength)
	}

	sess.StartRound(uuid.NewString(), word, language, difficulty, e.clock.Now())
	if apisDown {
		sess.setMessage("Using local word - APIs unavailable", "info")
	}

	// Hints are prefetched for easy and normal rounds; easy mode shows the
	// hint right away.
	if difficulty != DifficultyHard {
		sess.Hint = e.hints.FetchHint(ctx, sess.Secret, language, difficulty)
		if difficulty == DifficultyEasy && sess.Hint != "" {
			sess.setMessage(fmt.Sprintf("New %d letter game! Hint: %s", sess.WordLength, sess.Hint), "info")
		}
	}

	if err := e.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	log.Info().
		Str("player", playerID).
		Str("round", sess.RoundID).
		Int("length", sess.WordLength).
		Str("language", language).
		Str("difficulty", string(difficulty)).
		Bool("fallbackWord", apisDown).
		Msg("new game started, word hidden")
	return sess, nil
}

// MakeGuess processes one guess for the player. Rejections (no active
// round, anti-cheat) come back as *Rejection errors and do not consume a
// guess slot. On a terminal transition the completed round is recorded
// exactly once.
func (e *Engine) MakeGuess(ctx context.Context, playerID, guess string) (*GuessResult, error) {
	mu := e.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.sessions.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	res, rej := sess.ApplyGuess(guess, e.clock.Now())
	if rej != nil {
		// Status message changed even on rejection; keep the store in sync.
		_ = e.sessions.Save(ctx, sess)
		return nil, rej
	}

	if err := e.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	if sess.Finished() {
		e.stats.RecordRound(ctx, playerID, sess.CompletedRound())
		log.Info().
			Str("player", playerID).
			Str("round", sess.RoundID).
			Str("state", string(sess.State)).
			Int("guesses", len(sess.Guesses)).
			Msg("round finished")
	}
	return res, nil
}

// GetHint returns a hint for the active round, fetching it lazily. Hard
// mode gets a fixed "disabled" message instead of a hint.
func (e *Engine) GetHint(ctx context.Context, playerID string) (string, error) {
	mu := e.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := e.sessions.GetOrCreate(ctx, playerID)
	if err != nil {
		return "", err
	}
	if sess.State != StatePlaying {
		return "", reject(RejectNoGame, "No game in progress")
	}

	if sess.Difficulty == DifficultyHard {
		msg := "No hints available in hard mode! You're on your own."
		sess.setMessage(msg, "info")
		_ = e.sessions.Save(ctx, sess)
		return msg, nil
	}

	if sess.Hint == "" {
		sess.Hint = e.hints.FetchHint(ctx, sess.Secret, sess.Language, sess.Difficulty)
	}
	if sess.Hint != "" {
		sess.setMessage("Hint: "+sess.Hint, "info")
	} else {
		sess.setMessage("Sorry, no hint available for this word", "info")
	}
	if err := e.sessions.Save(ctx, sess); err != nil {
		return "", err
	}
	if sess.Hint == "" {
		return "No hint available", nil
	}
	return sess.Hint, nil
}

// CurrentSession returns the player's session for display purposes,
// creating an idle one for first-time players.
func (e *Engine) CurrentSession(ctx context.Context, playerID string) (*Session, error) {
	mu := e.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()
	return e.sessions.GetOrCreate(ctx, playerID)
}
