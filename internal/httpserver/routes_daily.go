// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily challenge mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         -> start or reuse today's daily round
//   - POST /daily/guess       -> submit a guess for today's round
//   - GET  /daily/leaderboard -> top results for today (or a given date)
//
// Each player can record one result per day (enforced by DB + in-memory
// session). Daily rounds run through the same anti-cheat validator and
// evaluator as regular rounds; the secret is the deterministic
// word-of-the-day drawn from the five-letter list.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/daily"
	"github.com/wordplaylabs/wordplay/internal/game"
	"github.com/wordplaylabs/wordplay/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailyRound // keyed by playerID|date
	mu       sync.Mutex             // guards sessions
}

// dailyRound holds transient in-memory state for an in-progress daily game.
// The embedded session gives daily rounds the full state machine (budget,
// anti-cheat, win/loss messages) for free.
type dailyRound struct {
	GameID    string
	Date      string
	WordIndex int
	Sess      *game.Session
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     s.cfg.DailySalt,
		sessions: make(map[string]*dailyRound),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// pruneLocked evicts rounds left over from previous dates, keeping the map
// bounded by the number of players active today. Caller holds mu.
func (d *dailyServer) pruneLocked(today string) {
	for key, round := range d.sessions {
		if round.Date != today {
			delete(d.sessions, key)
		}
	}
}

// todaysWord returns today's date key, deterministic word index, and secret.
func (d *dailyServer) todaysWord() (date string, idx int, secret string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	answers := words.Answers()
	if len(answers) == 0 {
		return date, 0, ""
	}
	idx = daily.WordIndex(now, d.salt, len(answers))
	return date, idx, answers[idx]
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID     string `json:"gameId"`
	Date       string `json:"date"`
	WordLength int    `json:"wordLength"`
	Played     bool   `json:"played"`
}

// handleNew creates or reuses the player's daily round for today.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	pid := d.srv.playerID(w, r)
	date, idx, secret := d.todaysWord()
	if secret == "" {
		http.Error(w, `{"error":"no_daily_word"}`, http.StatusInternalServerError)
		return
	}

	// One recorded result per player per day.
	if played, err := d.store.AlreadyPlayed(r.Context(), pid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, WordLength: len(secret), Played: true})
		return
	}

	key := pid + "|" + date
	d.mu.Lock()
	d.pruneLocked(date)
	round, ok := d.sessions[key]
	if !ok {
		sess := game.NewSession(pid)
		sess.StartRound(uuid.NewString(), secret, game.DefaultLanguage, game.DifficultyNormal, time.Now())
		round = &dailyRound{GameID: genID(), Date: date, WordIndex: idx, Sess: sess}
		d.sessions[key] = round
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		GameID:     round.GameID,
		Date:       date,
		WordLength: len(secret),
		Played:     false,
	})
}

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// handleGuess applies a guess to today's daily round and persists the
// result on a win.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	pid := d.srv.playerID(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	date, _, _ := d.todaysWord()
	key := pid + "|" + date
	d.mu.Lock()
	round, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || round.GameID != p.GameID {
		http.Error(w, `{"error":"no session"}`, http.StatusConflict)
		return
	}

	d.mu.Lock()
	res, rej := round.Sess.ApplyGuess(p.Guess, time.Now())
	d.mu.Unlock()
	if rej != nil {
		writeRejection(w, rej)
		return
	}

	if res.State == game.StateWon {
		elapsed := int(round.Sess.EndedAt.Sub(round.Sess.StartedAt).Seconds())
		err := d.store.InsertResult(r.Context(), daily.Result{
			PlayerID:       pid,
			Date:           date,
			WordIndex:      round.WordIndex,
			Guesses:        len(round.Sess.Guesses),
			ElapsedSeconds: elapsed,
		})
		if err != nil {
			log.Warn().Err(err).Str("player", pid).Msg("record daily result")
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleLeaderboard returns the top results for a date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.todaysWord()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "results": rows})
}
