// internal/httpserver/routes_game.go
//
// Handlers for the four session operations: start a game, submit a guess,
// request a hint, and read current state — plus the stats readout. All run
// with optional auth; guests play under an anonymous cookie identity.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordplay/internal/game"
)

// newGameReq is the payload for POST /game/new.
type newGameReq struct {
	WordLength int    `json:"wordLength"`
	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
}

// handleNewGame starts (or restarts) the caller's round.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	pid := s.playerID(w, r)
	sess, err := s.engine.StartNewGame(r.Context(), pid, req.WordLength, req.Language, game.ParseDifficulty(req.Difficulty))
	if err != nil {
		var rej *game.Rejection
		if errors.As(err, &rej) {
			writeRejection(w, rej)
			return
		}
		log.Error().Err(err).Str("player", pid).Msg("start game failed")
		http.Error(w, `{"error":"start_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess submits one guess for the caller's active round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	pid := s.playerID(w, r)
	res, err := s.engine.MakeGuess(r.Context(), pid, req.Guess)
	if err != nil {
		var rej *game.Rejection
		if errors.As(err, &rej) {
			writeRejection(w, rej)
			return
		}
		log.Error().Err(err).Str("player", pid).Msg("guess failed")
		http.Error(w, `{"error":"guess_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleHint returns the hint for the caller's active round.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	pid := s.playerID(w, r)
	hint, err := s.engine.GetHint(r.Context(), pid)
	if err != nil {
		var rej *game.Rejection
		if errors.As(err, &rej) {
			writeRejection(w, rej)
			return
		}
		log.Error().Err(err).Str("player", pid).Msg("hint failed")
		http.Error(w, `{"error":"hint_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"hint": hint})
}

// handleState reads the caller's current session for display.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	pid := s.playerID(w, r)
	sess, err := s.engine.CurrentSession(r.Context(), pid)
	if err != nil {
		log.Error().Err(err).Str("player", pid).Msg("state read failed")
		http.Error(w, `{"error":"state_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// handleStats returns the caller's full statistics record.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	pid := s.playerID(w, r)
	st, err := s.stats.PlayerStats(r.Context(), pid)
	if err != nil {
		log.Error().Err(err).Str("player", pid).Msg("stats read failed")
		http.Error(w, `{"error":"stats_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(st)
}
