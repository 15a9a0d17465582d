// internal/httpserver/server.go
//
// HTTP wiring for the WordPlay backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth; guests play under an anonymous cookie):
//     POST /game/new, POST /game/guess, POST /game/hint, GET /game/state.
//   - Stats endpoint: GET /stats/me (works for guests too).
//   - Daily challenge endpoints under /daily.
//   - Auth endpoints: /auth/signup, /auth/login, /auth/logout, /auth/me.
//
// Every operation answers with either a definite outcome or a structured
// JSON rejection; engine internals never panic through to the client.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wordplaylabs/wordplay/internal/config"
	"github.com/wordplaylabs/wordplay/internal/game"
	"github.com/wordplaylabs/wordplay/internal/stats"
	"github.com/wordplaylabs/wordplay/internal/words"
)

// Server bundles router, engine, stats and DB handle.
type Server struct {
	r      *chi.Mux
	cfg    *config.Config
	engine *game.Engine
	stats  *stats.Recorder
	db     *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, engine *game.Engine, rec *stats.Recorder, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, engine: engine, stats: rec, db: db}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	// Generous bound: a cold /game/new may walk the whole provider cascade
	// before falling back to the local lists.
	s.r.Use(chimw.Timeout(75 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.corsFromConfig)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordplay","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/hint","GET /game/state","GET /stats/me","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"dailyAnswers": len(words.Answers())})
	})

	// Game + stats endpoints — optional auth (guests play anonymously).
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
		r.Post("/game/hint", s.handleHint)
		r.Get("/game/state", s.handleState)
		r.Get("/stats/me", s.handleStats)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	// JSON 404 for easier debugging.
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromConfig enables credentialed CORS for the configured origin.
func (s *Server) corsFromConfig(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ helpers ------------------------------------

// playerID resolves the acting player: the authenticated user ID when
// logged in, otherwise a stable anonymous cookie ID.
func (s *Server) playerID(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return s.ensureAnonID(w, r)
}

// writeRejection maps a game rejection onto an HTTP error response.
// Missing-game rejections are conflicts (retry after /game/new); everything
// else is a plain bad request.
func writeRejection(w http.ResponseWriter, rej *game.Rejection) {
	status := http.StatusBadRequest
	if rej.Kind == game.RejectNoGame {
		status = http.StatusConflict
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": rej.Reason,
		"kind":  string(rej.Kind),
	})
}
