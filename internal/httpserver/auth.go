// internal/httpserver/auth.go
//
// Authentication for the WordPlay backend: signup/login with bcrypt
// password hashes, HS256 JWTs delivered as cookies (or accepted as bearer
// tokens), and a stable anonymous cookie identity for guests. Anonymous
// stats are claimed by a fresh account on signup so a guest's history
// survives registration.

package httpserver

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// authUser is placed into request context by auth middleware.
type authUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ctxUserKey is the context key type for storing authUser.
type ctxUserKey struct{}

const anonCookieName = "wordplay_anon"

// ------------------------------ routes -------------------------------------

type signupReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// mountAuthRoutes registers /auth/* endpoints.
func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.With(s.requireAuth()).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		if me == nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(me)
	})
}

// handleSignup creates a new user, signs a JWT, sets the auth cookie, and
// claims any anonymous stats for the new account.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body signupReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	u, err := s.createUser(body.Username, body.Password)
	if err != nil {
		if err.Error() == "username taken" {
			http.Error(w, `{"error":"Username taken"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)

	if anon := s.ensureAnonID(w, r); anon != "" {
		if err := s.stats.Claim(r.Context(), anon, u.ID); err != nil {
			log.Warn().Err(err).Str("user", u.ID).Msg("claim anonymous stats")
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"id": u.ID, "username": u.Username, "createdAt": u.CreatedAt})
}

// handleLogin authenticates a user and sets the auth cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	u, err := s.findUserByUsername(strings.TrimSpace(body.Username))
	if err != nil || !checkPassword(u.PasswordHash, body.Password) {
		http.Error(w, `{"error":"Invalid username or password"}`, http.StatusUnauthorized)
		return
	}
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": u.ID, "username": u.Username})
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ---------------------------- middleware -----------------------------------

// withOptionalAuth decorates requests with user context if a valid JWT is
// present. It never 401s; used for routes where guests are allowed.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := s.bearerOrCookie(r); tok != "" {
				claims := jwt.MapClaims{}
				if t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
					return []byte(s.cfg.JWTSecret), nil
				}); err == nil && t.Valid {
					if id, _ := claims["id"].(string); id != "" {
						if u, err := s.findUserByID(id); err == nil {
							ctx := context.WithValue(r.Context(), ctxUserKey{}, &authUser{ID: u.ID, Username: u.Username})
							r = r.WithContext(ctx)
						}
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth enforces a valid JWT and injects authUser into request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := s.bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(s.cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			id, _ := claims["id"].(string)
			username, _ := claims["username"].(string)
			if id == "" || username == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			// Ensure user still exists
			if _, err := s.findUserByID(id); err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserKey{}, &authUser{ID: id, Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ensureAnonID returns an existing anon cookie or sets a new one, giving
// guests a stable player identity.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	sameSite := http.SameSiteLaxMode
	if s.cfg.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: sameSite,
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// ------------------------ users table helpers ------------------------------

// userRow matches the users table shape.
type userRow struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// createUser validates input, checks uniqueness, hashes the password, and
// inserts a new user.
func (s *Server) createUser(username, pw string) (*userRow, error) {
	username = strings.TrimSpace(username)
	if err := validateSignup(username, pw); err != nil {
		return nil, err
	}
	var exists int
	_ = s.db.QueryRow(`SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if exists == 1 {
		return nil, errors.New("username taken")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	id := genID()
	if _, err := s.db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		id, username, string(h), now.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	return &userRow{ID: id, Username: username, PasswordHash: string(h), CreatedAt: now}, nil
}

func (s *Server) findUserByUsername(username string) (*userRow, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at
	                      FROM users WHERE lower(username)=lower(?)`, username)
	return scanUser(row)
}
func (s *Server) findUserByID(id string) (*userRow, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at
	                      FROM users WHERE id=?`, id)
	return scanUser(row)
}

// scanUser converts a *sql.Row into a userRow.
func scanUser(row *sql.Row) (*userRow, error) {
	var u userRow
	var created string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		return nil, err
	}
	t, _ := time.Parse(time.RFC3339, created)
	u.CreatedAt = t
	return &u, nil
}

// checkPassword is a bcrypt verifier.
func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return errors.New("username must be 3-24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return errors.New("password must be 8-100 chars")
	}
	return nil
}

// ------------------------------ JWT & cookies ------------------------------

// signJWT creates an HS256 JWT with id/username and configured expiry.
func (s *Server) signJWT(id, username string) (string, time.Time, error) {
	exp := time.Now().Add(time.Duration(s.cfg.JWTExpiresDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// setAuthCookie writes the auth token cookie.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// clearAuthCookie deletes the auth token cookie.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: sameSite,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	str := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(str) > 22 {
		return str[:22]
	}
	return str
}
