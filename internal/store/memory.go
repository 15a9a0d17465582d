// internal/store/memory.go
//
// In-memory implementation of the session store. Sessions are keyed by
// player identity and live for the process lifetime; suitable for
// single-node deployments and tests. See redis.go for the durable variant.
//
// Loads and saves exchange deep copies, mirroring the Redis store's
// marshal/unmarshal round trip: a session returned to one caller is never
// mutated by another, so display code may read it outside the engine lock.

package store

import (
	"context"
	"sync"

	"github.com/wordplaylabs/wordplay/internal/game"
)

// memory is a map-based game.SessionStore.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session // keyed by player ID
}

// NewMemory constructs an in-memory session store.
func NewMemory() game.SessionStore {
	return &memory{sessions: make(map[string]*game.Session)}
}

// GetOrCreate returns a copy of the player's session, creating an idle one
// on first access.
func (m *memory) GetOrCreate(ctx context.Context, playerID string) (*game.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[playerID]
	m.mu.RUnlock()
	if ok {
		return s.Clone(), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[playerID]; ok {
		return s.Clone(), nil
	}
	s = game.NewSession(playerID)
	m.sessions[playerID] = s
	return s.Clone(), nil
}

// Save stores a copy of the session, so later mutations by the caller never
// leak into the store.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.PlayerID] = s.Clone()
	return nil
}
