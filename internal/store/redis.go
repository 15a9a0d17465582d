// internal/store/redis.go
//
// Redis implementation of the session store. Each player's session is one
// JSON blob under a prefixed key, so sessions survive restarts and can be
// shared between nodes. Writes are last-writer-wins, which is fine: each
// player's session is mutated only under that player's engine lock.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wordplaylabs/wordplay/internal/game"
)

const sessionKeyPrefix = "wordplay:session:"

// RedisConfig holds dependencies for the Redis session store.
type RedisConfig struct {
	Client *redis.Client
}

type redisStore struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed session store and verifies connectivity.
func NewRedis(cfg *RedisConfig) (game.SessionStore, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := cfg.Client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &redisStore{client: cfg.Client}, nil
}

func sessionKey(playerID string) string {
	return sessionKeyPrefix + playerID
}

// GetOrCreate loads the player's session, creating an idle one when the key
// is missing.
func (r *redisStore) GetOrCreate(ctx context.Context, playerID string) (*game.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return game.NewSession(playerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s game.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// Save persists the session blob. No expiration: stats aside, the session
// is the player's live game and must not vanish mid-round.
func (r *redisStore) Save(ctx context.Context, s *game.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.PlayerID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
