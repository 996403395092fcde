// Package session issues and resolves opaque session tokens backed by a
// persisted keyed store with a fixed expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"jobpilot-backend/shared/config"
	utils "jobpilot-backend/shared/utils/auth"
)

// CookieName is the client cookie holding the session token.
const CookieName = "jobpilot_session"

// Manager maps opaque session tokens to authenticated user ids.
type Manager interface {
	// Create issues a new token for the user and persists the mapping.
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Resolve returns the user id for a token, or ok=false when the token
	// is missing or expired.
	Resolve(ctx context.Context, token string) (uuid.UUID, bool, error)
	// Destroy removes the token mapping.
	Destroy(ctx context.Context, token string) error
	// TTL reports the session lifetime, used for the cookie max-age.
	TTL() time.Duration
}

// RedisManager stores session tokens in Redis under session:<token> with
// the configured TTL. Each token is written once at login and only read
// until logout, so there are no read-modify-write races.
type RedisManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisManager connects to Redis and returns a session manager. The
// connection is verified with a ping before use.
func NewRedisManager(cfg *config.Config) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("✅ Session store connected - %s DB:%d", cfg.RedisAddr(), cfg.RedisDB)

	return &RedisManager{
		client: client,
		ttl:    cfg.SessionTTL(),
	}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (m *RedisManager) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := m.client.Set(ctx, sessionKey(token), userID.String(), m.ttl).Err(); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	return token, nil
}

func (m *RedisManager) Resolve(ctx context.Context, token string) (uuid.UUID, bool, error) {
	if token == "" {
		return uuid.Nil, false, nil
	}

	value, err := m.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("resolve session: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt session value: %w", err)
	}

	return userID, true, nil
}

func (m *RedisManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (m *RedisManager) TTL() time.Duration {
	return m.ttl
}

// Close releases the Redis connection.
func (m *RedisManager) Close() error {
	return m.client.Close()
}
