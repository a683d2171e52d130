package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions
	SessionKeyPrefix = "session:"
	// UserSessionKeyPrefix is the Redis key prefix for email->session mapping
	UserSessionKeyPrefix = "user_session:"
)

// SessionStore holds the "current identity" pointer: a bearer token mapped
// to the signed-in email. Exactly one session per email; creating a new one
// invalidates the old.
type SessionStore interface {
	Create(ctx context.Context, email string) (string, error)
	Resolve(ctx context.Context, token string) (string, bool, error)
	Invalidate(ctx context.Context, token string) error
}

// RedisSessions stores sessions in Redis with a 7-day TTL.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func newSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

// Create makes a new session for email. Any existing session for the same
// email is invalidated first so the 7-day timer resets from this sign-in.
func (s *RedisSessions) Create(ctx context.Context, email string) (string, error) {
	s.invalidateForEmail(ctx, email)

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	sessionKey := SessionKeyPrefix + token
	userSessionKey := UserSessionKeyPrefix + email

	if err := s.client.Set(ctx, sessionKey, email, SessionDuration).Err(); err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, userSessionKey, token, SessionDuration).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns the email for a session token, with ok=false for missing
// or expired tokens.
func (s *RedisSessions) Resolve(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	email, err := s.client.Get(ctx, SessionKeyPrefix+token).Result()
	if err != nil {
		return "", false, nil
	}
	return email, true, nil
}

// Invalidate removes a session (sign-out).
func (s *RedisSessions) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionKey := SessionKeyPrefix + token
	email, err := s.client.Get(ctx, sessionKey).Result()
	if err == nil && email != "" {
		s.client.Del(ctx, UserSessionKeyPrefix+email)
	}
	return s.client.Del(ctx, sessionKey).Err()
}

func (s *RedisSessions) invalidateForEmail(ctx context.Context, email string) {
	userSessionKey := UserSessionKeyPrefix + email
	token, err := s.client.Get(ctx, userSessionKey).Result()
	if err == nil && token != "" {
		s.client.Del(ctx, SessionKeyPrefix+token)
	}
	s.client.Del(ctx, userSessionKey)
}

// MemorySessions is an in-process SessionStore for tests and the memory
// store backend. Tokens never expire.
type MemorySessions struct {
	mu      sync.Mutex
	byToken map[string]string
	byEmail map[string]string
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{byToken: make(map[string]string), byEmail: make(map[string]string)}
}

func (s *MemorySessions) Create(ctx context.Context, email string) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byEmail[email]; ok {
		delete(s.byToken, old)
	}
	s.byToken[token] = email
	s.byEmail[email] = token
	return token, nil
}

func (s *MemorySessions) Resolve(ctx context.Context, token string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.byToken[token]
	return email, ok, nil
}

func (s *MemorySessions) Invalidate(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if email, ok := s.byToken[token]; ok {
		delete(s.byEmail, email)
		delete(s.byToken, token)
	}
	return nil
}
