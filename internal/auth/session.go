// Package auth implements the admin session gate. Sessions are opaque
// bearer tokens held in memory; there are no users or roles behind them,
// only a single yes/no admin flag.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions issues and validates admin session tokens. Safe for concurrent
// use by HTTP handlers.
type Sessions struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time // token -> expiry
	now    func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:    ttl,
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Issue creates a fresh token and returns it with its expiry time.
func (s *Sessions) Issue() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	expiry := s.now().Add(s.ttl)
	s.tokens[token] = expiry

	return token, expiry
}

// Valid reports whether token identifies a live session. Expired tokens are
// pruned as they are seen.
func (s *Sessions) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}

	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}

	return true
}

// Revoke ends the session for token. Revoking an unknown token is a no-op.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
}
