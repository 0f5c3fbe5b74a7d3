package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionEntry struct {
	username  string
	expiresAt time.Time
}

// SessionStore maps opaque tokens to logged-in usernames with a fixed TTL.
// Expired entries are dropped lazily on read and by the background sweeper.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
}

// TTL returns the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Create establishes a new session for username and returns its token.
func (s *SessionStore) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = sessionEntry{
		username:  username,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Lookup returns the username bound to token. Expired sessions are removed
// and reported as absent.
func (s *SessionStore) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", false
	}
	return entry.username, true
}

// Destroy removes the session for token, reporting whether one existed.
func (s *SessionStore) Destroy(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok {
		return false
	}
	delete(s.sessions, token)
	// An expired session no longer counts as logged in.
	return !time.Now().After(entry.expiresAt)
}

// Sweep removes all expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of live (unswept) sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper evicts expired sessions on the given interval until ctx is
// cancelled.
func (s *SessionStore) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				zap.L().Debug("Swept expired sessions", zap.Int("removed", removed))
			}
		}
	}
}
