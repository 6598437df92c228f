package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// expirySkew treats tokens as expired shortly before their actual expiry so
// an in-flight request never carries a token that dies mid-request.
const expirySkew = 5 * time.Minute

var ErrNotFound = errors.New("session not found")

// Session is the explicit bearer-token context injected into every upstream
// call. It is never read from ambient/global state.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.AccessToken == "" {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt.Add(-expirySkew))
}

// Store keeps gateway sessions in memory keyed by an opaque session id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session

	clock func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
		clock:    time.Now,
	}
}

// Put registers a session and returns its opaque id.
func (s *Store) Put(_ context.Context, sess Session) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return id, nil
}

// Get resolves a live session. Expired sessions are evicted and reported as
// missing, forcing a re-login.
func (s *Store) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.Expired(s.clock()) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	copied := sess
	return &copied, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
