package board

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"talentboard/internal/session"
)

var ErrNotOpen = errors.New("board not open")

type registryKey struct {
	sessionID string
	projectID int
}

// Registry tracks the boards open in this gateway process, one per
// session+project. A board is owned by the session that opened it; other
// sessions get their own instance.
type Registry struct {
	client Client
	source Source
	logger zerolog.Logger

	mu     sync.Mutex
	boards map[registryKey]*Board
}

func NewRegistry(client Client, source Source, logger zerolog.Logger) *Registry {
	return &Registry{
		client: client,
		source: source,
		logger: logger,
		boards: make(map[registryKey]*Board),
	}
}

// Open loads a fresh board for the session and project, replacing any board
// the session already had open for it.
func (r *Registry) Open(ctx context.Context, sessionID string, sess *session.Session, projectID int) (*Board, error) {
	opened := New(r.client, r.source, sess, projectID, r.logger)
	if err := opened.Load(ctx); err != nil {
		return nil, err
	}

	key := registryKey{sessionID: sessionID, projectID: projectID}
	r.mu.Lock()
	defer r.mu.Unlock()
	if previous, ok := r.boards[key]; ok {
		previous.Close()
	}
	r.boards[key] = opened
	return opened, nil
}

func (r *Registry) Get(sessionID string, projectID int) (*Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	opened, ok := r.boards[registryKey{sessionID: sessionID, projectID: projectID}]
	if !ok {
		return nil, ErrNotOpen
	}
	return opened, nil
}

func (r *Registry) Close(sessionID string, projectID int) {
	key := registryKey{sessionID: sessionID, projectID: projectID}
	r.mu.Lock()
	defer r.mu.Unlock()
	if opened, ok := r.boards[key]; ok {
		opened.Close()
		delete(r.boards, key)
	}
}

// CloseSession drops every board the session had open, e.g. on logout.
func (r *Registry) CloseSession(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, opened := range r.boards {
		if key.sessionID == sessionID {
			opened.Close()
			delete(r.boards, key)
		}
	}
}
