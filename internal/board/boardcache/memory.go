// Package boardcache provides caching decorators for the board's candidate
// summary source, cutting the per-board denormalization fan-out down to the
// candidates not seen recently.
package boardcache

import (
	"context"
	"sync"
	"time"

	"talentboard/internal/board"
	"talentboard/internal/session"
)

type memoryEntry struct {
	summary   board.Summary
	expiresAt time.Time
}

// Memory is an in-process TTL cache in front of another Source.
type Memory struct {
	next board.Source
	ttl  time.Duration

	mu      sync.Mutex
	entries map[int]memoryEntry

	clock func() time.Time
}

func NewMemory(next board.Source, ttl time.Duration) *Memory {
	return &Memory{
		next:    next,
		ttl:     ttl,
		entries: make(map[int]memoryEntry),
		clock:   time.Now,
	}
}

func (m *Memory) Lookup(ctx context.Context, sess *session.Session, candidateID int) (board.Summary, error) {
	now := m.clock()

	m.mu.Lock()
	entry, ok := m.entries[candidateID]
	if ok && now.Before(entry.expiresAt) {
		m.mu.Unlock()
		return entry.summary, nil
	}
	if ok {
		delete(m.entries, candidateID)
	}
	m.mu.Unlock()

	summary, err := m.next.Lookup(ctx, sess, candidateID)
	if err != nil {
		return board.Summary{}, err
	}

	m.mu.Lock()
	m.entries[candidateID] = memoryEntry{summary: summary, expiresAt: now.Add(m.ttl)}
	m.mu.Unlock()
	return summary, nil
}
