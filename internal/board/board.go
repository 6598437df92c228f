// Package board implements the nominee pipeline board: the nominees of one
// project partitioned into status columns, with drag-driven status
// transitions applied optimistically and reconciled against the upstream API.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"talentboard/internal/api"
	"talentboard/internal/domain/nominee"
	"talentboard/internal/session"
)

// ErrClosed is returned when an operation reaches a board that was already
// closed; late upstream responses are dropped rather than applied.
var ErrClosed = errors.New("board closed")

// Client is the slice of the upstream API the board needs.
type Client interface {
	ListNomineesByProject(ctx context.Context, sess *session.Session, projectID, page, pageSize int) ([]nominee.Nominee, api.Pagination, error)
	CreateNominee(ctx context.Context, sess *session.Session, input nominee.CreateInput) (nominee.Nominee, error)
	UpdateNominee(ctx context.Context, sess *session.Session, nomineeID int, input nominee.UpdateInput) (nominee.Nominee, error)
	DeleteNominee(ctx context.Context, sess *session.Session, nomineeID int) error
}

// Card is a nominee enriched with the joined candidate display fields.
// The join is client-side only and never written back upstream.
type Card struct {
	nominee.Nominee
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidatePhone string `json:"candidate_phone,omitempty"`
}

// Column is the derived view of one pipeline stage. It owns no state: its
// membership is recomputed from the working set on every read.
type Column struct {
	Status nominee.Status `json:"status"`
	Title  string         `json:"title"`
	Cards  []Card         `json:"cards"`
}

// Board owns the working set of nominees for one project. All mutations go
// through Load, CompleteDrag, Nominate and Remove.
type Board struct {
	client    Client
	source    Source
	sess      *session.Session
	projectID int
	logger    zerolog.Logger

	mu              sync.RWMutex
	cards           []Card
	activeDragID    int
	draggedSnapshot *Card
	closed          bool
}

func New(client Client, source Source, sess *session.Session, projectID int, logger zerolog.Logger) *Board {
	return &Board{
		client:    client,
		source:    source,
		sess:      sess,
		projectID: projectID,
		logger:    logger.With().Int("project_id", projectID).Logger(),
	}
}

func (b *Board) ProjectID() int {
	return b.projectID
}

// Cards returns a copy of the working set.
func (b *Board) Cards() []Card {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Columns partitions the working set into the six pipeline stages. Every
// card lands in exactly the column matching its status.
func (b *Board) Columns() []Column {
	b.mu.RLock()
	defer b.mu.RUnlock()

	columns := make([]Column, 0, len(nominee.AllStatuses))
	for _, status := range nominee.AllStatuses {
		column := Column{Status: status, Title: status.Label(), Cards: []Card{}}
		for _, card := range b.cards {
			if card.Status == status {
				column.Cards = append(column.Cards, card)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// BeginDrag records the dragged card and snapshots it for the drag preview.
// The snapshot doubles as the pre-image for rollback.
func (b *Board) BeginDrag(nomineeID int) (Card, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return Card{}, false
	}
	for _, card := range b.cards {
		if card.NomineeID == nomineeID {
			snapshot := card
			b.activeDragID = nomineeID
			b.draggedSnapshot = &snapshot
			return snapshot, true
		}
	}
	return Card{}, false
}

// CancelDrag drops any drag in progress without touching the working set.
func (b *Board) CancelDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activeDragID = 0
	b.draggedSnapshot = nil
}

// ActiveDrag reports the card currently being dragged, if any.
func (b *Board) ActiveDrag() (Card, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.draggedSnapshot == nil {
		return Card{}, false
	}
	return *b.draggedSnapshot, true
}

// CompleteDrag interprets a drop onto target as a status-change intent.
// Dropping outside any column or onto the card's own column is a no-op.
// Otherwise the card moves optimistically before the upstream update is
// issued; on upstream failure the move is reverted from the snapshot unless
// a later drag already won the card.
func (b *Board) CompleteDrag(ctx context.Context, nomineeID int, target nominee.Status) error {
	b.mu.Lock()
	b.activeDragID = 0
	b.draggedSnapshot = nil
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	if target == "" {
		b.mu.Unlock()
		return nil
	}
	if !target.Valid() {
		b.mu.Unlock()
		return fmt.Errorf("unknown pipeline status %q", target)
	}
	idx := b.indexLocked(nomineeID)
	if idx < 0 {
		b.mu.Unlock()
		return nil
	}
	previous := b.cards[idx].Status
	if previous == target {
		b.mu.Unlock()
		return nil
	}
	b.cards[idx].Status = target
	b.mu.Unlock()

	if _, err := b.client.UpdateNominee(ctx, b.sess, nomineeID, nominee.StatusUpdate(target)); err != nil {
		b.revert(nomineeID, previous, target)
		return fmt.Errorf("update nominee status: %w", err)
	}
	return nil
}

// revert restores the pre-drag status, but only if the card still carries
// the optimistic one: a racing drag that already moved it again wins.
func (b *Board) revert(nomineeID int, previous, optimistic nominee.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	idx := b.indexLocked(nomineeID)
	if idx >= 0 && b.cards[idx].Status == optimistic {
		b.cards[idx].Status = previous
	}
}

// Nominate creates a nominee upstream and appends it to the working set
// without reloading the board. The candidate join is soft: a failed lookup
// degrades the new card to placeholder text.
func (b *Board) Nominate(ctx context.Context, input nominee.CreateInput) (Card, error) {
	input.ProjectID = b.projectID
	if input.Status == "" {
		input.Status = nominee.StatusProposed
	}
	if !input.Status.Valid() {
		return Card{}, fmt.Errorf("unknown pipeline status %q", input.Status)
	}

	created, err := b.client.CreateNominee(ctx, b.sess, input)
	if err != nil {
		return Card{}, fmt.Errorf("create nominee: %w", err)
	}

	card := Card{Nominee: created}
	summary, err := b.source.Lookup(ctx, b.sess, created.CandidateID)
	if err != nil {
		b.logger.Warn().Err(err).Int("candidate_id", created.CandidateID).Msg("candidate lookup failed, using placeholder")
		card.CandidateName = placeholderCandidateName
	} else {
		card.CandidateName = summary.Name
		card.CandidatePhone = summary.Phone
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return Card{}, ErrClosed
	}
	b.cards = append(b.cards, card)
	return card, nil
}

// Remove deletes a nominee upstream and drops it from the working set.
func (b *Board) Remove(ctx context.Context, nomineeID int) error {
	if err := b.client.DeleteNominee(ctx, b.sess, nomineeID); err != nil {
		return fmt.Errorf("delete nominee: %w", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	idx := b.indexLocked(nomineeID)
	if idx >= 0 {
		b.cards = append(b.cards[:idx], b.cards[idx+1:]...)
	}
	return nil
}

// Close marks the board unmounted. In-flight responses arriving afterwards
// leave the working set untouched.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.activeDragID = 0
	b.draggedSnapshot = nil
}

func (b *Board) indexLocked(nomineeID int) int {
	for i := range b.cards {
		if b.cards[i].NomineeID == nomineeID {
			return i
		}
	}
	return -1
}
