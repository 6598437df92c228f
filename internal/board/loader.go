package board

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	// loadPageSize is large enough to pull a whole project's nominees in
	// one page.
	loadPageSize = 100

	// lookupConcurrency bounds the candidate fan-out so a large board does
	// not burst-open connections against the upstream.
	lookupConcurrency = 4

	placeholderCandidateName = "Không tìm thấy"
)

// Load replaces the working set with a full fetch for the project, joining
// each nominee with its candidate's name and phone. Individual candidate
// lookups failing degrade that card to a placeholder instead of aborting
// the load.
func (b *Board) Load(ctx context.Context) error {
	nominees, _, err := b.client.ListNomineesByProject(ctx, b.sess, b.projectID, 1, loadPageSize)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}

	cards := make([]Card, len(nominees))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(lookupConcurrency)
	for i := range nominees {
		group.Go(func() error {
			cards[i] = Card{Nominee: nominees[i]}
			summary, err := b.source.Lookup(gctx, b.sess, nominees[i].CandidateID)
			if err != nil {
				b.logger.Warn().Err(err).Int("candidate_id", nominees[i].CandidateID).Msg("candidate lookup failed, using placeholder")
				cards[i].CandidateName = placeholderCandidateName
				return nil
			}
			cards[i].CandidateName = summary.Name
			cards[i].CandidatePhone = summary.Phone
			return nil
		})
	}
	_ = group.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.cards = cards
	return nil
}
