package board

import (
	"context"

	"talentboard/internal/domain/candidate"
	"talentboard/internal/session"
)

// Summary is the slice of a candidate the board displays on a card.
type Summary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Source resolves candidate summaries for the denormalization join.
// Implementations may cache; failures are always soft for the caller.
type Source interface {
	Lookup(ctx context.Context, sess *session.Session, candidateID int) (Summary, error)
}

// CandidateGetter is the single upstream call the API-backed source needs.
type CandidateGetter interface {
	GetCandidate(ctx context.Context, sess *session.Session, candidateID int) (candidate.Candidate, error)
}

type apiSource struct {
	client CandidateGetter
}

// NewAPISource returns the uncached Source hitting the upstream candidate
// endpoint directly.
func NewAPISource(client CandidateGetter) Source {
	return &apiSource{client: client}
}

func (s *apiSource) Lookup(ctx context.Context, sess *session.Session, candidateID int) (Summary, error) {
	found, err := s.client.GetCandidate(ctx, sess, candidateID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Name: found.Name, Phone: found.Phone}, nil
}
