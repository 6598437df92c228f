package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"talentboard/internal/domain/candidate"
	"talentboard/internal/session"
)

type candidateListEnvelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       []candidate.Candidate `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

type candidateDetailEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    candidate.Candidate `json:"data"`
}

// CandidateFilter narrows a candidate search; zero values are omitted.
type CandidateFilter struct {
	ExpertiseID  int
	FieldID      int
	AreaID       int
	LevelID      int
	HeadhunterID int
}

func (c *Client) ListCandidates(ctx context.Context, sess *session.Session, page, pageSize int) ([]candidate.Candidate, Pagination, error) {
	var parsed candidateListEnvelope
	if err := c.do(ctx, http.MethodGet, "/candidates", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list candidates: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) SearchCandidates(ctx context.Context, sess *session.Session, text string, filter CandidateFilter, page, pageSize int) ([]candidate.Candidate, Pagination, error) {
	query := searchQuery(text, page, pageSize)
	if filter.ExpertiseID > 0 {
		query.Set("expertise_id", strconv.Itoa(filter.ExpertiseID))
	}
	if filter.FieldID > 0 {
		query.Set("field_id", strconv.Itoa(filter.FieldID))
	}
	if filter.AreaID > 0 {
		query.Set("area_id", strconv.Itoa(filter.AreaID))
	}
	if filter.LevelID > 0 {
		query.Set("level_id", strconv.Itoa(filter.LevelID))
	}
	if filter.HeadhunterID > 0 {
		query.Set("headhunter_id", strconv.Itoa(filter.HeadhunterID))
	}

	var parsed candidateListEnvelope
	if err := c.do(ctx, http.MethodGet, "/candidates/search", query, sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("search candidates: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) GetCandidate(ctx context.Context, sess *session.Session, candidateID int) (candidate.Candidate, error) {
	var parsed candidateDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/candidates/"+strconv.Itoa(candidateID), nil, sess, nil, &parsed); err != nil {
		return candidate.Candidate{}, fmt.Errorf("get candidate: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) CreateCandidate(ctx context.Context, sess *session.Session, input candidate.CreateInput) (candidate.Candidate, error) {
	var parsed candidateDetailEnvelope
	if err := c.do(ctx, http.MethodPost, "/candidates", nil, sess, input, &parsed); err != nil {
		return candidate.Candidate{}, fmt.Errorf("create candidate: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) UpdateCandidate(ctx context.Context, sess *session.Session, candidateID int, input candidate.UpdateInput) (candidate.Candidate, error) {
	var parsed candidateDetailEnvelope
	if err := c.do(ctx, http.MethodPut, "/candidates/"+strconv.Itoa(candidateID), nil, sess, input, &parsed); err != nil {
		return candidate.Candidate{}, fmt.Errorf("update candidate: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) DeleteCandidate(ctx context.Context, sess *session.Session, candidateID int) error {
	if err := c.do(ctx, http.MethodDelete, "/candidates/"+strconv.Itoa(candidateID), nil, sess, nil, nil); err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}
