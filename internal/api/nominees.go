package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"talentboard/internal/domain/nominee"
	"talentboard/internal/session"
)

type nomineeListEnvelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       []nominee.Nominee `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type nomineeDetailEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    nominee.Nominee `json:"data"`
}

func (c *Client) ListNomineesByProject(ctx context.Context, sess *session.Session, projectID, page, pageSize int) ([]nominee.Nominee, Pagination, error) {
	var parsed nomineeListEnvelope
	path := "/nominees/by-project/" + strconv.Itoa(projectID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list nominees by project: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) ListNomineesByCandidate(ctx context.Context, sess *session.Session, candidateID, page, pageSize int) ([]nominee.Nominee, Pagination, error) {
	var parsed nomineeListEnvelope
	path := "/nominees/by-candidate/" + strconv.Itoa(candidateID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list nominees by candidate: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) GetNominee(ctx context.Context, sess *session.Session, nomineeID int) (nominee.Nominee, error) {
	var parsed nomineeDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/nominees/"+strconv.Itoa(nomineeID), nil, sess, nil, &parsed); err != nil {
		return nominee.Nominee{}, fmt.Errorf("get nominee: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) CreateNominee(ctx context.Context, sess *session.Session, input nominee.CreateInput) (nominee.Nominee, error) {
	var parsed nomineeDetailEnvelope
	if err := c.do(ctx, http.MethodPost, "/nominees", nil, sess, input, &parsed); err != nil {
		return nominee.Nominee{}, fmt.Errorf("create nominee: %w", err)
	}
	return parsed.Data, nil
}

// UpdateNominee issues a partial update; a drag move passes
// nominee.StatusUpdate so only {"status": ...} goes over the wire.
func (c *Client) UpdateNominee(ctx context.Context, sess *session.Session, nomineeID int, input nominee.UpdateInput) (nominee.Nominee, error) {
	var parsed nomineeDetailEnvelope
	if err := c.do(ctx, http.MethodPut, "/nominees/"+strconv.Itoa(nomineeID), nil, sess, input, &parsed); err != nil {
		return nominee.Nominee{}, fmt.Errorf("update nominee: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) DeleteNominee(ctx context.Context, sess *session.Session, nomineeID int) error {
	if err := c.do(ctx, http.MethodDelete, "/nominees/"+strconv.Itoa(nomineeID), nil, sess, nil, nil); err != nil {
		return fmt.Errorf("delete nominee: %w", err)
	}
	return nil
}
