package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"talentboard/internal/domain/headhunter"
	"talentboard/internal/session"
)

type headhunterListEnvelope struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	Data       []headhunter.Headhunter `json:"data"`
	Pagination Pagination              `json:"pagination"`
}

type headhunterDetailEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    headhunter.Headhunter `json:"data"`
}

func (c *Client) ListHeadhunters(ctx context.Context, sess *session.Session, page, pageSize int) ([]headhunter.Headhunter, Pagination, error) {
	var parsed headhunterListEnvelope
	if err := c.do(ctx, http.MethodGet, "/headhunters", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list headhunters: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) SearchHeadhunters(ctx context.Context, sess *session.Session, text string, page, pageSize int) ([]headhunter.Headhunter, Pagination, error) {
	var parsed headhunterListEnvelope
	if err := c.do(ctx, http.MethodGet, "/headhunters/search", searchQuery(text, page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("search headhunters: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) GetHeadhunter(ctx context.Context, sess *session.Session, headhunterID int) (headhunter.Headhunter, error) {
	var parsed headhunterDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/headhunters/"+strconv.Itoa(headhunterID), nil, sess, nil, &parsed); err != nil {
		return headhunter.Headhunter{}, fmt.Errorf("get headhunter: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) CreateHeadhunter(ctx context.Context, sess *session.Session, input headhunter.CreateInput) (headhunter.Headhunter, error) {
	var parsed headhunterDetailEnvelope
	if err := c.do(ctx, http.MethodPost, "/headhunters", nil, sess, input, &parsed); err != nil {
		return headhunter.Headhunter{}, fmt.Errorf("create headhunter: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) UpdateHeadhunter(ctx context.Context, sess *session.Session, headhunterID int, input headhunter.UpdateInput) (headhunter.Headhunter, error) {
	var parsed headhunterDetailEnvelope
	if err := c.do(ctx, http.MethodPut, "/headhunters/"+strconv.Itoa(headhunterID), nil, sess, input, &parsed); err != nil {
		return headhunter.Headhunter{}, fmt.Errorf("update headhunter: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) DeleteHeadhunter(ctx context.Context, sess *session.Session, headhunterID int) error {
	if err := c.do(ctx, http.MethodDelete, "/headhunters/"+strconv.Itoa(headhunterID), nil, sess, nil, nil); err != nil {
		return fmt.Errorf("delete headhunter: %w", err)
	}
	return nil
}
