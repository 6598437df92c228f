package api

import (
	"context"
	"fmt"
	"net/http"

	"talentboard/internal/domain/catalog"
	"talentboard/internal/session"
)

type expertiseListEnvelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       []catalog.Expertise `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

type fieldListEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       []catalog.Field `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type areaListEnvelope struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Data       []catalog.Area `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type levelListEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       []catalog.Level `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

func (c *Client) ListExpertises(ctx context.Context, sess *session.Session, page, pageSize int) ([]catalog.Expertise, Pagination, error) {
	var parsed expertiseListEnvelope
	if err := c.do(ctx, http.MethodGet, "/expertises/", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list expertises: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) ListFields(ctx context.Context, sess *session.Session, page, pageSize int) ([]catalog.Field, Pagination, error) {
	var parsed fieldListEnvelope
	if err := c.do(ctx, http.MethodGet, "/fields", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list fields: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) ListAreas(ctx context.Context, sess *session.Session, page, pageSize int) ([]catalog.Area, Pagination, error) {
	var parsed areaListEnvelope
	if err := c.do(ctx, http.MethodGet, "/areas/", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list areas: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) ListLevels(ctx context.Context, sess *session.Session, page, pageSize int) ([]catalog.Level, Pagination, error) {
	var parsed levelListEnvelope
	if err := c.do(ctx, http.MethodGet, "/levels/", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list levels: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}
