package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"talentboard/internal/domain/project"
	"talentboard/internal/session"
)

type projectListEnvelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       []project.Project `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type projectDetailEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    project.Project `json:"data"`
}

func (c *Client) ListProjects(ctx context.Context, sess *session.Session, page, pageSize int) ([]project.Project, Pagination, error) {
	var parsed projectListEnvelope
	if err := c.do(ctx, http.MethodGet, "/projects", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list projects: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) SearchProjects(ctx context.Context, sess *session.Session, text string, page, pageSize int) ([]project.Project, Pagination, error) {
	var parsed projectListEnvelope
	if err := c.do(ctx, http.MethodGet, "/projects/search", searchQuery(text, page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("search projects: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) ListProjectsByCustomer(ctx context.Context, sess *session.Session, customerID, page, pageSize int) ([]project.Project, Pagination, error) {
	var parsed projectListEnvelope
	path := "/projects/customer/" + strconv.Itoa(customerID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list projects by customer: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) GetProject(ctx context.Context, sess *session.Session, projectID int) (project.Project, error) {
	var parsed projectDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/projects/"+strconv.Itoa(projectID), nil, sess, nil, &parsed); err != nil {
		return project.Project{}, fmt.Errorf("get project: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) CreateProject(ctx context.Context, sess *session.Session, input project.CreateInput) (project.Project, error) {
	var parsed projectDetailEnvelope
	if err := c.do(ctx, http.MethodPost, "/projects", nil, sess, input, &parsed); err != nil {
		return project.Project{}, fmt.Errorf("create project: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) UpdateProject(ctx context.Context, sess *session.Session, projectID int, input project.UpdateInput) (project.Project, error) {
	var parsed projectDetailEnvelope
	if err := c.do(ctx, http.MethodPut, "/projects/"+strconv.Itoa(projectID), nil, sess, input, &parsed); err != nil {
		return project.Project{}, fmt.Errorf("update project: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) DeleteProject(ctx context.Context, sess *session.Session, projectID int) error {
	if err := c.do(ctx, http.MethodDelete, "/projects/"+strconv.Itoa(projectID), nil, sess, nil, nil); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
