package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"talentboard/internal/domain/customer"
	"talentboard/internal/session"
)

type customerListEnvelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       []customer.Customer `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

type customerDetailEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    customer.Customer `json:"data"`
}

func (c *Client) ListCustomers(ctx context.Context, sess *session.Session, page, pageSize int) ([]customer.Customer, Pagination, error) {
	var parsed customerListEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers/", pageQuery(page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("list customers: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) SearchCustomers(ctx context.Context, sess *session.Session, text string, page, pageSize int) ([]customer.Customer, Pagination, error) {
	var parsed customerListEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers/search", searchQuery(text, page, pageSize), sess, nil, &parsed); err != nil {
		return nil, Pagination{}, fmt.Errorf("search customers: %w", err)
	}
	return parsed.Data, parsed.Pagination, nil
}

func (c *Client) GetCustomer(ctx context.Context, sess *session.Session, customerID int) (customer.Customer, error) {
	var parsed customerDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers/"+strconv.Itoa(customerID), nil, sess, nil, &parsed); err != nil {
		return customer.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) CreateCustomer(ctx context.Context, sess *session.Session, input customer.CreateInput) (customer.Customer, error) {
	var parsed customerDetailEnvelope
	if err := c.do(ctx, http.MethodPost, "/customers", nil, sess, input, &parsed); err != nil {
		return customer.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, sess *session.Session, customerID int, input customer.UpdateInput) (customer.Customer, error) {
	var parsed customerDetailEnvelope
	if err := c.do(ctx, http.MethodPut, "/customers/"+strconv.Itoa(customerID), nil, sess, input, &parsed); err != nil {
		return customer.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, sess *session.Session, customerID int) error {
	if err := c.do(ctx, http.MethodDelete, "/customers/"+strconv.Itoa(customerID), nil, sess, nil, nil); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
