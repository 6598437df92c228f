// Package api is the typed client for the upstream recruitment REST API.
// Every authorized call takes an explicit session; there is no ambient token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"talentboard/internal/session"
)

const basePath = "/api/v1"

// Error is the typed upstream failure: Status carries the HTTP code (0 for
// transport failures), Detail the server-supplied message when present.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return "api: " + e.Detail
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

const genericDetail = "failed to connect to server"

func transportError(err error) *Error {
	_ = err
	return &Error{Status: 0, Detail: genericDetail}
}

func notAuthenticated() *Error {
	return &Error{Status: http.StatusUnauthorized, Detail: "not authenticated"}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Pagination mirrors the upstream list envelope.
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	clock func() time.Time
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: httpClient,
		clock:      time.Now,
	}
}

// do issues one JSON request and decodes the 2xx body into out (when non-nil).
// Non-2xx responses become *Error with the server's detail; transport
// failures become *Error with status 0 and a generic detail.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, sess *session.Session, body any, out any) error {
	if sess != nil && sess.Expired(c.clock()) {
		return notAuthenticated()
	}

	endpoint := c.baseURL + basePath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, payload)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, payload []byte) *Error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err == nil && strings.TrimSpace(parsed.Detail) != "" {
		return &Error{Status: status, Detail: parsed.Detail}
	}
	return &Error{Status: status, Detail: http.StatusText(status)}
}

func pageQuery(page, pageSize int) url.Values {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	return query
}

func searchQuery(text string, page, pageSize int) url.Values {
	query := pageQuery(page, pageSize)
	query.Set("query", text)
	return query
}
