package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"talentboard/internal/domain/headhunter"
	"talentboard/internal/session"
)

// TokenData is the credential payload returned by a successful login.
type TokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	ExpiresAt   string `json:"expires_at"`
}

// ExpiryTime parses the server expiry timestamp, tolerating the missing UTC
// suffix some server builds emit. A zero time means "unknown".
func (t TokenData) ExpiryTime() time.Time {
	raw := strings.TrimSpace(t.ExpiresAt)
	if raw == "" {
		return time.Time{}
	}
	if !strings.HasSuffix(raw, "Z") && !strings.ContainsAny(raw[10:], "+-") {
		raw += "Z"
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

type loginEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    TokenData `json:"data"`
}

// Login exchanges credentials for a bearer token. The endpoint speaks
// OAuth2 password-form encoding, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (TokenData, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+basePath+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return TokenData{}, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TokenData{}, transportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return TokenData{}, transportError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return TokenData{}, decodeError(resp.StatusCode, payload)
	}

	var parsed loginEnvelope
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return TokenData{}, fmt.Errorf("decode login response: %w", err)
	}
	return parsed.Data, nil
}

type meEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    headhunter.Headhunter `json:"data"`
}

// Me returns the authenticated headhunter's own profile.
func (c *Client) Me(ctx context.Context, sess *session.Session) (headhunter.Headhunter, error) {
	var parsed meEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, sess, nil, &parsed); err != nil {
		return headhunter.Headhunter{}, err
	}
	return parsed.Data, nil
}
