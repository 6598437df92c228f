package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"talentboard/internal/api"
	"talentboard/internal/board"
	"talentboard/internal/common"
	"talentboard/internal/http/middleware"
	"talentboard/internal/http/response"
	"talentboard/internal/session"
)

type AuthHandler struct {
	client   *api.Client
	sessions *session.Store
	boards   *board.Registry
	limiter  middleware.Limiter
	limit    int
	window   time.Duration
}

func NewAuthHandler(client *api.Client, sessions *session.Store, boards *board.Registry, limiter middleware.Limiter, limit int, window time.Duration) *AuthHandler {
	return &AuthHandler{
		client:   client,
		sessions: sessions,
		boards:   boards,
		limiter:  limiter,
		limit:    limit,
		window:   window,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// Login exchanges credentials upstream and mints a gateway session. The
// returned access token is the opaque session id; the upstream bearer token
// stays inside the session store.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid request body", err))
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		response.Error(w, common.NewError(common.CodeValidation, "username and password are required", nil))
		return
	}
	if h.limiter != nil {
		key := "login:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, h.limit, h.window) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many login attempts", nil))
			return
		}
	}

	token, err := h.client.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	sess := session.Session{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiryTime(),
	}
	id, err := h.sessions.Put(r.Context(), sess)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to create session", err))
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{
		AccessToken: id,
		TokenType:   "bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}

// Me proxies the authenticated profile lookup.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, common.NewError(common.CodeUnauthorized, "not authenticated", nil))
		return
	}
	profile, err := h.client.Me(r.Context(), sess)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

// Logout drops the gateway session and closes any boards it had open.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, common.NewError(common.CodeUnauthorized, "not authenticated", nil))
		return
	}
	h.boards.CloseSession(sessionID)
	_ = h.sessions.Delete(r.Context(), sessionID)
	response.Message(w, http.StatusOK, "logged out", nil)
}
