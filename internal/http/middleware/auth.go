package middleware

import (
	"context"
	"net/http"
	"strings"

	"talentboard/internal/common"
	"talentboard/internal/http/response"
	"talentboard/internal/session"
)

// AuthMiddleware resolves the gateway session named by the Authorization
// header. The gateway's own bearer value is the opaque session id minted at
// login, not the upstream token; the upstream token never leaves the store.
type AuthMiddleware struct {
	sessions *session.Store
}

func NewAuthMiddleware(sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		sessionID := strings.TrimSpace(parts[1])
		sess, err := m.sessions.Get(r.Context(), sessionID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "session expired, please login again", err))
			return
		}
		ctx := context.WithValue(r.Context(), ContextSessionIDKey, sessionID)
		ctx = context.WithValue(ctx, ContextSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextSessionIDKey).(string)
	return id, ok
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(ContextSessionKey).(*session.Session)
	return sess, ok
}
