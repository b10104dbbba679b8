package middleware

import (
	"context"
	"net/http"

	"github.com/mgarridov/wraps-backend/internal/api/httpx"
	"github.com/mgarridov/wraps-backend/internal/auth"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "token"

type ctxKey string

const ctxUserIDKey ctxKey = "userId"

// UserID returns the authenticated user id attached by SessionAuth.
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(string)
	return v, ok
}

type SessionAuth struct {
	tm *auth.TokenManager
}

func NewSessionAuth(tm *auth.TokenManager) *SessionAuth {
	return &SessionAuth{tm: tm}
}

// Auth gates a route on a valid session cookie and puts the resolved user id
// in the request context.
func (m *SessionAuth) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookie)
		if err != nil || c.Value == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "No auth")
			return
		}
		uid, err := m.tm.Parse(c.Value)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid auth")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
