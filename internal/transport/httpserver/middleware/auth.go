package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	admindomain "mealpoll-go/internal/domain/admin"
	"mealpoll-go/pkg/logger"
)

type contextKey int

const adminKey contextKey = iota

// SessionAuth resolves the admin session carried by the request and guards
// the admin-only route group. The session token travels in an HttpOnly cookie
// set at login; a bearer token is accepted as a fallback for API clients.
type SessionAuth struct {
	admins     *admindomain.Service
	cookieName string
	log        logger.Logger
}

func NewSessionAuth(admins *admindomain.Service, cookieName string, log logger.Logger) *SessionAuth {
	return &SessionAuth{
		admins:     admins,
		cookieName: cookieName,
		log:        log,
	}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := a.Token(r)
		if token == "" {
			unauthorized(w)
			return
		}

		account, err := a.admins.AdminByToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, admindomain.ErrSessionNotFound) {
				a.log.InternalError("auth: session lookup failed", err)
			}
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), account)))
	})
}

// Token extracts the session token from the request, preferring the cookie.
func (a *SessionAuth) Token(r *http.Request) string {
	if cookie, err := r.Cookie(a.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token, ok := bearerToken(r.Header.Get("Authorization")); ok {
		return token
	}
	return ""
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    "unauthorized",
			"message": "admin session required",
		},
	})
}

func WithAdmin(ctx context.Context, account *admindomain.Admin) context.Context {
	return context.WithValue(ctx, adminKey, account)
}

func AdminFromContext(ctx context.Context) (*admindomain.Admin, bool) {
	account, ok := ctx.Value(adminKey).(*admindomain.Admin)
	return account, ok && account != nil
}
