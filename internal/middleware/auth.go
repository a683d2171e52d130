package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/auralabs/aura-backend/internal/services"
)

type contextKey string

// EmailContextKey carries the authenticated user's email through the request.
const EmailContextKey contextKey = "user_email"

// RequireAuth resolves the Bearer token against the session store and
// injects the owning email into the request context. Requests without a
// valid session get 401.
func RequireAuth(sessions services.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			email, ok, err := sessions.Resolve(r.Context(), token)
			if err != nil || !ok {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), EmailContextKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext returns the authenticated email set by RequireAuth.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailContextKey).(string)
	return email, ok && email != ""
}

// BearerToken extracts the raw token so handlers (sign-out) can reuse it.
func BearerToken(r *http.Request) string {
	return bearerToken(r)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"message":"Authentication required"}`))
}
