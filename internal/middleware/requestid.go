package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDContextKey carries the per-request id for log correlation.
const RequestIDContextKey contextKey = "request_id"

// RequestID tags every request with a UUID, echoed in the X-Request-ID
// response header. An incoming X-Request-ID from the proxy is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), RequestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}
