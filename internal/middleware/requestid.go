package middleware

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/ctxkeys"
	"github.com/google/uuid"
)

// RequestID tags each request with a generated id, exposed in the response
// header and attached to the context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
