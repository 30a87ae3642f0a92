package middleware

import (
	"net/http"

	"naukriedge/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID assigns a request id, stored in the context and echoed in the
// response header so frontend and logs can be correlated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
