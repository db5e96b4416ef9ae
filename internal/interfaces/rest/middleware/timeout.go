package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds whole-request handling. The vendor client enforces its own
// per-call timeout; this is the outer guard for a full retry sequence.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler := http.TimeoutHandler(
				next,
				timeout,
				`{"success":false,"error":{"code":"500","type":"UPSTREAM_ERROR","info":"Request timed out."}}`,
			)

			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
