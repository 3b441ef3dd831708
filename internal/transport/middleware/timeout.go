package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request with a context deadline. Store calls made
// with the request context fail once it expires; nothing is retried.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
