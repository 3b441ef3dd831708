// Package middleware holds the HTTP middleware mounted in front of the REST
// router. Auth must run before Logger and the rate limiter, which read the
// organization it stores in the request context.
package middleware

import "net/http"

// Middleware wraps an http.Handler. Values are passed directly to chi's Use.
type Middleware func(http.Handler) http.Handler
