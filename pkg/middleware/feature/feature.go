// Package feature provides a hard-disable switch for route groups. When a
// feature is switched off the request is short-circuited with 501 Not
// Implemented before any handler or service code runs.
package feature

import (
	"log/slog"
	"net/http"

	request "contactbook/pkg/middleware/request"
)

// Disable short-circuits every request with 501 when disabled is true.
// With disabled false the middleware is a pass-through.
func Disable(disabled bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !disabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger.InfoContext(ctx, "feature disabled, request short-circuited",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", request.GetRequestID(ctx),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotImplemented)
			_, _ = w.Write([]byte(`{"error":"not_implemented","error_description":"feature is disabled"}`))
		})
	}
}
