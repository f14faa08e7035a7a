package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	countryhandler "contactbook/internal/country/handler"
	personhandler "contactbook/internal/person/handler"
	"contactbook/internal/platform/database"
	adminmw "contactbook/pkg/middleware/admin"
	"contactbook/pkg/middleware/feature"
	request "contactbook/pkg/middleware/request"
	"contactbook/pkg/middleware/requesttime"
)

// Options carries the cross-cutting switches the router wires around the
// domain handlers.
type Options struct {
	AdminToken      string
	Development     bool
	PersonsDisabled bool
}

// NewRouter wires middleware and domain routes. Reads are public; writes sit
// behind the admin token, and person writes can be hard-disabled, returning
// 501 before any service code runs.
func NewRouter(persons *personhandler.Handler, countries *countryhandler.Handler, pool *database.Pool, logger *slog.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(logger, opts.Development))
	r.Use(request.RequestID)
	r.Use(request.Logger(logger))
	r.Use(requesttime.Middleware)
	r.Use(request.SetHeader("X-Custom-Key", "Custom-Value"))

	r.Group(func(r chi.Router) {
		persons.RegisterReads(r)
		countries.RegisterReads(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(opts.AdminToken, logger))
		countries.RegisterWrites(r)

		r.Group(func(r chi.Router) {
			r.Use(feature.Disable(opts.PersonsDisabled, logger))
			persons.RegisterWrites(r)
		})
	})

	r.Get("/health", handleHealth(pool))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// handleHealth reports liveness, including a database ping when a pool is
// configured.
func handleHealth(pool *database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Health(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded","database":"unreachable"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
