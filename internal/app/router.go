package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/simple-twitter/simple-twitter/internal/auth"
	"github.com/simple-twitter/simple-twitter/internal/observability"
	"github.com/simple-twitter/simple-twitter/internal/twitters"
	"github.com/simple-twitter/simple-twitter/internal/users"
	"github.com/simple-twitter/simple-twitter/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	Authenticator   *auth.Authenticator
	UsersHandler    *users.Handler
	TwittersHandler *twitters.Handler
	JobHandler      *jobs.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Bearer token authentication guards the API surface. Registration,
	// confirmation and login are exempt inside the gate itself.
	r.Group(func(r chi.Router) {
		r.Use(params.Authenticator.Middleware)
		r.Route("/users", params.UsersHandler.MountRoutes)
		r.Route("/twitters", params.TwittersHandler.MountRoutes)
	})

	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
