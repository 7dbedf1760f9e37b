package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/dreamjournal-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Dreams     *DreamHandler
	Enrichment *EnrichmentHandler
	Dashboard  *DashboardHandler
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Health     *HealthHandler

	// Middleware is applied to every route, outermost first.
	Middleware []middleware.Middleware
	// Authenticate resolves the bearer token; RequireAuth rejects anonymous calls.
	Authenticate middleware.Middleware
	// AuthLimit throttles register and login. Nil disables limiting.
	AuthLimit middleware.Middleware

	// MetricsPath and Metrics expose the Prometheus handler when both are set.
	MetricsPath string
	Metrics     http.Handler
}

// NewRouter builds the application's HTTP handler.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range d.Middleware {
		r.Use(mw)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil && d.MetricsPath != "" {
		r.Method(http.MethodGet, d.MetricsPath, d.Metrics)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(d.Authenticate)

		api.Group(func(pub chi.Router) {
			if d.AuthLimit != nil {
				pub.Use(d.AuthLimit)
			}
			pub.Post("/auth/register", d.Auth.Register)
			pub.Post("/auth/login", d.Auth.Login)
		})

		api.Group(func(priv chi.Router) {
			priv.Use(middleware.RequireAuth)

			priv.Post("/auth/logout", d.Auth.Logout)

			priv.Get("/me", d.Profile.Get)
			priv.Patch("/me", d.Profile.Update)

			priv.Get("/dashboard", d.Dashboard.Get)

			priv.Route("/dreams", func(dr chi.Router) {
				dr.Get("/", d.Dreams.List)
				dr.Post("/", d.Dreams.Create)
				dr.Route("/{id}", func(one chi.Router) {
					one.Get("/", d.Dreams.Get)
					one.Put("/", d.Dreams.Update)
					one.Delete("/", d.Dreams.Delete)

					one.Post("/interpretation", d.Enrichment.Interpret)
					one.Put("/interpretation", d.Enrichment.SaveInterpretation)
					one.Post("/image", d.Enrichment.GenerateImage)
					one.Put("/image", d.Enrichment.SaveImage)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
