package routes

import (
	"net/http"
	"time"

	"github.com/RahulMisra2000/angular-security-course/app"
	"github.com/RahulMisra2000/angular-security-course/handlers"
	"github.com/RahulMisra2000/angular-security-course/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all application routes and middleware.
// Pipeline order is load-bearing: session extraction runs first on every
// request; the authentication gate and the CSRF gate only wrap the routes
// that need them, in that order.
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS middleware. Credentials must be allowed for the cookies to ride
	// along, and the CSRF header must be accepted.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.CSRFHeaderName},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Session extraction: unconditional, never rejects.
	r.Use(deps.Sessions.Extract)

	// Health check endpoints
	r.Get("/healthz", handlers.HealthCheck(deps))
	r.Get("/readyz", handlers.ReadinessCheck(deps))

	r.Route("/api", func(r chi.Router) {
		// Pre-authentication routes: there is no session to forge against
		// yet, so no gates apply.
		r.Post("/signup", handlers.SignupHandler(deps))
		r.Post("/login", handlers.LoginHandler(deps))

		// Public identity probe: anonymous callers get an empty body.
		r.Get("/user", handlers.CurrentUserHandler(deps))

		// Identity-protected reads.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/lessons", handlers.LessonsHandler(deps))
		})

		// Identity-protected, state-changing: both gates.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireCSRF)
			r.Post("/logout", handlers.LogoutHandler(deps))
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
