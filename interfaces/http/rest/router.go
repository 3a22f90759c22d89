package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/di"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/interfaces/http/rest/handlers"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{container: container}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	c := rt.container
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(c.Logger))
	router.Use(middleware.CircuitBreaker(middleware.DefaultCircuitBreakerConfig("api"), c.Logger))

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.digitalmaples.com"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	pageHandler := handlers.NewPageHandler(c.CommandBus, c.QueryBus, c.Logger)
	sectionHandler := handlers.NewSectionHandler(c.CommandBus, c.QueryBus, c.Logger)
	uploadHandler := handlers.NewUploadHandler(c.BlobStore, c.Logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Every route resolves the caller's role; anonymous is a valid
		// role for the public read paths.
		r.Use(middleware.Authenticate(c.IdentityService, c.RateLimiter, c.Logger))

		// Public content reads, keyed by slug
		r.Route("/pages", func(r chi.Router) {
			r.Get("/{slug}", pageHandler.GetPage)
			r.Get("/{slug}/sections/{sectionID}", sectionHandler.ResolveSection)
		})

		// Editor tooling, keyed by page id
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireEditor())

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", pageHandler.ListPages)
				r.Post("/", pageHandler.CreatePage)
				r.Get("/{pageID}", pageHandler.GetPageByID)
				r.Put("/{pageID}", pageHandler.UpdatePage)
				r.Delete("/{pageID}", pageHandler.DeletePage)
				r.Put("/{pageID}/sections/{sectionID}", sectionHandler.UpsertSection)
			})
			r.Post("/reconcile/{slug}", sectionHandler.ReconcileSections)
			r.Post("/uploads", uploadHandler.Upload)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
