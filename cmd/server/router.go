package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shahid1330/careerPilot-AI/internal/api"
	apiMiddleware "github.com/shahid1330/careerPilot-AI/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher)
	aiHandler := api.NewAIHandler(app.generationService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Post("/ai/generate-roadmap", aiHandler.GenerateRoadmap)
			r.Post("/ai/generate-daily-plan", aiHandler.GenerateDailyPlan)
			r.Post("/ai/teach-topic", aiHandler.TeachTopic)
			r.Get("/ai/daily-plans", aiHandler.ListDailyPlans)
			r.Get("/ai/roles/{id}/roadmap", aiHandler.GetRoadmap)
			r.Delete("/ai/roles/{id}", aiHandler.DeleteRole)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
