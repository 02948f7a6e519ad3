/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/drivers/{driverID}/shifts    Shift history CRUD
  /api/drivers/{driverID}/tariff    Tariff configuration
  /api/drivers/{driverID}/report    Period reports (JSON + XLSX)
  /api/health                       Liveness

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/drivers/{driverID}", func(r chi.Router) {
			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.ListShifts)
				r.Post("/", h.CreateShift)
				r.Delete("/", h.ClearShifts)
				r.Put("/{shiftID}", h.UpdateShift)
				r.Delete("/{shiftID}", h.DeleteShift)
			})

			r.Route("/tariff", func(r chi.Router) {
				r.Get("/", h.GetTariff)
				r.Put("/", h.SaveTariff)
			})

			r.Route("/report", func(r chi.Router) {
				r.Get("/", h.GetReport)
				r.Get("/export", h.ExportReport)
			})
		})
	})

	return r
}
