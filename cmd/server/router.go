package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/lifetrack-api/internal/api"
	apiMiddleware "github.com/phrazzld/lifetrack-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	trackerHandler := api.NewTrackerHandler(app.manager, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	// Register routes; everything under /api requires a valid token
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/overview", trackerHandler.GetOverview)

		// Finance endpoints
		r.Get("/finances", trackerHandler.GetFinances)
		r.Post("/finances/expenses", trackerHandler.AddExpense)
		r.Delete("/finances/expenses/{id}", trackerHandler.RemoveExpense)
		r.Post("/finances/debts", trackerHandler.AddDebt)
		r.Patch("/finances/debts/{id}", trackerHandler.UpdateDebt)
		r.Delete("/finances/debts/{id}", trackerHandler.RemoveDebt)
		r.Put("/finances/savings", trackerHandler.SetSavings)
		r.Put("/finances/investments", trackerHandler.SetInvestments)

		// Health endpoints
		r.Get("/health", trackerHandler.GetHealth)
		r.Post("/health/vitals", trackerHandler.AddVitals)
		r.Post("/health/meals", trackerHandler.AddMeal)
		r.Delete("/health/entries/{id}", trackerHandler.RemoveHealthEntry)

		// Sleep endpoints
		r.Get("/sleep", trackerHandler.GetSleep)
		r.Post("/sleep", trackerHandler.AddSleepEntry)
		r.Delete("/sleep/{id}", trackerHandler.RemoveSleepEntry)

		// Reading endpoints
		r.Get("/reading", trackerHandler.GetReading)
		r.Post("/reading", trackerHandler.AddBook)
		r.Patch("/reading/{id}", trackerHandler.UpdateBook)
		r.Delete("/reading/{id}", trackerHandler.RemoveBook)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
