package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/codelens/internal/api"
	apiMiddleware "github.com/phrazzld/codelens/internal/api/middleware"
)

// analyzeTimeout bounds one analysis, including every retry wait.
const analyzeTimeout = 2 * time.Minute

// setupRouter creates and configures the HTTP router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	pageHandler := api.NewPageHandler(app.logger)
	analyzeHandler := api.NewAnalyzeHandler(app.assistant, app.logger)

	r.Get("/", pageHandler.Index)

	r.Route("/api", func(r chi.Router) {
		r.With(
			app.limiter.Middleware,
			middleware.Timeout(analyzeTimeout),
		).Post("/analyze", analyzeHandler.Analyze)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
