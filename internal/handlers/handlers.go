package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"reel.dev/internal/config"
	"reel.dev/internal/logger"
	"reel.dev/internal/middleware"
	"reel.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router.
// The API and the built site are both mounted under cfg.PathPrefix.
func SetupRoutes(cfg *config.Config, projectService *services.ProjectService, log logger.Logger) http.Handler {
	prefix := strings.TrimSuffix(cfg.PathPrefix, "/")

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(log))

	projectHandler := NewProjectHandler(projectService, log)

	site := chi.NewRouter()

	// API routes
	site.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/featured", projectHandler.ListFeaturedSlugs)
		r.Get("/featured/projects", projectHandler.ListFeaturedProjects)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, log, http.StatusOK, map[string]any{
				"status":   "ok",
				"projects": len(projectService.GetAll()),
			})
		})
	})

	// Built site
	var fileServer http.Handler = http.FileServer(http.Dir(cfg.SiteDir))
	if prefix != "" {
		fileServer = http.StripPrefix(prefix, fileServer)
	}
	site.Handle("/*", fileServer)

	if prefix == "" {
		r.Mount("/", site)
	} else {
		r.Mount(prefix, site)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, cfg.PathPrefix, http.StatusFound)
		})
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, log logger.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, log logger.Logger, status int, message string) {
	respondJSON(w, log, status, map[string]string{"error": message})
}
