package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"reel.dev/internal/logger"
	"reel.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	log            logger.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, log: log}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		respondError(w, h.log, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.log, http.StatusOK, project)
}

// ListFeaturedSlugs handles GET /api/featured
func (h *ProjectHandler) ListFeaturedSlugs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.projectService.FeaturedSlugs())
}

// ListFeaturedProjects handles GET /api/featured/projects
func (h *ProjectHandler) ListFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.projectService.Featured())
}
