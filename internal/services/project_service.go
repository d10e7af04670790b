package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/afero"

	"reel.dev/internal/logger"
	"reel.dev/internal/models"
	"reel.dev/internal/normalize"
)

// ErrProjectNotFound is returned for slugs missing from the catalog
var ErrProjectNotFound = errors.New("project not found")

// ProjectService serves the normalized catalog and swaps it on reload.
// Returned slices and records are shared and must not be modified.
type ProjectService struct {
	mu      sync.RWMutex
	catalog *models.Catalog

	fs   afero.Fs
	path string
	log  logger.Logger
}

// NewProjectService loads the content file once and fails if it cannot
func NewProjectService(fs afero.Fs, path string, log logger.Logger) (*ProjectService, error) {
	s := &ProjectService{fs: fs, path: path, log: log}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the content file path
func (s *ProjectService) Path() string {
	return s.path
}

// Reload re-reads the content file. On failure the previous catalog stays.
func (s *ProjectService) Reload() error {
	catalog, err := normalize.Load(s.fs, s.path)
	if err != nil {
		return err
	}

	for _, f := range normalize.Check(catalog).Findings {
		s.log.Warn("content issue", "index", f.Index, "slug", f.Slug, "kind", string(f.Kind), "detail", f.Detail)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.log.Info("loaded projects", "path", s.path, "count", len(catalog.Projects), "featured", len(catalog.FeaturedSlugs))
	return nil
}

// Catalog returns the current catalog
func (s *ProjectService) Catalog() *models.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// GetAll returns all projects in content order
func (s *ProjectService) GetAll() []models.CanonicalProject {
	return s.Catalog().Projects
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.CanonicalProject, error) {
	p, ok := s.Catalog().BySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
	}
	return &p, nil
}

// FeaturedSlugs returns the slugs featured on the home page, in order
func (s *ProjectService) FeaturedSlugs() []string {
	return s.Catalog().FeaturedSlugs
}

// Featured resolves the featured slugs through the slug index
func (s *ProjectService) Featured() []models.CanonicalProject {
	c := s.Catalog()
	featured := make([]models.CanonicalProject, 0, len(c.FeaturedSlugs))
	for _, slug := range c.FeaturedSlugs {
		featured = append(featured, c.BySlug[slug])
	}
	return featured
}
