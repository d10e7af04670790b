package normalize

import (
	"fmt"

	"github.com/spf13/afero"

	"reel.dev/internal/models"
)

// Normalize canonicalizes every record, in order, and builds the views
func Normalize(raws []models.RawProject) *models.Catalog {
	projects := make([]models.CanonicalProject, len(raws))
	for i, raw := range raws {
		projects[i] = Canonicalize(raw)
	}
	return &models.Catalog{
		Projects: projects,
		Views:    BuildViews(projects),
	}
}

// Load reads the content file at path and normalizes it
func Load(fs afero.Fs, path string) (*models.Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	raws, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Normalize(raws), nil
}
