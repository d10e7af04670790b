package normalize

import "reel.dev/internal/models"

// BuildViews indexes projects by slug and collects the featured slugs.
// Duplicate slugs are resolved last-write-wins.
func BuildViews(projects []models.CanonicalProject) models.Views {
	views := models.Views{
		BySlug:        make(map[string]models.CanonicalProject, len(projects)),
		SlugOrder:     make([]string, 0, len(projects)),
		FeaturedSlugs: make([]string, 0),
	}

	for _, p := range projects {
		if _, seen := views.BySlug[p.Slug]; !seen {
			views.SlugOrder = append(views.SlugOrder, p.Slug)
		}
		views.BySlug[p.Slug] = p

		if p.FeaturedHome {
			views.FeaturedSlugs = append(views.FeaturedSlugs, p.Slug)
		}
	}
	return views
}
