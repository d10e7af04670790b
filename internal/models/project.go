package models

// Title is a project title split into its brand and spot parts
type Title struct {
	Brand string
	Spot  string
}

// RawProject is one record of the content file as editors wrote it.
// Optional text fields are nil when missing or null.
type RawProject struct {
	Title        string
	Slug         string
	FeaturedHome bool
	Subtitle     *string
	Agency       *string
	Subhed       *string
	Blurb        *string

	// NonObject is set when the content entry was not a JSON object
	NonObject bool
	// Raw holds the record's original JSON object
	Raw []byte
}

// CanonicalProject is a RawProject with derived and defaulted fields filled in.
// It marshals to the original record with those fields overlaid, so field
// order and unknown fields survive.
type CanonicalProject struct {
	Title        string
	Slug         string
	FeaturedHome bool
	Brand        string
	Spot         string
	SpotQuoted   string
	Subtitle     string
	Agency       string
	Subhed       string
	Blurb        string
	NonObject    bool

	Raw []byte
}

// MarshalJSON returns the overlaid record
func (p CanonicalProject) MarshalJSON() ([]byte, error) {
	if len(p.Raw) == 0 {
		return []byte("{}"), nil
	}
	return p.Raw, nil
}

// Views are the collection-level lookups derived from the canonical records
type Views struct {
	// BySlug maps slug to project; later duplicates overwrite earlier ones
	BySlug map[string]CanonicalProject
	// SlugOrder lists each distinct slug once, in first-occurrence order
	SlugOrder     []string
	FeaturedSlugs []string
}

// Catalog is the full normalized content: ordered records plus views
type Catalog struct {
	Projects []CanonicalProject
	Views
}
