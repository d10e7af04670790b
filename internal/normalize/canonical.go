package normalize

import (
	"github.com/tidwall/sjson"

	"reel.dev/internal/models"
)

// Canonicalize derives brand and spot from the title, fills the canonical
// text fields and their legacy aliases, and overlays them onto the record.
//
// subhed and blurb are older names for subtitle and agency. An explicit
// value wins; otherwise they mirror the canonical field.
func Canonicalize(raw models.RawProject) models.CanonicalProject {
	title := ParseTitle(raw.Title)
	subtitle := valueOr(raw.Subtitle, "")
	agency := valueOr(raw.Agency, "")

	p := models.CanonicalProject{
		Title:        raw.Title,
		Slug:         raw.Slug,
		FeaturedHome: raw.FeaturedHome,
		Brand:        title.Brand,
		Spot:         title.Spot,
		SpotQuoted:   QuoteSpot(title.Spot),
		Subtitle:     subtitle,
		Agency:       agency,
		Subhed:       valueOr(raw.Subhed, subtitle),
		Blurb:        valueOr(raw.Blurb, agency),
		NonObject:    raw.NonObject,
	}

	p.Raw = overlay(raw.Raw, []field{
		{"brand", p.Brand},
		{"spot", p.Spot},
		{"spotQuoted", p.SpotQuoted},
		{"subtitle", p.Subtitle},
		{"agency", p.Agency},
		{"subhed", p.Subhed},
		{"blurb", p.Blurb},
	})
	return p
}

type field struct {
	key   string
	value string
}

// overlay sets fields on a JSON object the way an object spread does:
// existing keys keep their position, new keys are appended in order.
func overlay(doc []byte, fields []field) []byte {
	out := []byte("{}")
	if len(doc) > 0 {
		out = append([]byte(nil), doc...)
	}
	for _, f := range fields {
		if next, err := sjson.SetBytes(out, f.key, f.value); err == nil {
			out = next
		}
	}
	return out
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
