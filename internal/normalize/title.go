package normalize

import (
	"regexp"
	"strings"

	"reel.dev/internal/models"
)

// quotedTitle matches `Brand "Spot"` with straight or curly quotes. Opening
// and closing quote styles may differ.
var quotedTitle = regexp.MustCompile(`^(.*?)\s*["“](.*?)["”]\s*$`)

// ParseTitle splits a project title into brand and spot.
//
// Titles following the quoted convention yield the text before the quotes as
// brand and the quoted text as spot. Anything else falls back to the first
// word as brand and the remainder as spot. Empty titles yield empty parts.
func ParseTitle(title string) models.Title {
	t := strings.TrimSpace(title)
	if t == "" {
		return models.Title{}
	}

	if m := quotedTitle.FindStringSubmatch(t); m != nil {
		return models.Title{
			Brand: strings.TrimSpace(m[1]),
			Spot:  strings.TrimSpace(m[2]),
		}
	}

	brand := strings.Fields(t)[0]
	return models.Title{
		Brand: brand,
		Spot:  strings.TrimSpace(t[len(brand):]),
	}
}

// QuoteSpot wraps a spot in straight double quotes, or returns "" for an
// empty spot
func QuoteSpot(spot string) string {
	s := strings.TrimSpace(spot)
	if s == "" {
		return ""
	}
	return `"` + s + `"`
}

// hasQuotedSpot reports whether a title follows the quoted convention
func hasQuotedSpot(title string) bool {
	return quotedTitle.MatchString(strings.TrimSpace(title))
}
