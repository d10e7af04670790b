package normalize

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"reel.dev/internal/models"
)

// FindingKind classifies a content problem
type FindingKind string

const (
	KindNotObject        FindingKind = "not-object"
	KindEmptySlug        FindingKind = "empty-slug"
	KindDuplicateSlug    FindingKind = "duplicate-slug"
	KindNonCanonicalSlug FindingKind = "non-canonical-slug"
	KindUnquotedTitle    FindingKind = "unquoted-title"
)

// Finding is one content problem, located by record index
type Finding struct {
	Index  int
	Slug   string
	Kind   FindingKind
	Detail string
}

func (f Finding) String() string {
	return fmt.Sprintf("#%d %s [%s]: %s", f.Index, f.Slug, f.Kind, f.Detail)
}

// Report lists every finding in record order
type Report struct {
	Findings []Finding
}

// OK reports whether the content has no findings
func (r Report) OK() bool {
	return len(r.Findings) == 0
}

// Count returns the number of findings of a kind
func (r Report) Count(kind FindingKind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Check inspects a catalog for problems that normalization tolerates
// silently. Duplicate slugs still resolve last-write-wins in the index.
func Check(c *models.Catalog) Report {
	var report Report
	add := func(i int, p models.CanonicalProject, kind FindingKind, msg string, args ...any) {
		report.Findings = append(report.Findings, Finding{
			Index:  i,
			Slug:   p.Slug,
			Kind:   kind,
			Detail: fmt.Sprintf(msg, args...),
		})
	}

	firstSeen := make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		if p.NonObject {
			add(i, p, KindNotObject, "entry is not a JSON object")
			continue
		}

		switch {
		case p.Slug == "":
			add(i, p, KindEmptySlug, "missing slug")
		case !slug.IsSlug(p.Slug):
			add(i, p, KindNonCanonicalSlug, "slug is not lower-case hyphenated, try %q", suggestSlug(p))
		}

		if p.Slug != "" {
			if first, dup := firstSeen[p.Slug]; dup {
				add(i, p, KindDuplicateSlug, "slug already used by #%d, this record wins", first)
			} else {
				firstSeen[p.Slug] = i
			}
		}

		if strings.TrimSpace(p.Title) != "" && !hasQuotedSpot(p.Title) {
			add(i, p, KindUnquotedTitle, "title %q has no quoted spot", p.Title)
		}
	}
	return report
}

func suggestSlug(p models.CanonicalProject) string {
	if s := slug.Make(p.Title); s != "" {
		return s
	}
	return slug.Make(p.Slug)
}
