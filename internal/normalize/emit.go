package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/pretty"

	"reel.dev/internal/models"
)

// Output file names, as the site templates expect them
const (
	ProjectsFile      = "projects.json"
	ProjectBySlugFile = "projectBySlug.json"
	FeaturedSlugsFile = "featuredHomeSlugs.json"
)

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Output holds the encoded data files
type Output struct {
	Projects      []byte
	ProjectBySlug []byte
	FeaturedSlugs []byte
}

// Files returns the output keyed by file name
func (o Output) Files() map[string][]byte {
	return map[string][]byte{
		ProjectsFile:      o.Projects,
		ProjectBySlugFile: o.ProjectBySlug,
		FeaturedSlugsFile: o.FeaturedSlugs,
	}
}

// Emit encodes the catalog. The result depends only on the catalog, so the
// same content always produces the same bytes.
func Emit(c *models.Catalog) Output {
	var projects bytes.Buffer
	projects.WriteByte('[')
	for i, p := range c.Projects {
		if i > 0 {
			projects.WriteByte(',')
		}
		projects.Write(rawOrEmpty(p.Raw))
	}
	projects.WriteByte(']')

	var bySlug bytes.Buffer
	bySlug.WriteByte('{')
	for i, slug := range c.SlugOrder {
		if i > 0 {
			bySlug.WriteByte(',')
		}
		bySlug.Write(jsonString(slug))
		bySlug.WriteByte(':')
		bySlug.Write(rawOrEmpty(c.BySlug[slug].Raw))
	}
	bySlug.WriteByte('}')

	var featured bytes.Buffer
	featured.WriteByte('[')
	for i, slug := range c.FeaturedSlugs {
		if i > 0 {
			featured.WriteByte(',')
		}
		featured.Write(jsonString(slug))
	}
	featured.WriteByte(']')

	return Output{
		Projects:      format(projects.Bytes()),
		ProjectBySlug: format(bySlug.Bytes()),
		FeaturedSlugs: format(featured.Bytes()),
	}
}

// WriteOutput writes the data files into dir, creating it if needed
func WriteOutput(fs afero.Fs, dir string, out Output) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, name := range []string{ProjectsFile, ProjectBySlugFile, FeaturedSlugsFile} {
		path := filepath.Join(dir, name)
		if err := afero.WriteFile(fs, path, out.Files()[name], 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func format(doc []byte) []byte {
	out := pretty.PrettyOptions(doc, prettyOptions)
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out
}

func rawOrEmpty(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}

func jsonString(s string) []byte {
	// Marshalling a string cannot fail
	b, _ := json.Marshal(s)
	return b
}
