package normalize

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"reel.dev/internal/models"
)

// ErrMalformedContent is returned when the content file is not a JSON array
var ErrMalformedContent = errors.New("malformed content")

// Decode parses the content file into raw project records, in file order.
func Decode(data []byte) ([]models.RawProject, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedContent)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top-level value must be an array", ErrMalformedContent)
	}

	raws := make([]models.RawProject, 0)
	root.ForEach(func(_, value gjson.Result) bool {
		raws = append(raws, decodeRecord(value))
		return true
	})
	return raws, nil
}

func decodeRecord(v gjson.Result) models.RawProject {
	if !v.IsObject() {
		return models.RawProject{NonObject: true, Raw: []byte("{}")}
	}

	raw := models.RawProject{
		Slug:         v.Get("slug").String(),
		FeaturedHome: truthy(v.Get("featured_home")),
		Subtitle:     optionalText(v.Get("subtitle")),
		Agency:       optionalText(v.Get("agency")),
		Subhed:       optionalText(v.Get("subhed")),
		Blurb:        optionalText(v.Get("blurb")),
		Raw:          []byte(v.Raw),
	}
	if title := v.Get("title"); title.Type == gjson.String {
		raw.Title = title.Str
	}
	return raw
}

// truthy follows JavaScript truthiness for a JSON value
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return false
	}
}

// optionalText reads a nullable text field. Missing and null values are nil,
// false and 0 collapse to "", other scalars keep their JSON text.
func optionalText(r gjson.Result) *string {
	var s string
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		s = ""
	case gjson.String:
		s = r.Str
	case gjson.Number:
		if r.Num != 0 {
			s = r.Raw
		}
	default:
		s = r.Raw
	}
	return &s
}
