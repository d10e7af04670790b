package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"reel.dev/internal/models"
)

func decodeOne(t *testing.T, record string) models.RawProject {
	t.Helper()
	raws, err := Decode([]byte("[" + record + "]"))
	require.NoError(t, err)
	require.Len(t, raws, 1)
	return raws[0]
}

func keysOf(doc []byte) []string {
	var keys []string
	gjson.ParseBytes(doc).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

func TestCanonicalize(t *testing.T) {
	t.Run("Should derive brand and spot and fall back blurb to agency", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"title": "Nike \"Air\"", "agency": "Wieden"}`))

		assert.Equal(t, "Nike", p.Brand)
		assert.Equal(t, "Air", p.Spot)
		assert.Equal(t, `"Air"`, p.SpotQuoted)
		assert.Equal(t, "Wieden", p.Agency)
		assert.Equal(t, "Wieden", p.Blurb)
		assert.Equal(t, "", p.Subtitle)
		assert.Equal(t, "", p.Subhed)

		doc := gjson.ParseBytes(p.Raw)
		assert.Equal(t, "Nike", doc.Get("brand").String())
		assert.Equal(t, `"Air"`, doc.Get("spotQuoted").String())
		assert.Equal(t, "Wieden", doc.Get("blurb").String())
		assert.Equal(t, gjson.String, doc.Get("subtitle").Type)
	})

	t.Run("Should keep an explicit subhed", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"title": "X", "subhed": "custom", "subtitle": "starring nobody"}`))

		assert.Equal(t, "custom", p.Subhed)
		assert.Equal(t, "starring nobody", p.Subtitle)
		assert.Equal(t, "custom", gjson.GetBytes(p.Raw, "subhed").String())
	})

	t.Run("Should fall back subhed to subtitle", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"title": "X", "subtitle": "starring everyone"}`))

		assert.Equal(t, "starring everyone", p.Subhed)
	})

	t.Run("Should treat null fields as absent", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"title": null, "subtitle": null, "agency": "A", "blurb": null}`))

		assert.Equal(t, "", p.Brand)
		assert.Equal(t, "", p.Spot)
		assert.Equal(t, "", p.SpotQuoted)
		assert.Equal(t, "", p.Subtitle)
		assert.Equal(t, "A", p.Blurb)
		assert.Equal(t, gjson.String, gjson.GetBytes(p.Raw, "subtitle").Type)
	})

	t.Run("Should not fall back when an alias is present but empty", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"agency": "A", "blurb": ""}`))

		assert.Equal(t, "", p.Blurb)
	})

	t.Run("Should ignore a non-string title", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"title": 42}`))

		assert.Equal(t, "", p.Brand)
		assert.Equal(t, "", p.Spot)
		assert.Equal(t, int64(42), gjson.GetBytes(p.Raw, "title").Int())
	})

	t.Run("Should keep field order and append derived fields", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"slug": "a", "title": "Nike \"Air\"", "agency": "W", "vimeo_id": "123", "thumb": null}`))

		assert.Equal(t, []string{
			"slug", "title", "agency", "vimeo_id", "thumb",
			"brand", "spot", "spotQuoted", "subtitle", "subhed", "blurb",
		}, keysOf(p.Raw))
		assert.Equal(t, "123", gjson.GetBytes(p.Raw, "vimeo_id").String())
		assert.Equal(t, gjson.Null, gjson.GetBytes(p.Raw, "thumb").Type)
	})

	t.Run("Should overwrite stale derived fields in place", func(t *testing.T) {
		p := Canonicalize(decodeOne(t, `{"brand": "Old", "title": "New \"Spot\""}`))

		assert.Equal(t, "brand", keysOf(p.Raw)[0])
		assert.Equal(t, "New", gjson.GetBytes(p.Raw, "brand").String())
	})

	t.Run("Should not modify the raw record", func(t *testing.T) {
		raw := decodeOne(t, `{"title": "Nike \"Air\""}`)
		before := string(raw.Raw)

		Canonicalize(raw)

		assert.Equal(t, before, string(raw.Raw))
	})

	t.Run("Should produce every field for a zero record", func(t *testing.T) {
		p := Canonicalize(models.RawProject{})

		doc := gjson.ParseBytes(p.Raw)
		for _, key := range []string{"brand", "spot", "spotQuoted", "subtitle", "agency", "subhed", "blurb"} {
			assert.Equal(t, gjson.String, doc.Get(key).Type, key)
		}
	})
}
