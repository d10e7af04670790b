package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkContent(t *testing.T, content string) Report {
	t.Helper()
	raws, err := Decode([]byte(content))
	require.NoError(t, err)
	return Check(Normalize(raws))
}

func TestCheck(t *testing.T) {
	t.Run("Should flag only the unquoted title in the sample", func(t *testing.T) {
		report := checkContent(t, sampleContent)

		assert.Len(t, report.Findings, 1)
		assert.Equal(t, 1, report.Count(KindUnquotedTitle))
	})

	t.Run("Should report duplicate slugs", func(t *testing.T) {
		report := checkContent(t, `[
			{"slug": "a", "title": "A \"One\""},
			{"slug": "b", "title": "B \"Two\""},
			{"slug": "a", "title": "A \"Three\""}
		]`)

		require.Equal(t, 1, report.Count(KindDuplicateSlug))
		f := report.Findings[0]
		assert.Equal(t, 2, f.Index)
		assert.Equal(t, "a", f.Slug)
		assert.Contains(t, f.Detail, "#0")
		assert.False(t, report.OK())
	})

	t.Run("Should report empty and non-canonical slugs", func(t *testing.T) {
		report := checkContent(t, `[
			{"title": "A \"One\""},
			{"slug": "Nike Air", "title": "Nike \"Air Max\""}
		]`)

		assert.Equal(t, 1, report.Count(KindEmptySlug))
		require.Equal(t, 1, report.Count(KindNonCanonicalSlug))
		assert.Contains(t, report.Findings[1].Detail, "nike-air-max")
	})

	t.Run("Should report non-object entries", func(t *testing.T) {
		report := checkContent(t, `[42]`)

		require.Len(t, report.Findings, 1)
		assert.Equal(t, KindNotObject, report.Findings[0].Kind)
	})

	t.Run("Should pass quoted titles with canonical slugs", func(t *testing.T) {
		report := checkContent(t, `[{"slug": "volvo-epic-split", "title": "Volvo “Epic Split”"}]`)

		assert.True(t, report.OK())
	})
}
