package htmlgrade_test

import (
	"testing"

	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/goquery"
	"github.com/fwojciec/htmlgrade/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<html><head><title>Test</title></head><body><h1>Hi</h1></body></html>`

// countingDocument returns fixed counts per selector.
func countingDocument(counts map[string]int) *mock.Document {
	return &mock.Document{
		CountFn: func(selector string) (int, error) {
			return counts[selector], nil
		},
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("reports presence of tags in parsed document", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(sampleHTML)
		require.NoError(t, err)

		result, err := htmlgrade.Check(doc, []string{"h1", "title", "p"})
		require.NoError(t, err)

		assert.Equal(t, []htmlgrade.SelectorCheck{
			{Selector: "h1", Found: true},
			{Selector: "p", Found: false},
			{Selector: "title", Found: true},
		}, result.Checks)
	})

	t.Run("sorts selectors regardless of input order", func(t *testing.T) {
		t.Parallel()

		doc := countingDocument(map[string]int{"b": 1})

		first, err := htmlgrade.Check(doc, []string{"c", "a", "b"})
		require.NoError(t, err)
		second, err := htmlgrade.Check(doc, []string{"b", "c", "a"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "a", first.Checks[0].Selector)
		assert.Equal(t, "b", first.Checks[1].Selector)
		assert.Equal(t, "c", first.Checks[2].Selector)
	})

	t.Run("treats any positive count as found", func(t *testing.T) {
		t.Parallel()

		doc := countingDocument(map[string]int{"li": 12, "ul": 1})

		result, err := htmlgrade.Check(doc, []string{"li", "ul", "ol"})
		require.NoError(t, err)

		found, ok := result.Found("li")
		assert.True(t, ok)
		assert.True(t, found)
		found, ok = result.Found("ol")
		assert.True(t, ok)
		assert.False(t, found)
		assert.Equal(t, 2, result.FoundCount())
	})

	t.Run("collapses duplicate selectors into one entry", func(t *testing.T) {
		t.Parallel()

		doc := countingDocument(map[string]int{"h1": 1})

		result, err := htmlgrade.Check(doc, []string{"h1", "p", "h1"})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Len())
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		t.Parallel()

		doc := countingDocument(nil)
		selectors := []string{"z", "a"}

		_, err := htmlgrade.Check(doc, selectors)
		require.NoError(t, err)

		assert.Equal(t, []string{"z", "a"}, selectors)
	})

	t.Run("returns empty result for empty list", func(t *testing.T) {
		t.Parallel()

		result, err := htmlgrade.Check(countingDocument(nil), nil)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Len())
	})

	t.Run("is repeatable on the same document", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.ParseString(sampleHTML)
		require.NoError(t, err)
		selectors := []string{"title", "h1", "div#week"}

		first, err := htmlgrade.Check(doc, selectors)
		require.NoError(t, err)
		second, err := htmlgrade.Check(doc, selectors)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns query error without partial result", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			CountFn: func(selector string) (int, error) {
				if selector == "p[" {
					return 0, htmlgrade.Errorf(htmlgrade.EQUERY, "invalid selector %q", selector)
				}
				return 1, nil
			},
		}

		result, err := htmlgrade.Check(doc, []string{"h1", "p["})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, htmlgrade.EQUERY, htmlgrade.ErrorCode(err))
		assert.Contains(t, htmlgrade.ErrorMessage(err), "p[")
	})

	t.Run("returns error for nil document", func(t *testing.T) {
		t.Parallel()

		_, err := htmlgrade.Check(nil, []string{"h1"})

		require.Error(t, err)
		assert.Equal(t, htmlgrade.EINVALID, htmlgrade.ErrorCode(err))
	})
}

func TestCheckResult_Found(t *testing.T) {
	t.Parallel()

	result := &htmlgrade.CheckResult{Checks: []htmlgrade.SelectorCheck{
		{Selector: "a", Found: true},
		{Selector: "b", Found: false},
	}}

	_, ok := result.Found("missing")

	assert.False(t, ok)
}
