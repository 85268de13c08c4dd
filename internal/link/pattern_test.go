package link_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangelink/internal/link"
)

func TestPatternFindAll(t *testing.T) {
	pattern := link.NewPattern(link.DefaultDelimiters())

	t.Run("links embedded in prose", func(t *testing.T) {
		text := "compare src/a.go#L10C5-L20C15 with src/b.go#L3, then decide"
		matches := pattern.FindAll(text)
		require.Len(t, matches, 2)

		assert.Equal(t, "src/a.go#L10C5-L20C15", matches[0].Text)
		assert.Equal(t, 8, matches[0].Start)
		assert.Equal(t, 29, matches[0].End)

		assert.Equal(t, "src/b.go#L3", matches[1].Text)
		assert.Equal(t, 35, matches[1].Start)
	})

	t.Run("rectangular and regular side by side", func(t *testing.T) {
		text := "a.go##L3C1-L8C1 a.go#L3C1-L8C1"
		matches := pattern.FindAll(text)
		require.Len(t, matches, 2)

		first, err := matches[0].Resolve()
		require.NoError(t, err)
		assert.Equal(t, link.LinkRectangular, first.Type)

		second, err := matches[1].Resolve()
		require.NoError(t, err)
		assert.Equal(t, link.LinkRegular, second.Type)

		// Same numbers either way; only the marker decides the shape.
		assert.Equal(t, first.Start, second.Start)
		assert.Equal(t, first.End, second.End)
	})

	t.Run("trailing punctuation stays outside the match", func(t *testing.T) {
		matches := pattern.FindAll("see src/a.go#L5, or don't")
		require.Len(t, matches, 1)
		assert.Equal(t, "src/a.go#L5", matches[0].Text)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Nil(t, pattern.FindAll("nothing to see here"))
		assert.Nil(t, pattern.FindAll(""))
	})

	t.Run("inverted range still matches structurally", func(t *testing.T) {
		matches := pattern.FindAll("broken a.go#L9-L3 link")
		require.Len(t, matches, 1)

		_, err := matches[0].Resolve()
		assert.ErrorIs(t, err, link.ErrInvalidRangeFormat)
	})
}

func TestPatternCustomDelimiters(t *testing.T) {
	pattern := link.NewPattern(link.Delimiters{Line: ":", Position: "@", Range: "~", Hash: "%"})

	matches := pattern.FindAll("open a.go%:10@5~:20@15 please")
	require.Len(t, matches, 1)

	parsed, err := matches[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, "a.go", parsed.Path)
	assert.Equal(t, link.Position{Line: 9, Char: 4}, parsed.Start)
	assert.Equal(t, link.Position{Line: 19, Char: 14}, parsed.End)
}
