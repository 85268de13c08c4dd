package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangelink/internal/document"
	"rangelink/internal/link"
)

func newPattern() *link.Pattern {
	return link.NewPattern(link.DefaultDelimiters())
}

func TestDocumentScan(t *testing.T) {
	content := "intro line\nsee src/a.go#L10C5-L20C15 here\nand src/b.go##L3C1-L8C1\n"
	doc := document.New(content, newPattern())

	links := doc.Links()
	require.Len(t, links, 2)

	assert.Equal(t, "src/a.go#L10C5-L20C15", links[0].Text)
	assert.Equal(t, uint32(1), links[0].Range.Start.Line)
	assert.Equal(t, uint32(4), links[0].Range.Start.Character)
	assert.Equal(t, uint32(25), links[0].Range.End.Character)
	require.NotNil(t, links[0].Link)
	assert.Equal(t, "src/a.go", links[0].Link.Path)

	require.NotNil(t, links[1].Link)
	assert.Equal(t, link.LinkRectangular, links[1].Link.Type)
}

func TestDocumentScanKeepsMalformedOccurrences(t *testing.T) {
	doc := document.New("broken src/a.go#L9-L3 link\n", newPattern())

	links := doc.Links()
	require.Len(t, links, 1)
	assert.Nil(t, links[0].Link)
	assert.ErrorIs(t, links[0].Err, link.ErrInvalidRangeFormat)
}

func TestDocumentApplyChanges(t *testing.T) {
	doc := document.New("see src/a.go#L5\n", newPattern())
	require.Len(t, doc.Links(), 1)

	// Append a column to the existing link.
	err := doc.ApplyChanges([]document.Change{{
		Range: &document.Range{
			Start: document.Position{Line: 0, Character: 15},
			End:   document.Position{Line: 0, Character: 15},
		},
		NewText: "C3",
	}})
	require.NoError(t, err)
	assert.Equal(t, "see src/a.go#L5C3\n", doc.Content())

	links := doc.Links()
	require.Len(t, links, 1)
	require.NotNil(t, links[0].Link)
	assert.Equal(t, link.Position{Line: 4, Char: 2}, links[0].Link.Start)
}

func TestDocumentApplyChangesWholeContent(t *testing.T) {
	doc := document.New("no links at all\n", newPattern())
	require.Empty(t, doc.Links())

	err := doc.ApplyChanges([]document.Change{{NewText: "now src/a.go#L1C1\n"}})
	require.NoError(t, err)
	require.Len(t, doc.Links(), 1)
}

func TestDocumentApplyChangesDeletion(t *testing.T) {
	doc := document.New("see src/a.go#L5 here\n", newPattern())

	// Delete the hash so the link no longer matches.
	err := doc.ApplyChanges([]document.Change{{
		Range: &document.Range{
			Start: document.Position{Line: 0, Character: 12},
			End:   document.Position{Line: 0, Character: 13},
		},
		NewText: "",
	}})
	require.NoError(t, err)
	assert.Equal(t, "see src/a.goL5 here\n", doc.Content())
	assert.Empty(t, doc.Links())
}

func TestDocumentApplyChangesInvertedRange(t *testing.T) {
	doc := document.New("abc\n", newPattern())

	err := doc.ApplyChanges([]document.Change{{
		Range: &document.Range{
			Start: document.Position{Line: 0, Character: 3},
			End:   document.Position{Line: 0, Character: 1},
		},
		NewText: "x",
	}})
	assert.Error(t, err)
}

func TestDocumentLinkAt(t *testing.T) {
	doc := document.New("pad src/a.go#L5 pad\n", newPattern())

	// The occurrence spans characters 4 to 15, end exclusive.
	occ, ok := doc.LinkAt(document.Position{Line: 0, Character: 4})
	require.True(t, ok)
	assert.Equal(t, "src/a.go#L5", occ.Text)

	_, ok = doc.LinkAt(document.Position{Line: 0, Character: 14})
	assert.True(t, ok)

	_, ok = doc.LinkAt(document.Position{Line: 0, Character: 15})
	assert.False(t, ok)

	_, ok = doc.LinkAt(document.Position{Line: 0, Character: 3})
	assert.False(t, ok)

	_, ok = doc.LinkAt(document.Position{Line: 1, Character: 4})
	assert.False(t, ok)
}

func TestManager(t *testing.T) {
	m := document.NewManager(newPattern())

	doc, err := m.Open("file:///a.go", "src/a.go#L5\n")
	require.NoError(t, err)
	require.NotNil(t, doc)

	_, err = m.Open("file:///a.go", "")
	assert.Error(t, err)

	got, ok := m.Get("file:///a.go")
	require.True(t, ok)
	assert.Same(t, doc, got)

	require.NoError(t, m.Close("file:///a.go"))
	assert.Error(t, m.Close("file:///a.go"))

	_, err = m.Open("file:///b.go", "")
	require.NoError(t, err)
	m.CloseAll()
	_, ok = m.Get("file:///b.go")
	assert.False(t, ok)
}
