package link

import (
	"strconv"
	"strings"
)

// FormattedLink is the encode-time bundle. Link is the canonical
// string; RawLink is the pre-normalization form, kept as a separate
// field for callers that display it, though the two are identical
// today.
type FormattedLink struct {
	Link          string
	RawLink       string
	Type          LinkType
	Delims        Delimiters
	Selection     ComputedSelection
	SelectionType SelectionType
}

// Format encodes a selection as RangeLink text. Internal positions are
// 0-based and the link text is 1-based, so every number shifts by one
// on emit. Formatting is total: it never fails for non-negative
// positions, and paths containing delimiter tokens are the caller's
// problem under the delimiter contract.
func Format(path string, sels []RawSelection, selType SelectionType, d Delimiters) FormattedLink {
	sel := Compute(sels)

	hash := d.Hash
	linkType := LinkRegular
	if selType == SelectionRectangular {
		hash += d.Hash
		linkType = LinkRectangular
	}

	withColumns := sel.Format == LineColumn || sel.Format == LineColumnRange

	var b strings.Builder
	b.WriteString(path)
	b.WriteString(hash)
	b.WriteString(d.Line)
	b.WriteString(strconv.Itoa(sel.Start.Line + 1))
	if withColumns {
		b.WriteString(d.Position)
		b.WriteString(strconv.Itoa(sel.Start.Char + 1))
	}
	if needsEndpoint(sel) {
		b.WriteString(d.Range)
		b.WriteString(d.Line)
		b.WriteString(strconv.Itoa(sel.End.Line + 1))
		if withColumns {
			b.WriteString(d.Position)
			b.WriteString(strconv.Itoa(sel.End.Char + 1))
		}
	}

	text := b.String()
	return FormattedLink{
		Link:          text,
		RawLink:       text,
		Type:          linkType,
		Delims:        d,
		Selection:     sel,
		SelectionType: selType,
	}
}

// needsEndpoint reports whether the second endpoint is serialized:
// never for a single whole line or a degenerate point, always
// otherwise.
func needsEndpoint(sel ComputedSelection) bool {
	switch sel.Format {
	case LineOnly:
		return false
	case LineColumn:
		return sel.Start.Char != sel.End.Char
	default:
		return true
	}
}
