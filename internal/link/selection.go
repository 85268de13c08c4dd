package link

import "sort"

// Position is a point in a document. Lines and characters are 0-based
// everywhere inside this package; link text is 1-based and the
// formatter/parser shift on the boundary.
type Position struct {
	Line int `json:"line"`
	Char int `json:"char"`
}

// RawSelection is one editor selection as supplied by the host.
// WholeLine marks a selection made in whole-line mode; the host
// decides, since the codec never inspects line lengths.
type RawSelection struct {
	Start     Position
	End       Position
	WholeLine bool
}

// SelectionType classifies selection shape.
type SelectionType string

const (
	SelectionNormal      SelectionType = "normal"
	SelectionRectangular SelectionType = "rectangular"
)

// LinkType distinguishes a regular link from a rectangular (block)
// link, which is encoded with a doubled hash marker.
type LinkType string

const (
	LinkRegular     LinkType = "regular"
	LinkRectangular LinkType = "rectangular"
)

// RangeFormat controls how much positional detail is serialized into
// the link text.
type RangeFormat string

const (
	LineOnly        RangeFormat = "line"
	LineRange       RangeFormat = "line-range"
	LineColumn      RangeFormat = "line-column"
	LineColumnRange RangeFormat = "line-column-range"
)

// ComputedSelection is the bounding selection a link is built from.
// Start.Line <= End.Line always; when the lines are equal,
// Start.Char <= End.Char. For whole-line formats the Char fields are
// normalized to 0, since the link text carries no columns for them.
type ComputedSelection struct {
	Start  Position
	End    Position
	Format RangeFormat
}

// Classify decides whether a set of selections forms a rectangular
// block. Editors don't expose block selection directly, so this is a
// structural heuristic: at least two selections, all sharing the same
// start and end character offsets, whose start lines form a contiguous
// ascending run. Everything else is normal, including multi-cursor
// selections that don't line up and same-column selections with a line
// gap between them.
func Classify(sels []RawSelection) SelectionType {
	if len(sels) < 2 {
		return SelectionNormal
	}

	first := sels[0]
	lines := make([]int, len(sels))
	for i, s := range sels {
		if s.Start.Char != first.Start.Char || s.End.Char != first.End.Char {
			return SelectionNormal
		}
		lines[i] = s.Start.Line
	}

	sort.Ints(lines)
	for i := 1; i < len(lines); i++ {
		if lines[i] != lines[i-1]+1 {
			return SelectionNormal
		}
	}
	return SelectionRectangular
}

// Compute derives the bounding selection and its range format from one
// or more raw selections. For multiple selections (multi-cursor or a
// rectangular block) the bounds are the union: minimum start, maximum
// end. The result counts as whole-line only when every component is
// whole-line.
func Compute(sels []RawSelection) ComputedSelection {
	if len(sels) == 0 {
		return ComputedSelection{Format: LineOnly}
	}

	start := sels[0].Start
	end := sels[0].End
	whole := sels[0].WholeLine
	for _, s := range sels[1:] {
		if s.Start.Line < start.Line || (s.Start.Line == start.Line && s.Start.Char < start.Char) {
			start = s.Start
		}
		if s.End.Line > end.Line || (s.End.Line == end.Line && s.End.Char > end.Char) {
			end = s.End
		}
		whole = whole && s.WholeLine
	}

	var format RangeFormat
	switch {
	case whole && start.Line == end.Line:
		format = LineOnly
	case whole:
		format = LineRange
	case start.Line == end.Line:
		format = LineColumn
	default:
		format = LineColumnRange
	}

	if format == LineOnly || format == LineRange {
		start.Char = 0
		end.Char = 0
	}
	return ComputedSelection{Start: start, End: end, Format: format}
}
