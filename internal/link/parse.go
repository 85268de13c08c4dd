package link

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel kinds for decode failures. Parse wraps these in a
// *ParseError carrying the offending input; match with errors.Is.
var (
	ErrInvalidFormat      = errors.New("input does not match the link grammar")
	ErrInvalidRangeFormat = errors.New("invalid range format")
	ErrEmptyPath          = errors.New("link has no path before the hash marker")
)

// ParseError is the typed decode failure. Encoding never fails; only
// the decode path produces these, and they are returned, never
// panicked.
type ParseError struct {
	Kind  error
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func parseError(kind error, input string) error {
	return &ParseError{Kind: kind, Input: input}
}

// ParsedLink is the decode-time result. Positions are 0-based, the
// inverse of the 1-based display form in the link text.
type ParsedLink struct {
	Path          string        `json:"path"`
	Start         Position      `json:"start"`
	End           Position      `json:"end"`
	Type          LinkType      `json:"linkType"`
	SelectionType SelectionType `json:"selectionType"`
}

// Parse decodes a standalone link string with the given delimiters.
// Callers holding a Pattern should use Pattern.Parse instead.
func Parse(input string, d Delimiters) (ParsedLink, error) {
	return NewPattern(d).Parse(input)
}

// Parse decodes a standalone link. Unlike document scanning, the whole
// trimmed input must be a single link: a match that leaves leading or
// trailing text is rejected.
func (p *Pattern) Parse(input string) (ParsedLink, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ParsedLink{}, parseError(ErrInvalidFormat, input)
	}
	// A hash with nothing before it can never match the grammar, so it
	// would otherwise be misreported as a plain format error.
	if strings.HasPrefix(trimmed, p.hash) {
		return ParsedLink{}, parseError(ErrEmptyPath, input)
	}

	matches := p.FindAll(trimmed)
	if len(matches) == 0 {
		return ParsedLink{}, parseError(ErrInvalidFormat, input)
	}
	m := matches[0]
	if m.Start != 0 || m.End != len(trimmed) {
		return ParsedLink{}, parseError(ErrInvalidRangeFormat, input)
	}
	return m.Resolve()
}

// Resolve converts a structural match into a ParsedLink. The grammar
// restricts the numeric groups to digit runs, so number conversion
// cannot fail; the only failure left is a range that ends before it
// starts.
func (m Match) Resolve() (ParsedLink, error) {
	start := Position{Line: atoi(m.startLine) - 1}
	if m.startCol != "" {
		start.Char = atoi(m.startCol) - 1
	}

	// A missing second endpoint denotes a single line or point. A
	// second endpoint without its own column inherits the start
	// column: the codec has no document access, so "end of that line"
	// has no representable column here.
	end := start
	if m.endLine != "" {
		end = Position{Line: atoi(m.endLine) - 1, Char: start.Char}
		if m.endCol != "" {
			end.Char = atoi(m.endCol) - 1
		}
	}

	if end.Line < start.Line || (end.Line == start.Line && end.Char < start.Char) {
		return ParsedLink{}, parseError(ErrInvalidRangeFormat, m.Text)
	}

	// Selection shape follows the hash marker alone; it is never
	// re-inferred from how the two endpoints relate numerically.
	linkType, selType := LinkRegular, SelectionNormal
	if m.rectangular {
		linkType, selType = LinkRectangular, SelectionRectangular
	}

	return ParsedLink{
		Path:          m.path,
		Start:         start,
		End:           end,
		Type:          linkType,
		SelectionType: selType,
	}, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
