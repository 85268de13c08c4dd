package link

import "regexp"

// Match is one candidate RangeLink located in a larger text. Start and
// End are byte offsets into the scanned string.
type Match struct {
	Text  string
	Start int
	End   int

	path        string
	rectangular bool
	startLine   string
	startCol    string
	endLine     string
	endCol      string
}

// Pattern recognizes RangeLink text built with one Delimiters set. A
// Pattern is reusable and safe for concurrent use.
type Pattern struct {
	re   *regexp.Regexp
	hash string
}

// NewPattern compiles the matcher for the link grammar:
//
//	<path><hash>{1,2}<line><n>[<pos><n>][<range><line><n>[<pos><n>]]
//
// The path is one or more non-whitespace characters; the lazy
// quantifier keeps it from swallowing the hash run. Line and column
// numbers are positive integers without leading zeros. A doubled hash
// marks a rectangular link.
func NewPattern(d Delimiters) *Pattern {
	line := regexp.QuoteMeta(d.Line)
	pos := regexp.QuoteMeta(d.Position)
	sep := regexp.QuoteMeta(d.Range)
	hash := regexp.QuoteMeta(d.Hash)

	const num = `([1-9][0-9]*)`
	expr := `(\S+?)` +
		`((?:` + hash + `){1,2})` +
		line + num +
		`(?:` + pos + num + `)?` +
		`(?:` + sep + line + num + `(?:` + pos + num + `)?)?`

	return &Pattern{
		re:   regexp.MustCompile(expr),
		hash: d.Hash,
	}
}

// FindAll locates every non-overlapping link candidate in text. The
// match is unanchored and repeatable, so links embedded in prose or
// terminal output are found. Document scanners call this once per
// line, since paths contain no whitespace and a link can never span
// lines.
func (p *Pattern) FindAll(text string) []Match {
	idx := p.re.FindAllStringSubmatchIndex(text, -1)
	if idx == nil {
		return nil
	}

	matches := make([]Match, 0, len(idx))
	for _, m := range idx {
		matches = append(matches, p.toMatch(text, m))
	}
	return matches
}

func (p *Pattern) toMatch(text string, m []int) Match {
	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}
	return Match{
		Text:  text[m[0]:m[1]],
		Start: m[0],
		End:   m[1],

		path: group(1),
		// A doubled hash run always wins: it forces the rectangular
		// reading no matter what the numeric fields look like.
		rectangular: len(group(2)) == 2*len(p.hash),
		startLine:   group(3),
		startCol:    group(4),
		endLine:     group(5),
		endCol:      group(6),
	}
}
