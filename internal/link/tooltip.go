package link

import "fmt"

// Tooltip renders a short human-readable description of a parsed link
// for UI hovers. Display is 1-based and lossy: the path is omitted,
// and a column-less line cannot be told apart from column 1.
func Tooltip(l ParsedLink) string {
	startLine := l.Start.Line + 1
	endLine := l.End.Line + 1
	startCol := l.Start.Char + 1
	endCol := l.End.Char + 1

	var text string
	switch {
	case l.Start == l.End && l.Start.Char == 0:
		text = fmt.Sprintf("Line %d", startLine)
	case l.Start == l.End:
		text = fmt.Sprintf("Line %d, Col %d", startLine, startCol)
	case l.Start.Line == l.End.Line:
		text = fmt.Sprintf("Line %d, Col %d-%d", startLine, startCol, endCol)
	case l.Start.Char == 0 && l.End.Char == 0:
		text = fmt.Sprintf("Lines %d-%d", startLine, endLine)
	default:
		text = fmt.Sprintf("Line %d, Col %d - Line %d, Col %d", startLine, startCol, endLine, endCol)
	}

	if l.Type == LinkRectangular {
		text = "Block " + text
	}
	return text
}
