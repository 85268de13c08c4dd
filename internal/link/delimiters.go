// Package link implements the RangeLink codec: formatting an editor
// selection as a short textual link like src/file.go#L10C5-L20C15, and
// parsing such links back into structured ranges. All operations are
// pure functions and safe for concurrent use.
package link

// Delimiters is the set of user-configurable marker tokens used to
// build and recognize RangeLink text. The config layer validates that
// the tokens are non-empty and pairwise distinct before they reach the
// codec; the codec trusts them as given.
type Delimiters struct {
	Line     string
	Position string
	Range    string
	Hash     string
}

// DefaultDelimiters returns the conventional marker set.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Line:     "L",
		Position: "C",
		Range:    "-",
		Hash:     "#",
	}
}
