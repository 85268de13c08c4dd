// Package document keeps the open editor documents in memory, applies
// incremental content changes, and caches the RangeLink occurrences
// found in each document.
package document

import (
	"fmt"
	"strings"
	"sync"

	"rangelink/internal/link"
)

// Position is a point in a document, 0-based, mirroring the wire
// protocol's coordinates.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a span in a document.
type Range struct {
	Start Position
	End   Position
}

// Change is one content change. A nil Range replaces the whole
// content.
type Change struct {
	Range   *Range
	NewText string
}

// Occurrence is one RangeLink candidate found in a document. Link is
// nil when the text matched the grammar but failed range validation;
// Err then carries the typed parse error.
type Occurrence struct {
	Range Range
	Text  string
	Link  *link.ParsedLink
	Err   error
}

// Document is one open document. Content mutations and rescans happen
// under the write lock; readers get the cached scan results.
type Document struct {
	pattern *link.Pattern
	mu      sync.RWMutex
	content string
	links   []Occurrence
}

// New creates a document and scans its initial content.
func New(content string, pattern *link.Pattern) *Document {
	return &Document{
		pattern: pattern,
		content: content,
		links:   scan(content, pattern),
	}
}

func (d *Document) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

// ApplyChanges splices each change into the content in order, then
// rescans for links once.
func (d *Document) ApplyChanges(changes []Change) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, change := range changes {
		if change.Range == nil {
			d.content = change.NewText
			continue
		}

		startOffset := d.positionToOffset(change.Range.Start)
		endOffset := d.positionToOffset(change.Range.End)
		if endOffset < startOffset {
			return fmt.Errorf("change range ends before it starts: %v", *change.Range)
		}
		d.content = d.content[:startOffset] + change.NewText + d.content[endOffset:]
	}

	d.links = scan(d.content, d.pattern)
	return nil
}

// Links returns a copy of the cached occurrences.
func (d *Document) Links() []Occurrence {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Occurrence, len(d.links))
	copy(out, d.links)
	return out
}

// LinkAt returns the occurrence covering pos, if any. The end of an
// occurrence is exclusive.
func (d *Document) LinkAt(pos Position) (Occurrence, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, occ := range d.links {
		if occ.Range.Start.Line != pos.Line {
			continue
		}
		if pos.Character >= occ.Range.Start.Character && pos.Character < occ.Range.End.Character {
			return occ, true
		}
	}
	return Occurrence{}, false
}

// positionToOffset converts a position to a byte offset into the
// content, clamping past-the-end positions to the content length.
func (d *Document) positionToOffset(pos Position) int {
	offset := 0
	var line uint32
	for offset < len(d.content) && line < pos.Line {
		if d.content[offset] == '\n' {
			line++
		}
		offset++
	}

	offset += int(pos.Character)
	if offset > len(d.content) {
		offset = len(d.content)
	}
	return offset
}

// scan finds link occurrences line by line. Links never span lines,
// since paths contain no whitespace, so per-line matching keeps the
// character offsets trivial.
func scan(content string, pattern *link.Pattern) []Occurrence {
	var occs []Occurrence
	for i, text := range strings.Split(content, "\n") {
		for _, m := range pattern.FindAll(text) {
			occ := Occurrence{
				Range: Range{
					Start: Position{Line: uint32(i), Character: uint32(m.Start)},
					End:   Position{Line: uint32(i), Character: uint32(m.End)},
				},
				Text: m.Text,
			}
			if parsed, err := m.Resolve(); err != nil {
				occ.Err = err
			} else {
				occ.Link = &parsed
			}
			occs = append(occs, occ)
		}
	}
	return occs
}
