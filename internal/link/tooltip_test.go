package link_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rangelink/internal/link"
)

func TestTooltip(t *testing.T) {
	tests := []struct {
		name string
		link link.ParsedLink
		want string
	}{
		{
			name: "single line",
			link: link.ParsedLink{Start: link.Position{Line: 4}, End: link.Position{Line: 4}},
			want: "Line 5",
		},
		{
			name: "single point with column",
			link: link.ParsedLink{
				Start: link.Position{Line: 4, Char: 2},
				End:   link.Position{Line: 4, Char: 2},
			},
			want: "Line 5, Col 3",
		},
		{
			name: "column span on one line",
			link: link.ParsedLink{
				Start: link.Position{Line: 4, Char: 2},
				End:   link.Position{Line: 4, Char: 14},
			},
			want: "Line 5, Col 3-15",
		},
		{
			name: "line range",
			link: link.ParsedLink{Start: link.Position{Line: 9}, End: link.Position{Line: 19}},
			want: "Lines 10-20",
		},
		{
			name: "full range",
			link: link.ParsedLink{
				Start: link.Position{Line: 9, Char: 4},
				End:   link.Position{Line: 19, Char: 14},
			},
			want: "Line 10, Col 5 - Line 20, Col 15",
		},
		{
			name: "rectangular block",
			link: link.ParsedLink{
				Start: link.Position{Line: 2, Char: 1},
				End:   link.Position{Line: 7, Char: 5},
				Type:  link.LinkRectangular,
			},
			want: "Block Line 3, Col 2 - Line 8, Col 6",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, link.Tooltip(tc.link))
		})
	}
}
