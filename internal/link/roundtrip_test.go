package link_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangelink/internal/link"
)

// Formatting a selection and parsing the result with the same
// delimiters must recover the path and the computed bounds exactly.
func TestRoundTrip(t *testing.T) {
	configs := map[string]link.Delimiters{
		"default": link.DefaultDelimiters(),
		"custom":  {Line: ":", Position: "@", Range: "~", Hash: "%"},
	}

	tests := []struct {
		name    string
		path    string
		sels    []link.RawSelection
		selType link.SelectionType
	}{
		{
			name:    "multi line with columns",
			path:    "src/file.ts",
			sels:    []link.RawSelection{sel(9, 4, 19, 14)},
			selType: link.SelectionNormal,
		},
		{
			name:    "degenerate point",
			path:    "a.go",
			sels:    []link.RawSelection{sel(4, 2, 4, 2)},
			selType: link.SelectionNormal,
		},
		{
			name:    "column span on one line",
			path:    "a.go",
			sels:    []link.RawSelection{sel(4, 2, 4, 9)},
			selType: link.SelectionNormal,
		},
		{
			name:    "single whole line",
			path:    "deep/nested/dir/file.rs",
			sels:    []link.RawSelection{wholeLineSel(0, 0)},
			selType: link.SelectionNormal,
		},
		{
			name:    "whole line range",
			path:    "a.go",
			sels:    []link.RawSelection{wholeLineSel(9, 19)},
			selType: link.SelectionNormal,
		},
		{
			name: "rectangular block",
			path: "a.go",
			sels: []link.RawSelection{
				sel(2, 0, 2, 0), sel(3, 0, 3, 0), sel(4, 0, 4, 0),
				sel(5, 0, 5, 0), sel(6, 0, 6, 0), sel(7, 0, 7, 0),
			},
			selType: link.SelectionRectangular,
		},
		{
			name:    "multi cursor union",
			path:    "a.go",
			sels:    []link.RawSelection{sel(10, 6, 10, 9), sel(3, 2, 3, 4)},
			selType: link.SelectionNormal,
		},
	}

	for cfgName, delims := range configs {
		for _, tc := range tests {
			t.Run(cfgName+"/"+tc.name, func(t *testing.T) {
				formatted := link.Format(tc.path, tc.sels, tc.selType, delims)

				parsed, err := link.Parse(formatted.Link, delims)
				require.NoError(t, err)

				assert.Equal(t, tc.path, parsed.Path)
				assert.Equal(t, formatted.Selection.Start, parsed.Start)
				assert.Equal(t, formatted.Selection.End, parsed.End)
				assert.Equal(t, formatted.Type, parsed.Type)
				assert.Equal(t, tc.selType, parsed.SelectionType)
			})
		}
	}
}
