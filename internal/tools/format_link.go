package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rangelink/internal/link"
)

// FormatLinkInput is the input schema for the format_link tool. Lines
// and columns are 1-based, matching what a human reads in an editor
// gutter.
type FormatLinkInput struct {
	Path        string `json:"path" jsonschema_description:"File path the link points at. Must not contain whitespace."`
	StartLine   int    `json:"startLine" jsonschema_description:"First line of the selection, 1-based."`
	StartColumn int    `json:"startColumn,omitempty" jsonschema_description:"First column of the selection, 1-based. Defaults to 1."`
	EndLine     int    `json:"endLine,omitempty" jsonschema_description:"Last line of the selection, 1-based. Defaults to startLine."`
	EndColumn   int    `json:"endColumn,omitempty" jsonschema_description:"Last column of the selection, 1-based. Defaults to startColumn."`
	WholeLine   bool   `json:"wholeLine,omitempty" jsonschema_description:"Whole-line selection: the link carries line numbers only, no columns."`
	Rectangular bool   `json:"rectangular,omitempty" jsonschema_description:"Rectangular (block) selection: the link uses a doubled hash marker and the positions describe the block's corners."`
}

// FormatLinkTool creates the format_link MCP tool.
func FormatLinkTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "format_link",
		Description: "Format a RangeLink for a line/column selection in a file, e.g. src/file.go#L10C5-L20C15.",
	}
}

// FormatLinkHandler handles the format_link tool invocation.
func FormatLinkHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, FormatLinkInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FormatLinkInput) (*mcp.CallToolResult, any, error) {
		if input.Path == "" {
			return nil, nil, fmt.Errorf("path is required")
		}
		if input.StartLine < 1 {
			return nil, nil, fmt.Errorf("startLine must be a positive 1-based line number, got %d", input.StartLine)
		}

		startCol := input.StartColumn
		if startCol < 1 {
			startCol = 1
		}
		endLine := input.EndLine
		if endLine == 0 {
			endLine = input.StartLine
		}
		if endLine < input.StartLine {
			return nil, nil, fmt.Errorf("endLine %d is before startLine %d", endLine, input.StartLine)
		}
		endCol := input.EndColumn
		if endCol == 0 {
			endCol = startCol
		}

		sel := link.RawSelection{
			Start:     link.Position{Line: input.StartLine - 1, Char: startCol - 1},
			End:       link.Position{Line: endLine - 1, Char: endCol - 1},
			WholeLine: input.WholeLine,
		}
		selType := link.SelectionNormal
		if input.Rectangular {
			selType = link.SelectionRectangular
		}

		formatted := link.Format(input.Path, []link.RawSelection{sel}, selType, cfg.Delims)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: formatted.Link},
			},
		}, nil, nil
	}
}
