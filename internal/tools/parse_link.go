package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rangelink/internal/link"
)

// ParseLinkInput is the input schema for the parse_link tool.
type ParseLinkInput struct {
	Link string `json:"link" jsonschema_description:"The RangeLink text to parse, e.g. src/file.go#L10C5-L20C15. A doubled hash (##) marks a rectangular block selection."`
}

// ParseLinkTool creates the parse_link MCP tool.
func ParseLinkTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "parse_link",
		Description: "Parse a RangeLink into its file path, start and end positions (1-based lines and columns), and selection kind.",
	}
}

// ParseLinkHandler handles the parse_link tool invocation.
func ParseLinkHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, ParseLinkInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ParseLinkInput) (*mcp.CallToolResult, any, error) {
		parsed, err := link.Parse(input.Link, cfg.Delims)
		if err != nil {
			return nil, nil, err
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "path: %s\n", parsed.Path)
		fmt.Fprintf(&sb, "start: line %d, col %d\n", parsed.Start.Line+1, parsed.Start.Char+1)
		fmt.Fprintf(&sb, "end: line %d, col %d\n", parsed.End.Line+1, parsed.End.Char+1)
		fmt.Fprintf(&sb, "selection: %s\n", parsed.SelectionType)
		fmt.Fprintf(&sb, "display: %s\n", link.Tooltip(parsed))

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: sb.String()},
			},
		}, nil, nil
	}
}
