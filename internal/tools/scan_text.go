package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rangelink/internal/link"
)

// ScanTextInput is the input schema for the scan_text tool.
type ScanTextInput struct {
	Text string `json:"text" jsonschema_description:"Arbitrary text (prose, terminal output, a document) to scan for RangeLinks."`
}

// ScanTextTool creates the scan_text MCP tool.
func ScanTextTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "scan_text",
		Description: "Find every RangeLink embedded in a blob of text. Returns one line per link: its 1-based line:column position, the link text, and its display form.",
	}
}

// ScanTextHandler handles the scan_text tool invocation.
func ScanTextHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, ScanTextInput) (*mcp.CallToolResult, any, error) {
	pattern := link.NewPattern(cfg.Delims)

	return func(ctx context.Context, req *mcp.CallToolRequest, input ScanTextInput) (*mcp.CallToolResult, any, error) {
		var sb strings.Builder
		for i, line := range strings.Split(input.Text, "\n") {
			for _, m := range pattern.FindAll(line) {
				parsed, err := m.Resolve()
				if err != nil {
					fmt.Fprintf(&sb, "%d:%d\t%s\tinvalid: %v\n", i+1, m.Start+1, m.Text, err)
					continue
				}
				fmt.Fprintf(&sb, "%d:%d\t%s\t%s\n", i+1, m.Start+1, m.Text, link.Tooltip(parsed))
			}
		}

		output := sb.String()
		if output == "" {
			output = "No RangeLinks found."
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: output},
			},
		}, nil, nil
	}
}
