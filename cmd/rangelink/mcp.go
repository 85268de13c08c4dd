package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"rangelink/internal/tools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as MCP server (communicates via stdio)",
	Long: `Run as an MCP server that communicates via stdio.
Exposes tools: parse_link, format_link, scan_text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// The simple backend writes to stderr; stdout is the transport.
		commonlog.Configure(cfg.Log.Verbosity, nil)

		toolCfg := &tools.Config{Delims: cfg.Delims()}

		s := mcp.NewServer(&mcp.Implementation{
			Name:    "rangelink",
			Version: "0.1.0",
		}, nil)

		mcp.AddTool(s, tools.ParseLinkTool(), tools.ParseLinkHandler(toolCfg))
		mcp.AddTool(s, tools.FormatLinkTool(), tools.FormatLinkHandler(toolCfg))
		mcp.AddTool(s, tools.ScanTextTool(), tools.ScanTextHandler(toolCfg))

		return s.Run(context.Background(), &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
