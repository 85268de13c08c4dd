package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"rangelink/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run as LSP server (communicates via stdio)",
	Long: `Run as an LSP server that communicates via stdio.
Provides document links, hovers, and diagnostics for RangeLink text in
open documents. Delimiters can be overridden per workspace through the
client's initializationOptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Logging goes to a file: stdin/stdout carry the protocol.
		logFile := cfg.Log.File
		if logFile == "" {
			logsDir := filepath.Join(os.TempDir(), "rangelink")
			if err := os.MkdirAll(logsDir, 0755); err != nil {
				return fmt.Errorf("failed to create logs directory: %w", err)
			}
			logFile = filepath.Join(logsDir, "rangelink.log")
		}
		commonlog.Configure(cfg.Log.Verbosity, &logFile)

		server, err := lsp.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		return server.RunStdio()
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)
}
