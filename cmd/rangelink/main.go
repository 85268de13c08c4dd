package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "github.com/tliron/commonlog/simple"

	"rangelink/internal/config"
)

var (
	configPath string
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "rangelink",
	Short: "RangeLink codec and servers",
	Long: `rangelink formats and parses RangeLink text: short textual links to
line/column ranges in source files, like src/file.go#L10C5-L20C15.
A doubled hash (##) marks a rectangular block selection.

It can run as an LSP server (document links, hovers, and diagnostics
in editors) or as an MCP server (link tools for chat assistants), and
it offers parse/format/scan commands for shells and scripts.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML config file with delimiter and log settings")
	rootCmd.PersistentFlags().IntVar(&verbosity, "verbose", 1,
		"Log verbosity")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = verbosity
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
