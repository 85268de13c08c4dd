package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rangelink/internal/link"
)

var parseShowTooltip bool

var parseCmd = &cobra.Command{
	Use:   "parse <link>",
	Short: "Parse a RangeLink and print its fields as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		parsed, err := link.Parse(args[0], cfg.Delims())
		if err != nil {
			return err
		}

		if parseShowTooltip {
			fmt.Println(link.Tooltip(parsed))
			return nil
		}
		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var (
	formatStartLine int
	formatStartCol  int
	formatEndLine   int
	formatEndCol    int
	formatWholeLine bool
	formatRect      bool
)

var formatCmd = &cobra.Command{
	Use:   "format <path>",
	Short: "Format a RangeLink for a selection in a file",
	Long: `Format a RangeLink for a line/column selection in a file.
Lines and columns are 1-based. The end line defaults to the start
line and the end column to the start column.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if formatStartLine < 1 {
			return fmt.Errorf("--start-line must be a positive 1-based line number")
		}
		endLine := formatEndLine
		if endLine == 0 {
			endLine = formatStartLine
		}
		if endLine < formatStartLine {
			return fmt.Errorf("--end-line %d is before --start-line %d", endLine, formatStartLine)
		}
		endCol := formatEndCol
		if endCol == 0 {
			endCol = formatStartCol
		}

		sel := link.RawSelection{
			Start:     link.Position{Line: formatStartLine - 1, Char: formatStartCol - 1},
			End:       link.Position{Line: endLine - 1, Char: endCol - 1},
			WholeLine: formatWholeLine,
		}
		selType := link.SelectionNormal
		if formatRect {
			selType = link.SelectionRectangular
		}

		formatted := link.Format(args[0], []link.RawSelection{sel}, selType, cfg.Delims())
		fmt.Println(formatted.Link)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a file (or stdin) for RangeLinks",
	Long: `Scan text for RangeLinks and print one line per occurrence:
the 1-based line:column position and the link text, tab separated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		pattern := link.NewPattern(cfg.Delims())
		for i, line := range strings.Split(string(data), "\n") {
			for _, m := range pattern.FindAll(line) {
				fmt.Printf("%d:%d\t%s\n", i+1, m.Start+1, m.Text)
			}
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseShowTooltip, "tooltip", false,
		"Print the human-readable display form instead of JSON")

	formatCmd.Flags().IntVar(&formatStartLine, "start-line", 0, "First line of the selection, 1-based (required)")
	formatCmd.Flags().IntVar(&formatStartCol, "start-col", 1, "First column of the selection, 1-based")
	formatCmd.Flags().IntVar(&formatEndLine, "end-line", 0, "Last line of the selection, 1-based")
	formatCmd.Flags().IntVar(&formatEndCol, "end-col", 0, "Last column of the selection, 1-based")
	formatCmd.Flags().BoolVar(&formatWholeLine, "whole-line", false, "Whole-line selection: emit line numbers only")
	formatCmd.Flags().BoolVar(&formatRect, "rect", false, "Rectangular block selection: doubled hash marker")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(scanCmd)
}
