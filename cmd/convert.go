package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bisegni/cursormock/pkg/arrowio"
	"github.com/bisegni/cursormock/pkg/database"
	"github.com/bisegni/cursormock/pkg/fixture"
	"github.com/bisegni/cursormock/pkg/parser"
	"github.com/spf13/cobra"
)

var (
	convertTo  string
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert a table between fixture, JSON, JSONL and Parquet",
	Long: `Convert a table to another format. Output goes to stdout unless --out is
given; Parquet output requires --out.

Examples:
  cursormock convert data.json --to fixture
  cursormock convert people.cursor --to jsonl
  cursormock convert people.cursor --to parquet --out people.parquet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "Target format (fixture, json, jsonl or parquet)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file")
	convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	t, err := loadInput(argOrStdin(args))
	if err != nil {
		return err
	}

	if convertTo == FormatParquet {
		if convertOut == "" {
			return fmt.Errorf("--out is required for parquet output")
		}
		return arrowio.WriteParquet(t, convertOut)
	}

	if convertOut == "" {
		return WriteTable(cmd.OutOrStdout(), t, convertTo, OutputPretty)
	}
	return writeTableFile(convertOut, t, convertTo, OutputPretty)
}

// writeTableFile writes t to path, reporting errors of the final close.
func writeTableFile(path string, t *database.Table, format string, pretty bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return WriteTable(f, t, format, pretty)
}

// WriteTable writes t to w in a text format.
func WriteTable(w io.Writer, t *database.Table, format string, pretty bool) error {
	switch format {
	case FormatFixture:
		return fixture.Write(w, t)
	case FormatJSON, FormatJSONL:
		records, err := t.Records()
		if err != nil {
			return err
		}
		if format == FormatJSONL {
			return parser.WriteJSONL(w, records, pretty)
		}
		return parser.WriteJSON(w, records, pretty)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
