package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bisegni/cursormock/pkg/console"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file|-]",
	Short: "Print the rows of a table",
	Long: `Print the column names and every row of a table as tab-separated cells.
Strings are quoted, blobs are shown as x'..' and nulls as null.

Examples:
  cursormock dump people.cursor
  cat data.jsonl | cursormock dump --format jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunDump(cmd.OutOrStdout(), argOrStdin(args))
	},
}

// RunDump prints every row of the table, one line per row, by walking a
// cursor from the first to the last row.
func RunDump(w io.Writer, filename string) error {
	t, err := loadInput(filename)
	if err != nil {
		return err
	}

	c := t.Open()
	defer c.Close()

	names := c.ColumnNames()
	fmt.Fprintln(w, strings.Join(names, "\t"))

	seq, err := c.Rows()
	if err != nil {
		return err
	}
	for row := range seq {
		cells := make([]string, len(names))
		for i := range cells {
			v, err := row.Value(i)
			if err != nil {
				return err
			}
			cells[i] = console.FormatValue(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
