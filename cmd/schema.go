package cmd

import (
	"fmt"
	"io"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/database"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [file|-]",
	Short: "Show the columns, types and cell statistics of a table",
	Long: `Display the schema of a table: its columns with their detected types,
followed by the cell types seen in every column.

Examples:
  cursormock schema people.cursor
  cursormock schema data.json --columns id,name
  cat data.json | cursormock schema`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	filename := argOrStdin(args)
	t, err := loadInput(filename)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if filename == "-" {
		fmt.Fprintf(w, "File: <stdin>\n")
	} else {
		fmt.Fprintf(w, "File: %s\n", filename)
	}
	fmt.Fprint(w, database.FormatSchema(t))
	return printCellStats(w, t)
}

// cellStats counts the cell types of every column.
func cellStats(t *database.Table) ([]map[column.CellType]int, error) {
	c := t.Open()
	defer c.Close()

	stats := make([]map[column.CellType]int, c.ColumnCount())
	for i := range stats {
		stats[i] = make(map[column.CellType]int)
	}

	seq, err := c.Rows()
	if err != nil {
		return nil, err
	}
	for row := range seq {
		for i := range stats {
			typ, err := row.Type(i)
			if err != nil {
				return nil, err
			}
			stats[i][typ]++
		}
	}
	return stats, nil
}

func printCellStats(w io.Writer, t *database.Table) error {
	if t.Count() == 0 {
		return nil
	}
	stats, err := cellStats(t)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCells:\n")
	for i, types := range stats {
		name, _ := t.Schema().ColumnName(i)
		fmt.Fprintf(w, "  %s:\n", name)
		for typ := column.CellNull; typ <= column.CellBlob; typ++ {
			if count := types[typ]; count > 0 {
				fmt.Fprintf(w, "    %s: %d (%.1f%%)\n", typ, count, float64(count)/float64(t.Count())*100)
			}
		}
	}
	return nil
}
