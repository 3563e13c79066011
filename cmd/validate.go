package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Validate that a file loads into a consistent table",
	Long: `Validate that every row of a file fits its columns: values must have a
supported type and every non-null value of a column the same type.

Examples:
  cursormock validate people.cursor
  cursormock validate data.jsonl
  cat data.json | cursormock validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	filename := argOrStdin(args)
	format, err := DetectFormat(filename, InputFormat)
	if err != nil {
		return err
	}

	t, err := loadInput(filename)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ Validation failed: %v\n", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Valid %s file with %d row(s) and %d column(s)\n",
		format, t.Count(), t.Schema().ColumnCount())
	return nil
}
