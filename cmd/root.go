package cmd

import (
	"fmt"
	"os"

	"github.com/bisegni/cursormock/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	LogLevel        string
	LogFormat       string
	LogFile         string
	OutputPretty    bool
	InputColumns    []string
	InputFormat     string
	InteractiveMode bool
)

var rootCmd = &cobra.Command{
	Use:   "cursormock [file|-]",
	Short: "Inspect tables through a positional result-set cursor",
	Long: `cursormock loads a table from a fixture, JSON, JSONL or Parquet file and
reads it through a positional cursor, the same way code under test reads a
result set.

Supports:
  - Fixture files: cursormock people.cursor
  - JSON / JSONL: cursormock data.json, cursormock events.jsonl
  - Parquet: cursormock data.parquet
  - Stdin: cat data.json | cursormock  (or use "-" as filename)
  - Inline JSON: cursormock '[{"id":1}]'

Without a subcommand the table rows are printed. Interactive mode accepts
several files and switches between them with "use NAME".

Examples:
  cursormock people.cursor
  cursormock -i people.cursor
  cursormock -i people.cursor pets.json
  cursormock schema data.json
  cursormock convert data.json --to parquet --out data.parquet`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(LogLevel)
		if err != nil {
			return err
		}
		return logging.Init(logging.Config{
			Level:      level,
			Format:     LogFormat,
			OutputPath: LogFile,
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if len(args) > 1 && !InteractiveMode {
			return fmt.Errorf("only interactive mode accepts more than one file")
		}

		if len(args) == 0 {
			if !hasStdin {
				if InteractiveMode {
					return fmt.Errorf("interactive mode requires a file or stdin input")
				}
				return cmd.Help()
			}
			args = []string{"-"}
		}

		if InteractiveMode {
			return RunInteractive(args...)
		}
		return RunDump(cmd.OutOrStdout(), args[0])
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().StringVar(&LogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&OutputPretty, "pretty", false, "Pretty print JSON output")
	rootCmd.PersistentFlags().StringSliceVarP(&InputColumns, "columns", "c", []string{}, "Column order for JSON input (e.g., id,name)")
	rootCmd.PersistentFlags().StringVarP(&InputFormat, "format", "f", "", "Input format (fixture, json, jsonl, parquet); detected from the extension by default")
	rootCmd.Flags().BoolVarP(&InteractiveMode, "interactive", "i", false, "Interactive cursor console")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
}
