package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bisegni/cursormock/pkg/arrowio"
	"github.com/bisegni/cursormock/pkg/database"
	"github.com/bisegni/cursormock/pkg/fixture"
	"github.com/bisegni/cursormock/pkg/logging"
)

const (
	FormatFixture = "fixture"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatParquet = "parquet"
)

// DetectFormat returns the input format of filename. A non-empty override
// wins over the extension; stdin and inline JSON default to JSON.
func DetectFormat(filename, override string) (string, error) {
	if override != "" {
		switch f := strings.ToLower(override); f {
		case FormatFixture, FormatJSON, FormatJSONL, FormatParquet:
			return f, nil
		default:
			return "", fmt.Errorf("unknown input format %q", override)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case fixture.Extension:
		return FormatFixture, nil
	case arrowio.Extension:
		return FormatParquet, nil
	case ".jsonl":
		return FormatJSONL, nil
	default:
		return FormatJSON, nil
	}
}

// LoadTable reads filename in the given format (see DetectFormat).
func LoadTable(ctx context.Context, filename, format string, columns []string) (*database.Table, error) {
	format, err := DetectFormat(filename, format)
	if err != nil {
		return nil, err
	}
	logging.GetLogger().Debug("loading table", "file", filename, "format", format)

	switch format {
	case FormatFixture:
		if filename == "" || filename == "-" {
			return fixture.Parse(database.TableName(filename), os.Stdin)
		}
		return fixture.Load(filename)
	case FormatParquet:
		return arrowio.ReadParquet(ctx, filename)
	default:
		return database.LoadJSON(filename, columns)
	}
}

func loadInput(filename string) (*database.Table, error) {
	t, err := LoadTable(context.Background(), filename, InputFormat, InputColumns)
	if err != nil {
		logging.GetLogger().Error("failed to load table", "file", filename, "error", err)
		return nil, err
	}
	logging.WithTable(t.Name).Info("table loaded", "rows", t.Count(), "columns", t.Schema().ColumnCount())
	return t, nil
}

func argOrStdin(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}
