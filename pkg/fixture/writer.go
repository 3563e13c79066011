package fixture

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/bisegni/cursormock/pkg/database"
)

// ErrNotRepresentable is returned by Write for values the format cannot hold.
var ErrNotRepresentable = errors.New("value cannot be written as a fixture literal")

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Write renders t in the fixture format, typed columns first declared with
// their type.
func Write(w io.Writer, t *database.Table) error {
	bw := bufio.NewWriter(w)
	s := t.Schema()

	header := make([]string, s.ColumnCount())
	for i := range header {
		name, _ := s.ColumnName(i)
		if !identPattern.MatchString(name) {
			name = strconv.Quote(name)
		}
		if typ, _ := s.ColumnType(i); typ.Valid() {
			name += " " + typ.String()
		}
		header[i] = name
	}
	fmt.Fprintf(bw, "columns %s\n", strings.Join(header, ", "))

	c := t.Open()
	defer c.Close()

	it, err := c.Iterate()
	if err != nil {
		return err
	}
	for it.Next() {
		values := make([]string, c.ColumnCount())
		last := -1
		for i := range values {
			v, err := c.Value(i)
			if err != nil {
				return err
			}
			literal, err := formatLiteral(v)
			if err != nil {
				return fmt.Errorf("row %d, column %d: %w", c.Position(), i, err)
			}
			values[i] = literal
			if v != nil {
				last = i
			}
		}
		if last < 0 {
			bw.WriteString("row\n")
			continue
		}
		fmt.Fprintf(bw, "row %s\n", strings.Join(values[:last+1], ", "))
	}
	if err := it.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func formatLiteral(v any) (string, error) {
	switch n := v.(type) {
	case nil:
		return "null", nil
	case int:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float32:
		return formatFloat(float64(n), 32)
	case float64:
		return formatFloat(n, 64)
	case string:
		return strconv.Quote(n), nil
	case []byte:
		return "x'" + hex.EncodeToString(n) + "'", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNotRepresentable, v)
	}
}

func formatFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrNotRepresentable, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}
