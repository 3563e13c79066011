// Package console drives a cursor with one-line text commands, as used by
// the interactive mode of the command line.
package console

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bisegni/cursormock/pkg/cursor"
	"github.com/bisegni/cursormock/pkg/database"
)

// Help lists the available commands.
const Help = `Commands:
  first | last | next | prev   move the cursor
  move N                       move by N rows
  pos N                        move to position N
  get COL                      print a cell (COL is an index or a column name)
  type COL                     print the cell type
  null COL                     print whether the cell is null
  row                          print the current row
  count | columns | position   print cursor metadata
  close                        close the cursor
  tables                       list the loaded tables
  use TABLE                    switch to a fresh cursor over TABLE
  help                         print this help
`

// ErrNoCatalog is returned by tables and use in a session over a single cursor.
var ErrNoCatalog = errors.New("session has no table catalog")

// Session executes commands against a cursor and writes results to out.
type Session struct {
	cursor  *cursor.Cursor
	catalog *database.Catalog
	table   string
	out     io.Writer
}

func NewSession(c *cursor.Cursor, out io.Writer) *Session {
	return &Session{cursor: c, out: out}
}

// NewCatalogSession starts a session on a fresh cursor over the named table
// of cat. The use command switches to the other tables of the catalog.
func NewCatalogSession(cat *database.Catalog, table string, out io.Writer) (*Session, error) {
	c, err := cat.Open(table)
	if err != nil {
		return nil, err
	}
	return &Session{cursor: c, catalog: cat, table: table, out: out}, nil
}

func (s *Session) Cursor() *cursor.Cursor {
	return s.cursor
}

// Execute parses and runs a command line. Blank lines are ignored.
func (s *Session) Execute(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	cmd, err := ParseCommand(line)
	if err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	return s.Run(cmd)
}

// Run executes a parsed command.
func (s *Session) Run(cmd *ASTCommand) error {
	switch {
	case cmd.Move != nil:
		return s.move(cmd.Move)
	case cmd.Read != nil:
		return s.read(cmd.Read)
	case cmd.Use != nil:
		return s.use(cmd.Use.Table)
	case cmd.Simple != nil:
		return s.simple(strings.ToUpper(*cmd.Simple))
	default:
		return fmt.Errorf("empty command")
	}
}

func (s *Session) move(m *ASTMove) error {
	var ok bool
	var err error
	if strings.EqualFold(m.Verb, "MOVE") {
		ok, err = s.cursor.Move(m.Offset)
	} else {
		ok, err = s.cursor.MoveToPosition(m.Offset)
	}
	return s.printMove(ok, err)
}

func (s *Session) printMove(ok bool, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.out, "%t position=%d\n", ok, s.cursor.Position())
	return err
}

func (s *Session) read(r *ASTRead) error {
	col, err := s.columnIndex(r.Column)
	if err != nil {
		return err
	}

	switch strings.ToUpper(r.Verb) {
	case "GET":
		v, err := s.cursor.Value(col)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, FormatValue(v))
		return err
	case "TYPE":
		t, err := s.cursor.Type(col)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, t)
		return err
	default:
		isNull, err := s.cursor.IsNull(col)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, isNull)
		return err
	}
}

// use closes the current cursor and opens one over table.
func (s *Session) use(table string) error {
	if s.catalog == nil {
		return ErrNoCatalog
	}
	c, err := s.catalog.Open(table)
	if err != nil {
		return err
	}
	s.cursor.Close()
	s.cursor, s.table = c, table
	_, err = fmt.Fprintf(s.out, "%s: %d row(s), %d column(s)\n", table, c.Count(), c.ColumnCount())
	return err
}

func (s *Session) printTables() error {
	if s.catalog == nil {
		return ErrNoCatalog
	}
	for _, name := range s.catalog.Names() {
		marker := " "
		if name == s.table {
			marker = "*"
		}
		if _, err := fmt.Fprintf(s.out, "%s %s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) columnIndex(c *ASTColumn) (int, error) {
	if c.Index != nil {
		return *c.Index, nil
	}
	return s.cursor.ColumnIndexOrError(*c.Name)
}

func (s *Session) simple(verb string) error {
	c := s.cursor
	switch verb {
	case "FIRST":
		return s.printMove(c.MoveToFirst())
	case "LAST":
		return s.printMove(c.MoveToLast())
	case "NEXT":
		return s.printMove(c.MoveToNext())
	case "PREV":
		return s.printMove(c.MoveToPrevious())
	case "ROW":
		return s.printRow()
	case "COUNT":
		_, err := fmt.Fprintln(s.out, c.Count())
		return err
	case "POSITION":
		_, err := fmt.Fprintln(s.out, c.Position())
		return err
	case "COLUMNS":
		for i, name := range c.ColumnNames() {
			typ, _ := c.Schema().ColumnType(i)
			if _, err := fmt.Fprintf(s.out, "%d %s %s\n", i, name, typ); err != nil {
				return err
			}
		}
		return nil
	case "CLOSE":
		c.Close()
		_, err := fmt.Fprintln(s.out, "closed")
		return err
	case "TABLES":
		return s.printTables()
	default:
		_, err := io.WriteString(s.out, Help)
		return err
	}
}

func (s *Session) printRow() error {
	parts := make([]string, s.cursor.ColumnCount())
	for i, name := range s.cursor.ColumnNames() {
		v, err := s.cursor.Value(i)
		if err != nil {
			return err
		}
		parts[i] = name + "=" + FormatValue(v)
	}
	_, err := fmt.Fprintln(s.out, strings.Join(parts, " "))
	return err
}

// FormatValue renders a cell value for display: null, numbers as is, quoted
// strings and x'..' blobs.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case []byte:
		return "x'" + hex.EncodeToString(x) + "'"
	default:
		return fmt.Sprint(x)
	}
}
