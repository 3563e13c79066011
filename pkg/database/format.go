package database

import (
	"fmt"
	"strings"

	"github.com/bisegni/cursormock/pkg/schema"
)

// FormatSchema renders a table and its columns as a tree:
//
//	people (2 rows)
//	├─ id INTEGER
//	└─ name TEXT
func FormatSchema(t *Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d rows)\n", t.Name, t.Count())
	formatColumns(t.Schema(), "", &sb)
	return sb.String()
}

func formatColumns(s schema.Schema, prefix string, sb *strings.Builder) {
	count := s.ColumnCount()
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		if i == count-1 {
			sb.WriteString("└─ ")
		} else {
			sb.WriteString("├─ ")
		}
		name, _ := s.ColumnName(i)
		typ, _ := s.ColumnType(i)
		sb.WriteString(name)
		sb.WriteString(" ")
		sb.WriteString(typ.String())
		sb.WriteString("\n")
	}
}
