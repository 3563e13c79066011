package column

import "fmt"

// Type is the native storage class of a column.
// The zero value means no type has been fixed for the column yet; there is
// intentionally no NULL type, nullness belongs to a single cell.
type Type int

const (
	// Integer holds any fixed-width signed integer.
	Integer Type = iota + 1
	// Float holds any IEEE floating point number.
	Float
	// Text holds character strings.
	Text
	// Blob holds byte sequences.
	Blob
)

// Valid reports whether t is one of the fixed column types.
func (t Type) Valid() bool {
	return t >= Integer && t <= Blob
}

// CellType returns the cell marker reported for a non-null value of this type.
// An unset type maps to CellNull.
func (t Type) CellType() CellType {
	switch t {
	case Integer:
		return CellInteger
	case Float:
		return CellFloat
	case Text:
		return CellText
	case Blob:
		return CellBlob
	default:
		return CellNull
	}
}

func (t Type) String() string {
	switch t {
	case 0:
		return "UNSET"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Text:
		return "TEXT"
	case Blob:
		return "BLOB"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a type name (as printed by String) back into a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "INTEGER", "integer", "INT", "int":
		return Integer, nil
	case "FLOAT", "float", "REAL", "real":
		return Float, nil
	case "TEXT", "text", "STRING", "string":
		return Text, nil
	case "BLOB", "blob":
		return Blob, nil
	case "UNSET", "unset", "":
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", name)
	}
}

// CellType is the type marker reported for a single cell. The numeric values
// follow the field type codes of the result-set API being mocked.
type CellType int

const (
	CellNull    CellType = 0
	CellInteger CellType = 1
	CellFloat   CellType = 2
	CellText    CellType = 3
	CellBlob    CellType = 4
)

func (c CellType) String() string {
	switch c {
	case CellNull:
		return "NULL"
	case CellInteger:
		return "INTEGER"
	case CellFloat:
		return "FLOAT"
	case CellText:
		return "TEXT"
	case CellBlob:
		return "BLOB"
	default:
		return fmt.Sprintf("CellType(%d)", int(c))
	}
}
