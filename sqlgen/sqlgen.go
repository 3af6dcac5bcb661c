// Package sqlgen renders table definitions as CREATE TABLE and INSERT
// statements for MySQL, Postgres and SQLite. It is a text generator, not a
// database layer: output is meant to be pasted into a migration or seed
// script.
package sqlgen

import (
	"errors"
	"fmt"
	"strings"
)

// Dialect selects quoting style and type names.
type Dialect int

const (
	MySQL Dialect = iota
	Postgres
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case MySQL:
		return "mysql"
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// ParseDialect maps a user-facing name onto a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return 0, fmt.Errorf("sqlgen: unknown dialect %q", s)
	}
}

// Type is the portable column type set.
type Type int

const (
	TypeInt Type = iota
	TypeBigInt
	TypeFloat
	TypeBool
	TypeText
	TypeVarchar // uses Column.Length, default 255
	TypeDate
	TypeTimestamp
	TypeUUID
)

// Column is one column definition.
type Column struct {
	Name       string
	Type       Type
	Length     int // varchar width
	PrimaryKey bool
	NotNull    bool
	Default    string // raw SQL expression, emitted verbatim
}

// Table is a named column list.
type Table struct {
	Name    string
	Columns []Column
}

var (
	// ErrNoColumns is returned for tables without columns.
	ErrNoColumns = errors.New("sqlgen: table has no columns")

	// ErrNoName is returned for unnamed tables or columns.
	ErrNoName = errors.New("sqlgen: empty identifier")
)

// quote wraps an identifier in the dialect's quoting characters.
func quote(d Dialect, ident string) string {
	if d == MySQL {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

// typeName maps a portable type onto the dialect's name for it.
func typeName(d Dialect, c Column) string {
	switch c.Type {
	case TypeInt:
		return "INTEGER"
	case TypeBigInt:
		return "BIGINT"
	case TypeFloat:
		if d == Postgres {
			return "DOUBLE PRECISION"
		}
		return "DOUBLE"
	case TypeBool:
		if d == MySQL {
			return "TINYINT(1)"
		}
		return "BOOLEAN"
	case TypeText:
		return "TEXT"
	case TypeVarchar:
		length := c.Length
		if length <= 0 {
			length = 255
		}
		return fmt.Sprintf("VARCHAR(%d)", length)
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		if d == Postgres {
			return "TIMESTAMPTZ"
		}
		return "TIMESTAMP"
	case TypeUUID:
		if d == Postgres {
			return "UUID"
		}
		return "CHAR(36)"
	default:
		return "TEXT"
	}
}

func (t *Table) validate() error {
	if t.Name == "" {
		return ErrNoName
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: %s", ErrNoColumns, t.Name)
	}
	for _, c := range t.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w: column in table %s", ErrNoName, t.Name)
		}
	}
	return nil
}

// CreateTable renders the DDL for the table.
func (t *Table) CreateTable(d Dialect) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", quote(d, t.Name))

	var pks []string
	for i, c := range t.Columns {
		fmt.Fprintf(&b, "  %s %s", quote(d, c.Name), typeName(d, c))
		if c.NotNull || c.PrimaryKey {
			b.WriteString(" NOT NULL")
		}
		if c.Default != "" {
			fmt.Fprintf(&b, " DEFAULT %s", c.Default)
		}
		if i < len(t.Columns)-1 {
			b.WriteString(",")
		}
		if c.PrimaryKey {
			pks = append(pks, quote(d, c.Name))
		}
		b.WriteString("\n")
	}
	if len(pks) > 0 {
		// Rewind: primary key goes in as a trailing constraint line.
		s := strings.TrimSuffix(b.String(), "\n")
		b.Reset()
		b.WriteString(s)
		fmt.Fprintf(&b, ",\n  PRIMARY KEY (%s)\n", strings.Join(pks, ", "))
	}
	b.WriteString(");\n")
	return b.String(), nil
}

// Inserts renders one INSERT statement per row. Row values are rendered by
// Go type: strings are quoted and escaped, nil becomes NULL, booleans map
// to the dialect's literal, numbers pass through.
func (t *Table) Inserts(d Dialect, rows [][]any) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quote(d, c.Name)
	}
	head := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", quote(d, t.Name), strings.Join(cols, ", "))

	var b strings.Builder
	for _, row := range rows {
		if len(row) != len(t.Columns) {
			return "", fmt.Errorf("sqlgen: row has %d values for %d columns", len(row), len(t.Columns))
		}
		vals := make([]string, len(row))
		for i, v := range row {
			vals[i] = literal(d, v)
		}
		b.WriteString(head)
		fmt.Fprintf(&b, "(%s);\n", strings.Join(vals, ", "))
	}
	return b.String(), nil
}

// literal renders one value as a SQL literal.
func literal(d Dialect, v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if d == MySQL {
			if x {
				return "1"
			}
			return "0"
		}
		if x {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	default:
		return fmt.Sprint(x)
	}
}
