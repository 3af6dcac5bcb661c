package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"smithkit/mockdata"
	"smithkit/sqlgen"
)

var (
	sqlDialect string
	sqlTable   string
	sqlInserts int
	sqlSeed    int64
	sqlOut     string
)

var sqlCmd = &cobra.Command{
	Use:   "sql <columns>",
	Short: "Generate CREATE TABLE (and optional seed INSERTs) from a column list",
	Long: `Generate DDL from a comma separated list of name:type[:pk][:notnull]
columns. Types: int, bigint, float, bool, text, varchar(N), date,
timestamp, uuid.

Example:
  smith sql "id:uuid:pk,name:varchar(120):notnull,age:int" --table users --inserts 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dialect, err := sqlgen.ParseDialect(sqlDialect)
		if err != nil {
			return err
		}
		table, err := parseTable(sqlTable, args[0])
		if err != nil {
			return err
		}
		ddl, err := table.CreateTable(dialect)
		if err != nil {
			return err
		}
		out := ddl
		if sqlInserts > 0 {
			rows, err := seedRows(table, sqlInserts)
			if err != nil {
				return err
			}
			inserts, err := table.Inserts(dialect, rows)
			if err != nil {
				return err
			}
			out += "\n" + inserts
		}
		return writeOutput(sqlOut, []byte(out))
	},
}

// parseTable turns "name:type[:pk][:notnull],..." into a table model.
func parseTable(name, spec string) (*sqlgen.Table, error) {
	table := &sqlgen.Table{Name: name}
	for _, part := range strings.Split(spec, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) < 2 || fields[0] == "" {
			return nil, fmt.Errorf("bad column %q (want name:type)", part)
		}
		col := sqlgen.Column{Name: fields[0]}
		typ, length, err := parseColumnType(fields[1])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", part, err)
		}
		col.Type = typ
		col.Length = length
		for _, mod := range fields[2:] {
			switch strings.ToLower(mod) {
			case "pk":
				col.PrimaryKey = true
			case "notnull":
				col.NotNull = true
			default:
				return nil, fmt.Errorf("unknown column modifier %q in %q", mod, part)
			}
		}
		table.Columns = append(table.Columns, col)
	}
	return table, nil
}

func parseColumnType(s string) (sqlgen.Type, int, error) {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "varchar(") && strings.HasSuffix(lower, ")") {
		n, err := strconv.Atoi(lower[len("varchar(") : len(lower)-1])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("bad varchar length in %q", s)
		}
		return sqlgen.TypeVarchar, n, nil
	}
	switch lower {
	case "int":
		return sqlgen.TypeInt, 0, nil
	case "bigint":
		return sqlgen.TypeBigInt, 0, nil
	case "float":
		return sqlgen.TypeFloat, 0, nil
	case "bool":
		return sqlgen.TypeBool, 0, nil
	case "text":
		return sqlgen.TypeText, 0, nil
	case "varchar":
		return sqlgen.TypeVarchar, 0, nil
	case "date":
		return sqlgen.TypeDate, 0, nil
	case "timestamp":
		return sqlgen.TypeTimestamp, 0, nil
	case "uuid":
		return sqlgen.TypeUUID, 0, nil
	default:
		return 0, 0, fmt.Errorf("unknown column type %q", s)
	}
}

// seedRows fills the table with mock data, mapping column types onto the
// closest mock field kind.
func seedRows(table *sqlgen.Table, n int) ([][]any, error) {
	schema := make(mockdata.Schema, len(table.Columns))
	for i, c := range table.Columns {
		kind := mockdata.KindWords
		switch c.Type {
		case sqlgen.TypeInt, sqlgen.TypeBigInt:
			kind = mockdata.KindInt
		case sqlgen.TypeFloat:
			kind = mockdata.KindFloat
		case sqlgen.TypeBool:
			kind = mockdata.KindBool
		case sqlgen.TypeDate, sqlgen.TypeTimestamp:
			kind = mockdata.KindDate
		case sqlgen.TypeUUID:
			kind = mockdata.KindID
		case sqlgen.TypeVarchar:
			kind = mockdata.KindName
		}
		schema[i] = mockdata.Field{Name: c.Name, Kind: kind}
	}
	seed := sqlSeed
	if seed == 0 {
		seed = cfg.Mock.Seed
	}
	rows, err := mockdata.New(seed).Rows(schema, n)
	if err != nil {
		return nil, err
	}
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out, nil
}

func init() {
	sqlCmd.Flags().StringVar(&sqlDialect, "dialect", "postgres", "sql dialect: mysql, postgres or sqlite")
	sqlCmd.Flags().StringVar(&sqlTable, "table", "items", "table name")
	sqlCmd.Flags().IntVar(&sqlInserts, "inserts", 0, "also generate this many seed INSERT rows")
	sqlCmd.Flags().Int64Var(&sqlSeed, "seed", 0, "seed for generated rows (default from config)")
	sqlCmd.Flags().StringVarP(&sqlOut, "out", "o", "-", "output path, - for stdout")
	rootCmd.AddCommand(sqlCmd)
}
