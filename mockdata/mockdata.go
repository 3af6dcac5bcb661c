// Package mockdata produces deterministic fake table rows from a seed. The
// same seed and schema always render the same bytes, so generated fixtures
// can be committed and regenerated without churn.
package mockdata

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Kind selects the value generator for a field.
type Kind int

const (
	KindID Kind = iota // uuid v4 drawn from the seeded stream
	KindName
	KindEmail
	KindCity
	KindBool
	KindInt   // uniform in [Min,Max]
	KindFloat // uniform in [Min,Max), two decimals
	KindDate  // ISO date within five years of the epoch below
	KindWords // Min..Max lorem words
)

// ErrEmptySchema is returned when no fields are defined.
var ErrEmptySchema = errors.New("mockdata: empty schema")

// Field is one column of the generated data set.
type Field struct {
	Name string
	Kind Kind
	Min  int
	Max  int
}

// Schema is an ordered field list; order is preserved in CSV output.
type Schema []Field

// Row holds one value per schema field, in schema order.
type Row []any

// dateEpoch anchors KindDate values.
var dateEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	firstNames = []string{
		"Ada", "Alan", "Edsger", "Grace", "Hedy", "Ken", "Leslie",
		"Linus", "Margaret", "Niklaus", "Radia", "Rob", "Sofia", "Tim",
	}
	lastNames = []string{
		"Berners-Lee", "Dijkstra", "Hamilton", "Hopper", "Kernighan",
		"Lamarr", "Lamport", "Lovelace", "Perlman", "Pike", "Ritchie",
		"Thompson", "Torvalds", "Wirth",
	}
	cities = []string{
		"Amsterdam", "Austin", "Bergen", "Bologna", "Fukuoka", "Gdansk",
		"Kyoto", "Lisbon", "Lyon", "Porto", "Tallinn", "Tampere",
		"Wellington", "Zurich",
	}
	domains = []string{"example.com", "example.org", "mail.test", "dev.invalid"}
	lorem   = []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
		"incididunt", "labore", "dolore", "magna", "aliqua",
	}
)

// Generator draws all randomness from one seeded source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator for the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// intRange normalises a field's Min/Max, defaulting to [0,100].
func intRange(f Field) (lo, hi int) {
	lo, hi = f.Min, f.Max
	if hi <= lo {
		lo, hi = 0, 100
	}
	return lo, hi
}

// Value generates one value for the field.
func (g *Generator) Value(f Field) (any, error) {
	switch f.Kind {
	case KindID:
		id, err := uuid.NewRandomFromReader(g.rng)
		if err != nil {
			return nil, fmt.Errorf("mockdata: uuid: %w", err)
		}
		return id.String(), nil
	case KindName:
		return g.pick(firstNames) + " " + g.pick(lastNames), nil
	case KindEmail:
		return fmt.Sprintf("%s%d@%s", g.pick(lorem), g.rng.Intn(1000), g.pick(domains)), nil
	case KindCity:
		return g.pick(cities), nil
	case KindBool:
		return g.rng.Intn(2) == 1, nil
	case KindInt:
		lo, hi := intRange(f)
		return lo + g.rng.Intn(hi-lo+1), nil
	case KindFloat:
		lo, hi := intRange(f)
		v := float64(lo) + g.rng.Float64()*float64(hi-lo)
		return float64(int(v*100)) / 100, nil
	case KindDate:
		return dateEpoch.AddDate(0, 0, g.rng.Intn(365*5)).Format("2006-01-02"), nil
	case KindWords:
		lo, hi := f.Min, f.Max
		if lo < 1 {
			lo = 3
		}
		if hi < lo {
			hi = lo + 5
		}
		n := lo + g.rng.Intn(hi-lo+1)
		words := make([]string, n)
		for i := range words {
			words[i] = g.pick(lorem)
		}
		return joinWords(words), nil
	default:
		return nil, fmt.Errorf("mockdata: unknown field kind %d for %q", f.Kind, f.Name)
	}
}

func joinWords(words []string) string {
	var b bytes.Buffer
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

// Rows generates n rows for the schema.
func (g *Generator) Rows(schema Schema, n int) ([]Row, error) {
	if len(schema) == 0 {
		return nil, ErrEmptySchema
	}
	if n < 0 {
		return nil, fmt.Errorf("mockdata: negative row count %d", n)
	}
	rows := make([]Row, n)
	for i := range rows {
		row := make(Row, len(schema))
		for j, f := range schema {
			v, err := g.Value(f)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}

// JSON renders rows as an indented array of objects. Object keys come out
// alphabetically sorted (encoding/json map order), which keeps the output
// stable.
func JSON(schema Schema, rows []Row) ([]byte, error) {
	objs := make([]map[string]any, len(rows))
	for i, row := range rows {
		m := make(map[string]any, len(schema))
		for j, f := range schema {
			m[f.Name] = row[j]
		}
		objs[i] = m
	}
	return json.MarshalIndent(objs, "", "  ")
}

// CSV renders rows with a header line, columns in schema order.
func CSV(schema Schema, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := make([]string, len(schema))
	for i, f := range schema {
		header[i] = f.Name
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("mockdata: csv: %w", err)
	}
	record := make([]string, len(schema))
	for _, row := range rows {
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("mockdata: csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("mockdata: csv: %w", err)
	}
	return buf.Bytes(), nil
}
