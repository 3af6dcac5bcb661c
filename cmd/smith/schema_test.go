package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smithkit/mockdata"
	"smithkit/sqlgen"
)

func TestParseMockSchema(t *testing.T) {
	schema, err := parseMockSchema("id:id, name:name ,age:int:18:65,bio:words:5:20")
	require.NoError(t, err)
	require.Len(t, schema, 4)

	assert.Equal(t, mockdata.Field{Name: "id", Kind: mockdata.KindID}, schema[0])
	assert.Equal(t, mockdata.Field{Name: "name", Kind: mockdata.KindName}, schema[1])
	assert.Equal(t, mockdata.Field{Name: "age", Kind: mockdata.KindInt, Min: 18, Max: 65}, schema[2])
	assert.Equal(t, mockdata.Field{Name: "bio", Kind: mockdata.KindWords, Min: 5, Max: 20}, schema[3])
}

func TestParseMockSchemaErrors(t *testing.T) {
	for _, spec := range []string{
		"",
		"nokind",
		"x:teapot",
		"age:int:low",
		":int",
	} {
		if _, err := parseMockSchema(spec); err == nil {
			t.Errorf("parseMockSchema(%q) should fail", spec)
		}
	}
}

func TestParseTable(t *testing.T) {
	table, err := parseTable("users", "id:uuid:pk,name:varchar(120):notnull,age:int")
	require.NoError(t, err)
	require.Len(t, table.Columns, 3)

	assert.Equal(t, "users", table.Name)
	assert.Equal(t, sqlgen.Column{Name: "id", Type: sqlgen.TypeUUID, PrimaryKey: true}, table.Columns[0])
	assert.Equal(t, sqlgen.Column{Name: "name", Type: sqlgen.TypeVarchar, Length: 120, NotNull: true}, table.Columns[1])
	assert.Equal(t, sqlgen.Column{Name: "age", Type: sqlgen.TypeInt}, table.Columns[2])
}

func TestParseTableErrors(t *testing.T) {
	for _, spec := range []string{
		"id",
		"id:nope",
		"id:varchar(zero)",
		"id:int:sparkly",
		":int",
	} {
		if _, err := parseTable("t", spec); err == nil {
			t.Errorf("parseTable(%q) should fail", spec)
		}
	}
}
