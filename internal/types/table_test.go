package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellValueIsNullOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		value    CellValue
		expected bool
	}{
		{name: "null", value: Null(), expected: true},
		{name: "empty text", value: Text(""), expected: true},
		{name: "whitespace text", value: Text("   "), expected: true},
		{name: "non-empty text", value: Text("a"), expected: false},
		{name: "zero number", value: Number(0), expected: false},
		{name: "zero value", value: CellValue{}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.IsNullOrEmpty())
		})
	}
}

func TestCellValueString(t *testing.T) {
	assert.Equal(t, "", Null().String())
	assert.Equal(t, "hello", Text("hello").String())
	assert.Equal(t, "1", Number(1).String())
	assert.Equal(t, "1.5", Number(1.5).String())
}

func TestRowCloneIsIndependent(t *testing.T) {
	row := NewRow(map[string]CellValue{"id": Text("1")})
	clone := row.Clone()

	clone.Cells["id"] = Text("2")

	assert.Equal(t, "1", row.Get("id").String())
	assert.Equal(t, row.ID, clone.ID, "clone keeps the stable identifier")
}

func TestRowGetMissingColumnIsNull(t *testing.T) {
	row := NewRow(nil)
	assert.True(t, row.Get("absent").IsNullOrEmpty())
}

func TestNewRowAssignsUniqueIDs(t *testing.T) {
	a := NewRow(nil)
	b := NewRow(nil)
	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTableKeyColumn(t *testing.T) {
	tests := []struct {
		name     string
		table    TableInstance
		expected string
	}{
		{
			name: "explicit primary wins",
			table: TableInstance{Columns: []Column{
				{Name: "a"},
				{Name: "b", Constraints: []Constraint{ConstraintPrimary}},
			}},
			expected: "b",
		},
		{
			name:     "falls back to first column",
			table:    TableInstance{Columns: []Column{{Name: "a"}, {Name: "b"}}},
			expected: "a",
		},
		{
			name:     "no columns",
			table:    TableInstance{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.table.KeyColumn())
		})
	}
}

func TestTableCloneIsDeep(t *testing.T) {
	table := &TableInstance{
		Name:    "users",
		Columns: []Column{{Name: "id", Type: TypeInteger}},
		Rows:    []Row{NewRow(map[string]CellValue{"id": Text("1")})},
	}

	clone := table.Clone()
	clone.Rows[0].Cells["id"] = Text("99")

	assert.Equal(t, "1", table.Rows[0].Get("id").String())
	assert.Equal(t, table.Rows[0].ID, clone.Rows[0].ID)
}

func TestTableIsEmpty(t *testing.T) {
	var nilTable *TableInstance
	assert.True(t, nilTable.IsEmpty())
	assert.True(t, (&TableInstance{}).IsEmpty())
	assert.True(t, (&TableInstance{Columns: []Column{{Name: "a"}}}).IsEmpty())

	full := &TableInstance{
		Columns: []Column{{Name: "a"}},
		Rows:    []Row{NewRow(nil)},
	}
	assert.False(t, full.IsEmpty())
}
