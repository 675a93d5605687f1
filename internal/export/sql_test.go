package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebrw/tablemend/internal/types"
)

func exportTable() *types.TableInstance {
	return &types.TableInstance{
		Name: "users",
		Columns: []types.Column{
			{Name: "id", Type: types.TypeInteger, Constraints: []types.Constraint{types.ConstraintPrimary, types.ConstraintNotNull}},
			{Name: "email", Type: types.TypeVarchar, Constraints: []types.Constraint{types.ConstraintUnique}},
			{Name: "team_id", Type: types.TypeInteger, Constraints: []types.Constraint{types.ConstraintForeign},
				Reference: &types.ForeignKeyReference{TargetTable: "teams", TargetColumn: "id"}},
		},
		Rows: []types.Row{
			types.NewRow(map[string]types.CellValue{
				"id": types.Text("1"), "email": types.Text("a'x@y.com"), "team_id": types.Text("10"),
			}),
			types.NewRow(map[string]types.CellValue{
				"id": types.Text("2"), "email": types.Null(), "team_id": types.Text("10"),
			}),
		},
	}
}

func TestWriteSQL(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteSQL(&sb, exportTable()))

	dump := sb.String()
	lines := strings.Split(strings.TrimSpace(dump), "\n")
	require.Len(t, lines, 3, "one CREATE TABLE plus one INSERT per row")

	create := lines[0]
	assert.Contains(t, create, "CREATE TABLE IF NOT EXISTS `users`")
	assert.Contains(t, create, "`id` INTEGER NOT NULL")
	assert.Contains(t, create, "`email` TEXT")
	assert.Contains(t, create, "PRIMARY KEY (`id`)")
	assert.Contains(t, create, "UNIQUE (`email`)")
	assert.Contains(t, create, "FOREIGN KEY (`team_id`) REFERENCES `teams` (`id`)")

	assert.Contains(t, lines[1], "INSERT INTO `users` (`id`, `email`, `team_id`)")
	assert.Contains(t, lines[1], "'a''x@y.com'", "single quotes are doubled")
	assert.Contains(t, lines[2], "NULL", "null cells export as literal NULL")
}

func TestWriteSQLTypeMapping(t *testing.T) {
	tests := []struct {
		declared types.ColumnType
		expected string
	}{
		{declared: types.TypeInteger, expected: "INTEGER"},
		{declared: types.TypeDecimal, expected: "REAL"},
		{declared: types.TypeNumeric, expected: "NUMERIC"},
		{declared: types.TypeVarchar, expected: "TEXT"},
		{declared: types.TypeTimestamp, expected: "DATETIME"},
		{declared: types.TypeBoolean, expected: "BOOLEAN"},
		{declared: "GEOMETRY", expected: "TEXT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.declared), func(t *testing.T) {
			table := &types.TableInstance{
				Name:    "t",
				Columns: []types.Column{{Name: "c", Type: tt.declared}},
				Rows:    []types.Row{types.NewRow(map[string]types.CellValue{"c": types.Text("v")})},
			}

			var sb strings.Builder
			require.NoError(t, WriteSQL(&sb, table))
			assert.Contains(t, sb.String(), "`c` "+tt.expected)
		})
	}
}

func TestWriteSQLEmptyTable(t *testing.T) {
	var sb strings.Builder
	err := WriteSQL(&sb, &types.TableInstance{Name: "empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data to export")
}

func TestWriteCandidateSQL(t *testing.T) {
	table := exportTable()
	candidate := &types.CandidateRepair{
		Name:    "users_repair_1",
		Columns: table.ColumnNames(),
		Rows:    []types.RepairRow{{Cells: table.Rows[0].Clone()}},
	}

	var sb strings.Builder
	require.NoError(t, WriteCandidateSQL(&sb, candidate, table.Columns, "users"))

	dump := sb.String()
	assert.Contains(t, dump, "CREATE TABLE IF NOT EXISTS `users`")
	assert.Equal(t, 1, strings.Count(dump, "INSERT INTO"))
}
