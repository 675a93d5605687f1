package repair

import (
	"github.com/calebrw/tablemend/internal/types"
)

// makeTable builds a table from column definitions and rows given as plain
// string maps; empty strings become null cells.
func makeTable(name string, columns []types.Column, rows ...map[string]string) *types.TableInstance {
	table := &types.TableInstance{Name: name, Columns: columns}
	for _, raw := range rows {
		cells := map[string]types.CellValue{}
		for col, value := range raw {
			if value == "" {
				cells[col] = types.Null()
			} else {
				cells[col] = types.Text(value)
			}
		}
		table.Rows = append(table.Rows, types.NewRow(cells))
	}
	return table
}

// candidateValues flattens a candidate's rows to plain string maps for
// comparisons that care about values, not row identity.
func candidateValues(c types.CandidateRepair) []map[string]string {
	out := make([]map[string]string, len(c.Rows))
	for i, row := range c.Rows {
		values := map[string]string{}
		for _, col := range c.Columns {
			values[col] = row.Cells.Get(col).String()
		}
		out[i] = values
	}
	return out
}

func textColumns(names ...string) []types.Column {
	columns := make([]types.Column, len(names))
	for i, name := range names {
		columns[i] = types.Column{Name: name, Type: types.TypeText}
	}
	return columns
}
