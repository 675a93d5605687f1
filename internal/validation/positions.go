// Package validation provides functionality to detect constraint violations
// in table instances.
package validation

import (
	"sort"

	"github.com/calebrw/tablemend/internal/types"
)

// AfterDelete adjusts violation row indices after a single row deletion.
// deletedIndex is 0-based into the row sequence the violations were
// computed from. Violations on the deleted row are dropped; violations on
// later rows shift up by one; earlier rows are untouched. For the row-local
// violation kinds produced by Check, the result equals recomputing from
// scratch on the post-deletion row sequence.
func AfterDelete(violations []types.Violation, deletedIndex int) []types.Violation {
	result := make([]types.Violation, 0, len(violations))
	for _, v := range violations {
		switch {
		case v.Row-1 == deletedIndex:
			// Deleted row: violation disappears.
		case v.Row-1 > deletedIndex:
			v.Row--
			result = append(result, v)
		default:
			result = append(result, v)
		}
	}
	return result
}

// Positions derives the highlight sets from a violation list: the distinct
// column names and the distinct 0-based row indices that carry at least one
// violation. Both are returned sorted for deterministic rendering.
func Positions(violations []types.Violation) (columns []string, rows []int) {
	columnSet := map[string]struct{}{}
	rowSet := map[int]struct{}{}
	for _, v := range violations {
		columnSet[v.Column] = struct{}{}
		rowSet[v.Row-1] = struct{}{}
	}

	columns = make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	rows = make([]int, 0, len(rowSet))
	for row := range rowSet {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	return columns, rows
}
