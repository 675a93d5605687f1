// Package repair generates candidate repairs for constraint violations in
// table instances.
package repair

import (
	"github.com/calebrw/tablemend/internal/types"
)

// GeneralRepairs derives repairs for null and duplicate violations when no
// primary-key repair applies. At most two candidates are returned:
// keep-first drops every row after the first occurrence of a duplicated
// value, keep-last retains only the final occurrence. Both first drop every
// row carrying a null/empty violation. With only null violations present a
// single null-removal candidate is returned; when keep-first and keep-last
// would be row-for-row identical, the second is suppressed.
func GeneralRepairs(violations []types.Violation, table *types.TableInstance) []types.CandidateRepair {
	candidates := []types.CandidateRepair{}
	if table.IsEmpty() {
		return candidates
	}

	nullRows := nullViolationRows(violations)
	dupColumns := duplicateColumns(violations)
	if len(nullRows) == 0 && len(dupColumns) == 0 {
		return candidates
	}

	first := keepFirst(table, nullRows, dupColumns, nil)

	if len(dupColumns) == 0 {
		candidates = append(candidates, candidateFromIndices(table, first, "repair_1",
			"Removes every row with a null/empty value in a constrained column"))
		return candidates
	}

	candidates = append(candidates, candidateFromIndices(table, first, "keep_first",
		"Removes null rows and keeps the first occurrence of each duplicated value"))

	// Suppress keep-last when it would produce value-identical output.
	last := keepLast(table, nullRows, dupColumns, nil)
	if indicesKey(table, first) != indicesKey(table, last) {
		candidates = append(candidates, candidateFromIndices(table, last, "keep_last",
			"Removes null rows and keeps the last occurrence of each duplicated value"))
	}
	return candidates
}

// nullViolationRows collects the 0-based indices of rows flagged with a
// null/empty violation.
func nullViolationRows(violations []types.Violation) map[int]struct{} {
	rows := map[int]struct{}{}
	for _, v := range violations {
		if v.IsNullViolation() {
			rows[v.Row-1] = struct{}{}
		}
	}
	return rows
}

// duplicateColumns collects the columns carrying duplicate-value violations.
func duplicateColumns(violations []types.Violation) map[string]struct{} {
	columns := map[string]struct{}{}
	for _, v := range violations {
		if v.IsDuplicateViolation() {
			columns[v.Column] = struct{}{}
		}
	}
	return columns
}

// keepFirst walks rows in order, dropping null-violating rows and any row
// whose value in a duplicate-violated column was already seen on a kept
// row. Rows in retain are always kept (partial repair retains rows with
// type violations); their duplicate-column values still count as seen.
// Returns the kept 0-based indices in ascending order.
func keepFirst(table *types.TableInstance, nullRows map[int]struct{}, dupColumns map[string]struct{}, retain map[int]bool) []int {
	seen := map[string]struct{}{}
	var kept []int

	for i, row := range table.Rows {
		if !retain[i] {
			if _, isNull := nullRows[i]; isNull {
				continue
			}
			if anySeen(row, dupColumns, seen) {
				continue
			}
		}
		markSeen(row, dupColumns, seen)
		kept = append(kept, i)
	}
	return kept
}

// keepLast removes null-violating rows, then keeps only rows matching the
// last surviving occurrence of their value in every duplicate-violated
// column. Retained rows bypass both filters. Returns kept 0-based indices
// in ascending order.
func keepLast(table *types.TableInstance, nullRows map[int]struct{}, dupColumns map[string]struct{}, retain map[int]bool) []int {
	var survivors []int
	for i := range table.Rows {
		if _, isNull := nullRows[i]; isNull && !retain[i] {
			continue
		}
		survivors = append(survivors, i)
	}

	last := map[string]int{}
	for _, i := range survivors {
		for col := range dupColumns {
			if value := table.Rows[i].Get(col); !value.IsNullOrEmpty() {
				last[col+":"+value.String()] = i
			}
		}
	}

	var kept []int
	for _, i := range survivors {
		if retain[i] {
			kept = append(kept, i)
			continue
		}
		lastOccurrence := true
		for col := range dupColumns {
			value := table.Rows[i].Get(col)
			if value.IsNullOrEmpty() {
				continue
			}
			if last[col+":"+value.String()] != i {
				lastOccurrence = false
				break
			}
		}
		if lastOccurrence {
			kept = append(kept, i)
		}
	}
	return kept
}

func anySeen(row types.Row, dupColumns map[string]struct{}, seen map[string]struct{}) bool {
	for col := range dupColumns {
		value := row.Get(col)
		if value.IsNullOrEmpty() {
			continue
		}
		if _, ok := seen[col+":"+value.String()]; ok {
			return true
		}
	}
	return false
}

func markSeen(row types.Row, dupColumns map[string]struct{}, seen map[string]struct{}) {
	for col := range dupColumns {
		if value := row.Get(col); !value.IsNullOrEmpty() {
			seen[col+":"+value.String()] = struct{}{}
		}
	}
}

// indicesKey serializes the value tuples of the rows at the given indices.
func indicesKey(table *types.TableInstance, indices []int) string {
	rows := make([]types.Row, len(indices))
	for i, idx := range indices {
		rows[i] = table.Rows[idx]
	}
	return rowsKey(rows, table.ColumnNames())
}
