// Package repair generates candidate repairs for constraint violations in
// table instances.
package repair

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/calebrw/tablemend/internal/types"
)

// PrimaryKeyRepairs enumerates minimal-change repairs for duplicated
// primary keys. Rows are grouped by the value tuple of the primary-key
// columns; every group is a choice-set from which exactly one row survives
// per candidate. Each element of the Cartesian product across groups
// becomes a candidate, after two filters: survivors with a null/empty value
// in a non-key column are dropped (they are independently invalid), and
// combinations whose surviving value tuples already appeared count once.
//
// Enumeration stops at Options.MaxCombinations; candidates produced up to
// that point are returned with Truncated set.
func PrimaryKeyRepairs(table *types.TableInstance, opts Options) []types.CandidateRepair {
	candidates := []types.CandidateRepair{}
	if table.IsEmpty() {
		return candidates
	}
	keyColumns := table.PrimaryKeyColumns()
	if len(keyColumns) == 0 {
		return candidates
	}

	nonKeyColumns := nonKeyColumnNames(table, keyColumns)
	allColumns := table.ColumnNames()
	groups := groupByKey(table.Rows, keyColumns)

	choice := make([]int, len(groups))
	seen := map[string]struct{}{}
	truncated := false

	for enumerated := 0; ; enumerated++ {
		if enumerated >= opts.maxCombinations() {
			truncated = true
			break
		}

		survivors := make([]types.Row, 0, len(groups))
		for gi, group := range groups {
			row := group[choice[gi]]
			if hasNullInColumns(row, nonKeyColumns) {
				continue
			}
			survivors = append(survivors, row)
		}

		if len(survivors) > 0 {
			key := rowsKey(survivors, allColumns)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				candidates = append(candidates, primaryKeyCandidate(table, survivors, len(candidates)+1))
			}
		}

		if !advance(choice, groups) {
			break
		}
	}

	if truncated {
		for i := range candidates {
			candidates[i].Truncated = true
		}
	}
	return candidates
}

// groupByKey partitions rows by primary-key tuple, preserving the order in
// which each key first appears.
func groupByKey(rows []types.Row, keyColumns []string) [][]types.Row {
	index := map[string]int{}
	var groups [][]types.Row
	for _, row := range rows {
		key := tupleKey(row, keyColumns)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], row)
	}
	return groups
}

// advance steps the per-group choice vector to the next combination,
// odometer style. Returns false once every combination has been visited.
func advance(choice []int, groups [][]types.Row) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < len(groups[i]) {
			return true
		}
		choice[i] = 0
	}
	return false
}

func nonKeyColumnNames(table *types.TableInstance, keyColumns []string) []string {
	keySet := make(map[string]struct{}, len(keyColumns))
	for _, col := range keyColumns {
		keySet[col] = struct{}{}
	}
	var nonKey []string
	for _, col := range table.Columns {
		if _, isKey := keySet[col.Name]; !isKey {
			nonKey = append(nonKey, col.Name)
		}
	}
	return nonKey
}

func hasNullInColumns(row types.Row, columns []string) bool {
	for _, col := range columns {
		if row.Get(col).IsNullOrEmpty() {
			return true
		}
	}
	return false
}

func primaryKeyCandidate(table *types.TableInstance, survivors []types.Row, number int) types.CandidateRepair {
	rows := make([]types.RepairRow, len(survivors))
	for i, row := range survivors {
		rows[i] = types.RepairRow{Cells: row.Clone()}
	}
	return types.CandidateRepair{
		ID:          uuid.NewString(),
		Name:        types.CandidateName(table.Name, fmt.Sprintf("repair_%d", number)),
		Description: fmt.Sprintf("Combination %d: keeps one row from each primary key group", number),
		Columns:     table.ColumnNames(),
		Rows:        rows,
	}
}
