// Package repair generates candidate repairs for constraint violations in
// table instances.
package repair

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/calebrw/tablemend/internal/types"
)

// PartialRepairs produces hybrid candidates when type mismatches are
// present: those cannot be auto-fixed, so each candidate resolves the
// fixable null/duplicate violations automatically while flagging the rows
// that still need manual editing. Exactly three candidates are returned:
//
//   - partial_1: keep-first null/duplicate removal, but rows carrying a
//     type violation are always retained and flagged;
//   - partial_2: the same with the keep-last policy;
//   - custom: no automatic deletion at all, every row preserved and
//     annotated with the reasons for every violation kind affecting it.
//
// Each candidate exposes the 0-based indices of its edit-needed rows within
// its own row sequence.
func PartialRepairs(violations []types.Violation, table *types.TableInstance) []types.CandidateRepair {
	candidates := []types.CandidateRepair{}
	if table.IsEmpty() {
		return candidates
	}

	typeRows := map[int]bool{}
	typeReasons := map[int][]string{}
	allReasons := map[int][]string{}
	for _, v := range violations {
		i := v.Row - 1
		reason := fmt.Sprintf("%s: %s", v.Column, v.Message)
		allReasons[i] = append(allReasons[i], reason)
		if v.Kind == types.ViolationTypeMismatch {
			typeRows[i] = true
			typeReasons[i] = append(typeReasons[i], reason)
		}
	}
	if len(typeRows) == 0 {
		return candidates
	}

	nullRows := nullViolationRows(violations)
	dupColumns := duplicateColumns(violations)

	first := keepFirst(table, nullRows, dupColumns, typeRows)
	candidates = append(candidates, annotatedCandidate(table, first, typeRows, typeReasons, "partial_1",
		"Keep-first removal of null/duplicate rows; rows with type violations kept for manual editing"))

	last := keepLast(table, nullRows, dupColumns, typeRows)
	candidates = append(candidates, annotatedCandidate(table, last, typeRows, typeReasons, "partial_2",
		"Keep-last removal of null/duplicate rows; rows with type violations kept for manual editing"))

	allRows := make([]int, len(table.Rows))
	editAll := make(map[int]bool, len(allReasons))
	for i := range table.Rows {
		allRows[i] = i
		if len(allReasons[i]) > 0 {
			editAll[i] = true
		}
	}
	candidates = append(candidates, annotatedCandidate(table, allRows, editAll, allReasons, "custom",
		"Custom repair: every row preserved, all violations flagged for manual editing"))

	return candidates
}

// annotatedCandidate materializes the rows at the given original indices as
// a partial candidate, flagging edit-needed rows and attaching their
// violation reasons. A row is only flagged when it has reasons attached.
func annotatedCandidate(table *types.TableInstance, indices []int, edit map[int]bool, reasons map[int][]string, suffix, description string) types.CandidateRepair {
	rows := make([]types.RepairRow, 0, len(indices))
	var editable []int

	for position, i := range indices {
		row := types.RepairRow{Cells: table.Rows[i].Clone()}
		if edit[i] && len(reasons[i]) > 0 {
			row.EditNeeded = true
			row.Reasons = append([]string(nil), reasons[i]...)
			editable = append(editable, position)
		}
		rows = append(rows, row)
	}

	return types.CandidateRepair{
		ID:              uuid.NewString(),
		Name:            types.CandidateName(table.Name, suffix),
		Description:     description,
		Columns:         table.ColumnNames(),
		Rows:            rows,
		IsPartialRepair: true,
		EditableRows:    editable,
	}
}
