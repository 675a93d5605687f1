// Package repair generates candidate repairs for constraint violations in
// table instances.
package repair

import (
	"github.com/calebrw/tablemend/internal/types"
	"github.com/calebrw/tablemend/internal/validation"
)

// DefaultUndoDepth bounds the undo stack of an editing session. Pushing
// past the bound evicts the oldest snapshot.
const DefaultUndoDepth = 100

// snapshot captures the full state an undo restores: the row sequence and
// the violations valid against it.
type snapshot struct {
	rows       []types.RepairRow
	violations []types.Violation
}

// Session owns the single active editing session over a chosen candidate
// repair. Every edit or delete is preceded by a snapshot of the full row
// sequence, so Undo restores the candidate exactly. Rows are addressed by
// their stable identifier, which stays unambiguous even when two rows are
// value-identical. Sessions are not safe for concurrent use; the engine has
// no concurrency to protect against.
type Session struct {
	candidate  *types.CandidateRepair
	violations []types.Violation
	undo       []snapshot
	depth      int
}

// NewSession starts an editing session over a candidate and the violations
// computed against its row sequence. The candidate is deep-copied; the
// caller's value is never mutated.
func NewSession(candidate *types.CandidateRepair, violations []types.Violation) *Session {
	copied := *candidate
	copied.Rows = cloneRepairRows(candidate.Rows)
	copied.EditableRows = append([]int(nil), candidate.EditableRows...)
	return &Session{
		candidate:  &copied,
		violations: append([]types.Violation(nil), violations...),
		depth:      DefaultUndoDepth,
	}
}

// Candidate returns the session's current candidate state.
func (s *Session) Candidate() *types.CandidateRepair { return s.candidate }

// Violations returns the violations valid against the current row sequence.
func (s *Session) Violations() []types.Violation { return s.violations }

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

// Edit sets one cell of the row with the given identifier. Returns false
// when no such row exists; the session is unchanged in that case.
func (s *Session) Edit(rowID, column string, value types.CellValue) bool {
	index := s.indexOf(rowID)
	if index < 0 {
		return false
	}

	s.push()
	row := s.candidate.Rows[index].Cells.Clone()
	row.Cells[column] = value
	s.candidate.Rows[index].Cells = row
	return true
}

// DeleteRow removes the row with the given identifier and re-indexes the
// session's violations via position adjustment, which for the row-local
// violation kinds equals recomputing from scratch. Returns false when no
// such row exists.
func (s *Session) DeleteRow(rowID string) bool {
	index := s.indexOf(rowID)
	if index < 0 {
		return false
	}

	s.push()
	s.candidate.Rows = append(s.candidate.Rows[:index], s.candidate.Rows[index+1:]...)
	s.violations = validation.AfterDelete(s.violations, index)
	s.refreshEditableRows()
	return true
}

// Undo restores the most recent snapshot. Returns false when the undo
// stack is empty.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.candidate.Rows = top.rows
	s.violations = top.violations
	s.refreshEditableRows()
	return true
}

// push records the current state, evicting the oldest snapshot at depth.
func (s *Session) push() {
	if len(s.undo) >= s.depth {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, snapshot{
		rows:       cloneRepairRows(s.candidate.Rows),
		violations: append([]types.Violation(nil), s.violations...),
	})
}

func (s *Session) indexOf(rowID string) int {
	for i, row := range s.candidate.Rows {
		if row.Cells.ID == rowID {
			return i
		}
	}
	return -1
}

// refreshEditableRows recomputes the editable-row indices from the
// per-row edit-needed flags after the row sequence changed.
func (s *Session) refreshEditableRows() {
	if !s.candidate.IsPartialRepair {
		return
	}
	var editable []int
	for i, row := range s.candidate.Rows {
		if row.EditNeeded {
			editable = append(editable, i)
		}
	}
	s.candidate.EditableRows = editable
}

func cloneRepairRows(rows []types.RepairRow) []types.RepairRow {
	copied := make([]types.RepairRow, len(rows))
	for i, row := range rows {
		copied[i] = types.RepairRow{
			Cells:      row.Cells.Clone(),
			EditNeeded: row.EditNeeded,
			Reasons:    append([]string(nil), row.Reasons...),
		}
	}
	return copied
}
