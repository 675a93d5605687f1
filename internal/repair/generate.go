// Package repair generates candidate repairs for constraint violations in
// table instances.
package repair

import (
	"strings"

	"github.com/google/uuid"

	"github.com/calebrw/tablemend/internal/types"
)

// DefaultMaxCombinations bounds primary-key combinatorial enumeration. The
// Cartesian product of duplicate-group sizes is unbounded in principle;
// enumeration stops at this cap and the produced candidates are marked
// truncated. Small duplicate groups (the common case) are unaffected.
const DefaultMaxCombinations = 1000

// Options control candidate generation.
type Options struct {
	// MaxCombinations overrides DefaultMaxCombinations when positive.
	MaxCombinations int
}

func (o Options) maxCombinations() int {
	if o.MaxCombinations > 0 {
		return o.MaxCombinations
	}
	return DefaultMaxCombinations
}

// Generate produces candidate repairs for the given violations, selecting
// the strategy from the violation kinds present:
//
//   - any TYPE MISMATCH: partial (hybrid) repair, exactly three candidates;
//   - else a primary column exists: combinatorial primary-key repair;
//   - else: general keep-first/keep-last repair.
//
// When the primary-key or general strategy produced at least one candidate,
// an unmodified deep copy of the table is appended for free-form manual
// editing. The partial strategy brings its own custom candidate, so no
// second one is appended there. Foreign-key repairs are generated
// separately via ForeignKeyRepairs, per configured link.
//
// An empty table or an empty violation list yields an empty candidate list.
func Generate(violations []types.Violation, table *types.TableInstance, opts Options) []types.CandidateRepair {
	if table.IsEmpty() || len(violations) == 0 {
		return []types.CandidateRepair{}
	}

	if hasKind(violations, types.ViolationTypeMismatch) {
		return PartialRepairs(violations, table)
	}

	var candidates []types.CandidateRepair
	if len(table.PrimaryKeyColumns()) > 0 {
		candidates = PrimaryKeyRepairs(table, opts)
	} else {
		candidates = GeneralRepairs(violations, table)
	}

	if len(candidates) > 0 {
		candidates = append(candidates, customCandidate(table, "custom",
			"Custom repair: unmodified copy of the table for manual editing"))
	}
	return candidates
}

func hasKind(violations []types.Violation, kind types.ViolationKind) bool {
	for _, v := range violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// customCandidate builds an unmodified deep copy of the table as a
// candidate with the given name suffix.
func customCandidate(table *types.TableInstance, suffix, description string) types.CandidateRepair {
	rows := make([]types.RepairRow, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = types.RepairRow{Cells: row.Clone()}
	}
	return types.CandidateRepair{
		ID:          uuid.NewString(),
		Name:        types.CandidateName(table.Name, suffix),
		Description: description,
		Columns:     table.ColumnNames(),
		Rows:        rows,
	}
}

// candidateFromIndices materializes the rows at the given original indices
// as a plain (non-partial) candidate.
func candidateFromIndices(table *types.TableInstance, indices []int, suffix, description string) types.CandidateRepair {
	rows := make([]types.RepairRow, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, types.RepairRow{Cells: table.Rows[i].Clone()})
	}
	return types.CandidateRepair{
		ID:          uuid.NewString(),
		Name:        types.CandidateName(table.Name, suffix),
		Description: description,
		Columns:     table.ColumnNames(),
		Rows:        rows,
	}
}

// Separators for serialized value tuples. Unit separator between cells,
// record separator between rows.
const (
	cellSep = "\x1f"
	rowSep  = "\x1e"
)

// tupleKey serializes the values of the named columns for one row.
func tupleKey(row types.Row, columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = row.Get(col).String()
	}
	return strings.Join(parts, cellSep)
}

// rowsKey serializes the full value tuples of a row sequence, used to
// deduplicate combinations that produce identical survivors.
func rowsKey(rows []types.Row, columns []string) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = tupleKey(row, columns)
	}
	return strings.Join(parts, rowSep)
}
