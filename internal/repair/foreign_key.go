// Package repair generates candidate repairs for constraint violations in
// table instances.
package repair

import (
	"fmt"

	"github.com/calebrw/tablemend/internal/types"
)

// ForeignKeyRepairs produces repairs for dangling foreign-key references.
// The violations are independent per row, so no combinatorial search is
// needed: exactly two candidates are returned, one dropping every row
// flagged by a FOREIGN KEY violation and one unmodified deep copy for
// manual editing. No foreign-key violations means no candidates.
func ForeignKeyRepairs(violations []types.Violation, table *types.TableInstance) []types.CandidateRepair {
	candidates := []types.CandidateRepair{}
	if table.IsEmpty() {
		return candidates
	}

	dangling := map[int]struct{}{}
	for _, v := range violations {
		if v.Kind == types.ViolationForeignKey {
			dangling[v.Row-1] = struct{}{}
		}
	}
	if len(dangling) == 0 {
		return candidates
	}

	var kept []int
	for i := range table.Rows {
		if _, drop := dangling[i]; !drop {
			kept = append(kept, i)
		}
	}

	candidates = append(candidates, candidateFromIndices(table, kept, "fk_delete",
		fmt.Sprintf("Removes the %d row(s) with dangling foreign-key references", len(dangling))))
	candidates = append(candidates, customCandidate(table, "fk_custom",
		"Custom repair: unmodified copy of the table for manual foreign-key editing"))
	return candidates
}
