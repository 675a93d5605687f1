// Package validation provides functionality to detect constraint violations
// in table instances.
package validation

import (
	"fmt"
	"strings"

	"github.com/calebrw/tablemend/internal/types"
)

// CheckForeignKey flags every row of the referencing table whose
// foreign-key value is non-empty and has no trimmed-equal match in the
// referenced table's key column. The key column is the one explicitly
// marked primary, else the first column. Empty foreign-key values are never
// flagged; NOT NULL covers those when declared.
func CheckForeignKey(referencing, referenced *types.TableInstance, link *types.ForeignKeyLink) []types.Violation {
	violations := []types.Violation{}
	if link == nil || referencing.IsEmpty() || referenced.IsEmpty() {
		return violations
	}

	keyColumn := referenced.KeyColumn()
	keys := referencedKeySet(referenced.Rows, keyColumn)

	for i, row := range referencing.Rows {
		value := strings.TrimSpace(row.Get(link.ForeignKeyColumn).String())
		if value == "" {
			continue
		}
		if _, ok := keys[value]; !ok {
			violations = append(violations, types.Violation{
				Kind:    types.ViolationForeignKey,
				Row:     i + 1,
				Column:  link.ForeignKeyColumn,
				Message: fmt.Sprintf("Value '%s' not found in %s.%s", value, referenced.Name, keyColumn),
				Value:   value,
			})
		}
	}

	return violations
}

// CheckCandidateForeignKey re-runs the foreign-key check with a candidate
// repair standing in for the referenced table, so the user can see whether
// picking that candidate would leave dangling references. The candidate
// qualifies when its name matches the referenced table exactly or after
// stripping a recognized repair-name suffix; otherwise nil is returned.
func CheckCandidateForeignKey(referencing *types.TableInstance, candidate *types.CandidateRepair, referencedColumns []types.Column, link *types.ForeignKeyLink) []types.Violation {
	if link == nil || candidate == nil {
		return nil
	}
	if !types.CandidateMatchesTable(candidate.Name, link.ReferencedTable) {
		return nil
	}

	stand := candidate.AsTable(link.ReferencedTable, referencedColumns)
	return CheckForeignKey(referencing, stand, link)
}

// referencedKeySet collects the trimmed non-empty values of the key column.
func referencedKeySet(rows []types.Row, keyColumn string) map[string]struct{} {
	keys := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		value := strings.TrimSpace(row.Get(keyColumn).String())
		if value != "" {
			keys[value] = struct{}{}
		}
	}
	return keys
}
