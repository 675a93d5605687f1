// Package validation provides functionality to detect constraint violations
// in table instances.
package validation

import (
	"fmt"

	"github.com/calebrw/tablemend/internal/types"
)

// Check scans a table instance against its per-column constraints and
// declared types and returns every violation found. Columns are processed
// in declaration order; within a column the passes run type, primary,
// unique, notnull. When a foreign-key link is configured and both the
// referencing and referenced tables are available in tables, a foreign-key
// pass runs last.
//
// Check never fails: a nil or empty table yields an empty result. It is
// pure over its inputs, so callers recompute from scratch whenever
// constraints, types or the link change; the only incremental update
// supported elsewhere is AfterDelete.
func Check(table *types.TableInstance, link *types.ForeignKeyLink, tables map[string]*types.TableInstance) []types.Violation {
	violations := []types.Violation{}
	if table.IsEmpty() {
		return violations
	}

	for _, col := range table.Columns {
		violations = append(violations, checkTypes(table, col)...)
		if col.Has(types.ConstraintPrimary) {
			violations = append(violations, checkDuplicates(table, col.Name, types.ViolationPrimaryKey, true)...)
		}
		if col.Has(types.ConstraintUnique) {
			violations = append(violations, checkDuplicates(table, col.Name, types.ViolationUnique, false)...)
		}
		if col.Has(types.ConstraintNotNull) {
			violations = append(violations, checkNotNull(table, col.Name)...)
		}
	}

	if link != nil && tables != nil && link.ReferencingTable == table.Name {
		referenced := tables[link.ReferencedTable]
		if referenced != nil {
			violations = append(violations, CheckForeignKey(table, referenced, link)...)
		}
	}

	return violations
}

// checkTypes emits a TYPE MISMATCH for every row whose value fails the
// column's declared type.
func checkTypes(table *types.TableInstance, col types.Column) []types.Violation {
	var violations []types.Violation
	for i, row := range table.Rows {
		value := row.Get(col.Name)
		if !ValidType(value, col.Type) {
			violations = append(violations, types.Violation{
				Kind:    types.ViolationTypeMismatch,
				Row:     i + 1,
				Column:  col.Name,
				Message: fmt.Sprintf("Value '%s' is not a valid %s", value.String(), col.Type),
				Value:   value.String(),
			})
		}
	}
	return violations
}

// checkDuplicates runs a single pass with a seen-value set. When flagNull is
// set (primary key), null/empty values are themselves violations; otherwise
// (unique) they are exempt from checking entirely.
func checkDuplicates(table *types.TableInstance, column string, kind types.ViolationKind, flagNull bool) []types.Violation {
	var violations []types.Violation
	seen := make(map[string]struct{}, len(table.Rows))

	for i, row := range table.Rows {
		value := row.Get(column)
		if value.IsNullOrEmpty() {
			if flagNull {
				violations = append(violations, types.Violation{
					Kind:    kind,
					Row:     i + 1,
					Column:  column,
					Message: types.MsgNullEmpty,
				})
			}
			continue
		}

		key := value.String()
		if _, dup := seen[key]; dup {
			violations = append(violations, types.Violation{
				Kind:    kind,
				Row:     i + 1,
				Column:  column,
				Message: types.MsgDuplicate,
				Value:   key,
			})
			continue
		}
		seen[key] = struct{}{}
	}

	return violations
}

// checkNotNull emits a NOT NULL violation for every null/empty value.
func checkNotNull(table *types.TableInstance, column string) []types.Violation {
	var violations []types.Violation
	for i, row := range table.Rows {
		if row.Get(column).IsNullOrEmpty() {
			violations = append(violations, types.Violation{
				Kind:    types.ViolationNotNull,
				Row:     i + 1,
				Column:  column,
				Message: types.MsgNullEmpty,
			})
		}
	}
	return violations
}
