// Package types provides type definitions for structured data used throughout the tablemend system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// formatNumber renders a float with the shortest representation that
// round-trips, so 1 prints as "1" rather than "1.000000".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ColumnType is a declared column type as it appears in a table schema.
// Values are normalized to upper case (see parsing.NormalizeType).
type ColumnType string

// Recognized column types. Unknown types fall back to TypeText behavior.
const (
	TypeInteger   ColumnType = "INTEGER"
	TypeBigInt    ColumnType = "BIGINT"
	TypeFloat     ColumnType = "FLOAT"
	TypeDouble    ColumnType = "DOUBLE"
	TypeDecimal   ColumnType = "DECIMAL"
	TypeNumeric   ColumnType = "NUMERIC"
	TypeBoolean   ColumnType = "BOOLEAN"
	TypeDate      ColumnType = "DATE"
	TypeDateTime  ColumnType = "DATETIME"
	TypeTimestamp ColumnType = "TIMESTAMP"
	TypeVarchar   ColumnType = "VARCHAR"
	TypeText      ColumnType = "TEXT"
	TypeChar      ColumnType = "CHAR"
)

// Constraint identifies a single per-column integrity constraint.
type Constraint string

// Supported per-column constraints.
const (
	ConstraintPrimary Constraint = "primary"
	ConstraintUnique  Constraint = "unique"
	ConstraintNotNull Constraint = "notnull"
	ConstraintForeign Constraint = "foreign"
)

// ForeignKeyReference names the table and column a foreign column points at.
type ForeignKeyReference struct {
	TargetTable  string `json:"target_table" yaml:"target_table" validate:"required"`
	TargetColumn string `json:"target_column" yaml:"target_column" validate:"required"`
}

// ForeignKeyLink configures a foreign-key relationship between two loaded
// tables: every value of ForeignKeyColumn in the referencing table must exist
// in the referenced table's key column.
type ForeignKeyLink struct {
	ReferencingTable string `json:"referencing_table" validate:"required"`
	ForeignKeyColumn string `json:"foreign_key_column" validate:"required"`
	ReferencedTable  string `json:"referenced_table" validate:"required"`
}

// Column describes one column of a table instance: its name, declared type
// and constraint set. Reference is only meaningful when the constraint set
// contains ConstraintForeign.
type Column struct {
	Name        string               `json:"name"`
	Type        ColumnType           `json:"type"`
	Constraints []Constraint         `json:"constraints,omitempty"`
	Reference   *ForeignKeyReference `json:"reference,omitempty"`
}

// Has reports whether the column carries the given constraint.
func (c Column) Has(constraint Constraint) bool {
	for _, cons := range c.Constraints {
		if cons == constraint {
			return true
		}
	}
	return false
}

// CellKind tags the runtime kind of a cell value.
type CellKind int

// Cell value kinds. Loosely typed input is always one of these three;
// there is no implicit coercion between them.
const (
	KindNull CellKind = iota
	KindText
	KindNumber
)

// CellValue is a tagged cell value: null, text or number.
// The zero value is null.
type CellValue struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Number float64  `json:"number,omitempty"`
}

// Null returns the null cell value.
func Null() CellValue { return CellValue{Kind: KindNull} }

// Text returns a text cell value.
func Text(s string) CellValue { return CellValue{Kind: KindText, Text: s} }

// Number returns a numeric cell value.
func Number(f float64) CellValue { return CellValue{Kind: KindNumber, Number: f} }

// String renders the value the way it is shown to users and compared for
// duplicate detection: numbers use the shortest decimal representation,
// null renders as the empty string.
func (v CellValue) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return formatNumber(v.Number)
	default:
		return ""
	}
}

// IsNullOrEmpty reports whether the value is null or trims to the empty
// string. This is the single definition of "null/empty" used by every
// constraint check.
func (v CellValue) IsNullOrEmpty() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	default:
		return false
	}
}

// Row is one table row: a mapping from column name to cell value plus a
// stable synthetic identifier assigned at parse time. The ID lets edits and
// deletes resolve unambiguously even when two rows are value-identical.
type Row struct {
	ID    string               `json:"id"`
	Cells map[string]CellValue `json:"cells"`
}

// NewRow builds a row with a fresh identifier.
func NewRow(cells map[string]CellValue) Row {
	if cells == nil {
		cells = map[string]CellValue{}
	}
	return Row{ID: uuid.NewString(), Cells: cells}
}

// Get returns the value of the named column, null if absent.
func (r Row) Get(column string) CellValue {
	if v, ok := r.Cells[column]; ok {
		return v
	}
	return Null()
}

// Clone returns a deep copy of the row, preserving its identifier.
func (r Row) Clone() Row {
	cells := make(map[string]CellValue, len(r.Cells))
	for k, v := range r.Cells {
		cells[k] = v
	}
	return Row{ID: r.ID, Cells: cells}
}

// TableInstance is a fully materialized table: ordered columns and an
// ordered row sequence.
type TableInstance struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ColumnNames returns the column names in declaration order.
func (t *TableInstance) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the column with the given name, or nil.
func (t *TableInstance) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// PrimaryKeyColumns returns the names of all columns marked primary, in
// declaration order.
func (t *TableInstance) PrimaryKeyColumns() []string {
	var keys []string
	for _, col := range t.Columns {
		if col.Has(ConstraintPrimary) {
			keys = append(keys, col.Name)
		}
	}
	return keys
}

// KeyColumn returns the column used as the table's key when it is the target
// of a foreign-key link: the column explicitly marked primary, else the
// first column. Empty string for a table with no columns.
func (t *TableInstance) KeyColumn() string {
	for _, col := range t.Columns {
		if col.Has(ConstraintPrimary) {
			return col.Name
		}
	}
	if len(t.Columns) > 0 {
		return t.Columns[0].Name
	}
	return ""
}

// IsEmpty reports whether the table has no columns or no rows. An empty
// table is a legitimate transient state, not an error: detection and
// generation return empty results for it.
func (t *TableInstance) IsEmpty() bool {
	return t == nil || len(t.Columns) == 0 || len(t.Rows) == 0
}

// Clone returns a deep copy of the table. Row identifiers are preserved so
// violations computed against the original remain resolvable.
func (t *TableInstance) Clone() *TableInstance {
	if t == nil {
		return nil
	}
	clone := &TableInstance{
		Name:    t.Name,
		Columns: make([]Column, len(t.Columns)),
		Rows:    make([]Row, len(t.Rows)),
	}
	copy(clone.Columns, t.Columns)
	for i, row := range t.Rows {
		clone.Rows[i] = row.Clone()
	}
	return clone
}
