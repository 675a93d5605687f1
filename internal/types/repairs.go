// Package types provides type definitions for structured data used throughout the tablemend system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RepairRow is one row inside a candidate repair. For partial (hybrid)
// candidates the row additionally carries an edit-needed flag and the
// human-readable reasons the row still requires manual attention. A row is
// never marked edit-needed without at least one reason attached.
type RepairRow struct {
	Cells      Row      `json:"cells"`
	EditNeeded bool     `json:"edit_needed,omitempty"`
	Reasons    []string `json:"reasons,omitempty"`
}

// CandidateRepair is one fully materialized alternative table instance
// proposed to resolve a set of violations. EditableRows holds the 0-based
// indices, within this candidate's own row sequence, of rows flagged
// edit-needed.
type CandidateRepair struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Columns         []string    `json:"columns"`
	Rows            []RepairRow `json:"rows"`
	IsPartialRepair bool        `json:"is_partial_repair,omitempty"`
	EditableRows    []int       `json:"editable_rows,omitempty"`

	// Truncated is set when combinatorial enumeration stopped at the
	// configured cap before exhausting every combination.
	Truncated bool `json:"truncated,omitempty"`
}

// RowValues returns the candidate's rows as plain rows, dropping the
// partial-repair annotations. Used when handing a chosen candidate to
// export or re-checking collaborators.
func (c *CandidateRepair) RowValues() []Row {
	rows := make([]Row, len(c.Rows))
	for i, r := range c.Rows {
		rows[i] = r.Cells
	}
	return rows
}

// AsTable materializes the candidate as a table instance carrying the given
// column definitions, for re-checking or export.
func (c *CandidateRepair) AsTable(name string, columns []Column) *TableInstance {
	return &TableInstance{Name: name, Columns: columns, Rows: c.RowValues()}
}
