// Package export renders table instances and chosen candidate repairs as
// SQL dumps for downstream execution.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/calebrw/tablemend/internal/types"
)

// sqlTypes maps declared column types to the SQL types used in the dump.
// Unknown types fall back to TEXT.
var sqlTypes = map[types.ColumnType]string{
	types.TypeInteger:   "INTEGER",
	types.TypeBigInt:    "INTEGER",
	types.TypeFloat:     "REAL",
	types.TypeDouble:    "REAL",
	types.TypeDecimal:   "REAL",
	types.TypeNumeric:   "NUMERIC",
	types.TypeBoolean:   "BOOLEAN",
	types.TypeDate:      "DATE",
	types.TypeDateTime:  "DATETIME",
	types.TypeTimestamp: "DATETIME",
	types.TypeVarchar:   "TEXT",
	types.TypeChar:      "TEXT",
	types.TypeText:      "TEXT",
}

func sqlTypeFor(t types.ColumnType) string {
	if sqlType, ok := sqlTypes[t]; ok {
		return sqlType
	}
	return "TEXT"
}

// WriteSQL writes a SQL dump of the table: a CREATE TABLE IF NOT EXISTS
// statement carrying the declared constraints (NOT NULL per column,
// table-level PRIMARY KEY and UNIQUE clauses, FOREIGN KEY clauses for
// columns with references) followed by one INSERT per row. Null cells
// become literal NULL; everything else is single-quoted with quote
// doubling.
func WriteSQL(w io.Writer, table *types.TableInstance) error {
	if table.IsEmpty() {
		return fmt.Errorf("no data to export for table %q", table.Name)
	}

	var colDefs []string
	var pkCols, uniqueCols []string
	var fkClauses []string

	for _, col := range table.Columns {
		def := fmt.Sprintf("`%s` %s", col.Name, sqlTypeFor(col.Type))
		if col.Has(types.ConstraintNotNull) {
			def += " NOT NULL"
		}
		if col.Has(types.ConstraintPrimary) {
			pkCols = append(pkCols, col.Name)
		}
		if col.Has(types.ConstraintUnique) {
			uniqueCols = append(uniqueCols, col.Name)
		}
		if col.Has(types.ConstraintForeign) && col.Reference != nil {
			fkClauses = append(fkClauses, fmt.Sprintf(
				"FOREIGN KEY (`%s`) REFERENCES `%s` (`%s`)",
				col.Name, col.Reference.TargetTable, col.Reference.TargetColumn))
		}
		colDefs = append(colDefs, def)
	}

	if len(pkCols) > 0 {
		colDefs = append(colDefs, fmt.Sprintf("PRIMARY KEY (%s)", backtickList(pkCols)))
	}
	if len(uniqueCols) > 0 {
		colDefs = append(colDefs, fmt.Sprintf("UNIQUE (%s)", backtickList(uniqueCols)))
	}
	colDefs = append(colDefs, fkClauses...)

	if _, err := fmt.Fprintf(w, "CREATE TABLE IF NOT EXISTS `%s` (%s);\n",
		table.Name, strings.Join(colDefs, ", ")); err != nil {
		return err
	}

	columnList := backtickList(table.ColumnNames())
	for _, row := range table.Rows {
		values := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			values[i] = sqlLiteral(row.Get(col.Name))
		}
		if _, err := fmt.Fprintf(w, "INSERT INTO `%s` (%s) VALUES (%s);\n",
			table.Name, columnList, strings.Join(values, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteCandidateSQL dumps a chosen candidate repair using the source
// table's column definitions. The candidate's rows are handed over
// unchanged; partial-repair annotations are not part of the dump.
func WriteCandidateSQL(w io.Writer, candidate *types.CandidateRepair, columns []types.Column, tableName string) error {
	return WriteSQL(w, candidate.AsTable(tableName, columns))
}

func backtickList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "`" + name + "`"
	}
	return strings.Join(quoted, ", ")
}

func sqlLiteral(value types.CellValue) string {
	if value.Kind == types.KindNull {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(value.String(), "'", "''") + "'"
}
