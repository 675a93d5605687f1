// Package parsing loads table instances from CSV and JSON input and applies
// declarative table schemas to them.
package parsing

import (
	"strings"

	"github.com/calebrw/tablemend/internal/types"
)

// typeNormalizations maps common declared-type spellings to the canonical
// column types the validator understands.
var typeNormalizations = map[string]types.ColumnType{
	"INT":       types.TypeInteger,
	"INTEGER":   types.TypeInteger,
	"BIGINT":    types.TypeBigInt,
	"SMALLINT":  types.TypeInteger,
	"TINYINT":   types.TypeInteger,
	"FLOAT":     types.TypeFloat,
	"DOUBLE":    types.TypeDouble,
	"REAL":      types.TypeDouble,
	"DECIMAL":   types.TypeDecimal,
	"NUMERIC":   types.TypeNumeric,
	"BOOL":      types.TypeBoolean,
	"BOOLEAN":   types.TypeBoolean,
	"DATE":      types.TypeDate,
	"DATETIME":  types.TypeDateTime,
	"TIMESTAMP": types.TypeTimestamp,
	"VARCHAR":   types.TypeVarchar,
	"CHAR":      types.TypeChar,
	"TEXT":      types.TypeText,
	"STRING":    types.TypeText,
}

// NormalizeType maps a declared type name to its canonical form. Length
// suffixes like VARCHAR(255) are stripped; unknown names fall back to TEXT.
func NormalizeType(name string) types.ColumnType {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(normalized, '('); i >= 0 {
		normalized = normalized[:i]
	}
	if canonical, ok := typeNormalizations[normalized]; ok {
		return canonical
	}
	return types.TypeText
}
