// Package validation provides functionality to detect constraint violations
// in table instances.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/calebrw/tablemend/internal/types"
)

var integerPattern = regexp.MustCompile(`^-?\d+$`)

// booleanLiterals are the accepted boolean spellings, lower-cased.
var booleanLiterals = map[string]struct{}{
	"true": {}, "false": {},
	"1": {}, "0": {},
	"yes": {}, "no": {},
}

// dateLayouts are tried in order when validating DATE/DATETIME/TIMESTAMP
// values. The first layout that parses wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// ValidType reports whether a cell value is acceptable for the declared
// column type. It is pure and total: null/empty values are always valid
// here (NOT NULL is a separate check), and unknown or textual types accept
// everything.
func ValidType(value types.CellValue, declared types.ColumnType) bool {
	if value.IsNullOrEmpty() {
		return true
	}

	text := strings.TrimSpace(value.String())

	switch declared {
	case types.TypeInteger, types.TypeBigInt:
		if !integerPattern.MatchString(text) {
			return false
		}
		f, err := strconv.ParseFloat(text, 64)
		return err == nil && !math.IsInf(f, 0)

	case types.TypeFloat, types.TypeDouble, types.TypeDecimal, types.TypeNumeric:
		f, err := strconv.ParseFloat(text, 64)
		return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)

	case types.TypeBoolean:
		_, ok := booleanLiterals[strings.ToLower(text)]
		return ok

	case types.TypeDate, types.TypeDateTime, types.TypeTimestamp:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, text); err == nil {
				return true
			}
		}
		return false

	default:
		// VARCHAR, TEXT, CHAR and anything unrecognized: always valid.
		return true
	}
}
