// Package parsing loads table instances from CSV and JSON input and applies
// declarative table schemas to them.
package parsing

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/calebrw/tablemend/internal/schemas"
	"github.com/calebrw/tablemend/internal/types"
)

// tableDocument mirrors the JSON table-document shape defined by the
// embedded schema in internal/schemas.
type tableDocument struct {
	Table   string                   `json:"table"`
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

// LoadJSONFile reads a JSON table-document file into a table instance.
func LoadJSONFile(path string) (*types.TableInstance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Message: "failed to read JSON file " + path, Cause: err}
	}
	return LoadJSON(data)
}

// LoadJSON decodes a JSON table document into a table instance. The
// document is first checked against the embedded JSON Schema. Cell values
// keep their JSON kind: numbers stay numbers, strings stay text, null stays
// null and booleans become their textual form. Every row receives a stable
// identifier. Declared types default to TEXT until a table schema is
// applied.
func LoadJSON(data []byte) (*types.TableInstance, error) {
	if err := schemas.ValidateTableDocument(string(data)); err != nil {
		return nil, err
	}

	var doc tableDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Message: "failed to decode table document", Cause: err}
	}

	table := &types.TableInstance{Name: doc.Table}
	table.Columns = make([]types.Column, len(doc.Columns))
	for i, name := range doc.Columns {
		table.Columns[i] = types.Column{Name: name, Type: types.TypeText}
	}

	for _, raw := range doc.Rows {
		cells := make(map[string]types.CellValue, len(doc.Columns))
		for _, col := range doc.Columns {
			cells[col] = cellFromJSON(raw[col])
		}
		table.Rows = append(table.Rows, types.NewRow(cells))
	}

	return table, nil
}

// cellFromJSON maps a decoded JSON value onto the tagged cell
// representation. Absent keys decode as nil and become null.
func cellFromJSON(value interface{}) types.CellValue {
	switch v := value.(type) {
	case nil:
		return types.Null()
	case string:
		return types.Text(v)
	case float64:
		return types.Number(v)
	case bool:
		return types.Text(strconv.FormatBool(v))
	default:
		return types.Null()
	}
}
