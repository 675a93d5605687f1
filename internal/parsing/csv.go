// Package parsing loads table instances from CSV and JSON input and applies
// declarative table schemas to them.
package parsing

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/calebrw/tablemend/internal/types"
)

// LoadCSVFile reads a CSV file into a table instance named after the file.
func LoadCSVFile(path, tableName string) (*types.TableInstance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Message: "failed to open CSV file " + path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	return LoadCSV(f, tableName)
}

// LoadCSV reads CSV content into a table instance. The first record is the
// header; every cell arrives as text, with empty cells stored as null.
// Declared types and constraints default to TEXT with no constraints until
// a table schema is applied. Every row receives a stable identifier.
func LoadCSV(r io.Reader, tableName string) (*types.TableInstance, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells become null

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Message: "failed to read CSV content", Cause: err}
	}

	table := &types.TableInstance{Name: tableName}
	if len(records) == 0 {
		return table, nil
	}

	header := records[0]
	table.Columns = make([]types.Column, len(header))
	for i, name := range header {
		table.Columns[i] = types.Column{
			Name: strings.TrimSpace(name),
			Type: types.TypeText,
		}
	}

	for _, record := range records[1:] {
		cells := make(map[string]types.CellValue, len(header))
		for i, col := range table.Columns {
			if i >= len(record) || record[i] == "" {
				cells[col.Name] = types.Null()
				continue
			}
			cells[col.Name] = types.Text(record[i])
		}
		table.Rows = append(table.Rows, types.NewRow(cells))
	}

	return table, nil
}
