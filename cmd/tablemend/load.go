package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/calebrw/tablemend/internal/parsing"
	"github.com/calebrw/tablemend/internal/types"
)

// loadTable reads a table instance from a CSV or JSON input file and, when
// a schema path is given, applies the declared types and constraints. The
// table name defaults to the input file name without extension.
func loadTable(input, schemaPath, tableName string) (*types.TableInstance, *parsing.TableSchema, error) {
	if input == "" {
		return nil, nil, fmt.Errorf("no input file given")
	}

	var table *types.TableInstance
	var err error

	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv":
		name := tableName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		}
		table, err = parsing.LoadCSVFile(input, name)
	case ".json":
		table, err = parsing.LoadJSONFile(input)
		if err == nil && tableName != "" {
			table.Name = tableName
		}
	default:
		return nil, nil, fmt.Errorf("unsupported input format %q (expected .csv or .json)", filepath.Ext(input))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load table from %s: %w", input, err)
	}

	var schema *parsing.TableSchema
	if schemaPath != "" {
		schema, err = parsing.LoadTableSchemaFile(schemaPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load table schema: %w", err)
		}
		if err := schema.Apply(table); err != nil {
			return nil, nil, fmt.Errorf("failed to apply table schema: %w", err)
		}
	}

	return table, schema, nil
}

// loadLinkedTables loads the checked table plus, when configured, the
// referenced table of a foreign-key link, and derives the link itself from
// the schema's foreign column declaration.
func loadLinkedTables(input, schemaPath, tableName, referenced, referencedSchema string) (*types.TableInstance, *types.ForeignKeyLink, map[string]*types.TableInstance, error) {
	table, schema, err := loadTable(input, schemaPath, tableName)
	if err != nil {
		return nil, nil, nil, err
	}

	tables := map[string]*types.TableInstance{table.Name: table}

	var link *types.ForeignKeyLink
	if schema != nil {
		link = schema.Link(table.Name)
	}

	if link != nil {
		if referenced == "" {
			return nil, nil, nil, fmt.Errorf("schema declares a foreign key to %s but no --referenced input was given", link.ReferencedTable)
		}
		referencedTable, _, err := loadTable(referenced, referencedSchema, link.ReferencedTable)
		if err != nil {
			return nil, nil, nil, err
		}
		tables[referencedTable.Name] = referencedTable
	}

	return table, link, tables, nil
}
