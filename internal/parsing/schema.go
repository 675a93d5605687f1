// Package parsing loads table instances from CSV and JSON input and applies
// declarative table schemas to them.
package parsing

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/calebrw/tablemend/internal/types"
)

// ColumnSchema declares the type and constraint set of one column in a
// YAML table schema.
type ColumnSchema struct {
	Name        string                     `yaml:"name" validate:"required"`
	Type        string                     `yaml:"type"`
	Constraints []string                   `yaml:"constraints" validate:"dive,oneof=primary unique notnull foreign"`
	References  *types.ForeignKeyReference `yaml:"references"`
}

// TableSchema is the declarative schema applied to a loaded table: declared
// types and constraints per column, plus optional foreign-key references.
type TableSchema struct {
	Table   string         `yaml:"table"`
	Columns []ColumnSchema `yaml:"columns" validate:"required,min=1,dive"`
}

var schemaValidator = validator.New()

// LoadTableSchemaFile reads and validates a YAML table schema.
func LoadTableSchemaFile(path string) (*TableSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SchemaError{Message: "failed to read schema file " + path, Cause: err}
	}
	return LoadTableSchema(data)
}

// LoadTableSchema decodes and validates YAML table-schema content.
func LoadTableSchema(data []byte) (*TableSchema, error) {
	var schema TableSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, &SchemaError{Message: "failed to decode schema YAML", Cause: err}
	}

	if err := schemaValidator.Struct(&schema); err != nil {
		return nil, &SchemaError{Message: "invalid schema declaration", Cause: err}
	}

	for _, col := range schema.Columns {
		if containsConstraint(col.Constraints, string(types.ConstraintForeign)) && col.References == nil {
			return nil, &SchemaError{
				Message: fmt.Sprintf("column %s declares a foreign constraint without references", col.Name),
			}
		}
	}

	return &schema, nil
}

// Apply copies the schema's declared types, constraints and references onto
// the matching columns of a loaded table. Declaring a column the table does
// not have is an error; table columns the schema omits keep their defaults.
func (s *TableSchema) Apply(table *types.TableInstance) error {
	for _, declared := range s.Columns {
		col := table.Column(declared.Name)
		if col == nil {
			return &SchemaError{
				Message: fmt.Sprintf("schema declares column %s which table %s does not have", declared.Name, table.Name),
			}
		}

		if declared.Type != "" {
			col.Type = NormalizeType(declared.Type)
		}
		col.Constraints = col.Constraints[:0]
		for _, cons := range declared.Constraints {
			col.Constraints = append(col.Constraints, types.Constraint(cons))
		}
		col.Reference = declared.References
	}
	return nil
}

// Link derives the foreign-key link configured by the schema for the given
// referencing table: the first column declared foreign. Nil when the schema
// declares no foreign column.
func (s *TableSchema) Link(referencingTable string) *types.ForeignKeyLink {
	for _, col := range s.Columns {
		if containsConstraint(col.Constraints, string(types.ConstraintForeign)) && col.References != nil {
			return &types.ForeignKeyLink{
				ReferencingTable: referencingTable,
				ForeignKeyColumn: col.Name,
				ReferencedTable:  col.References.TargetTable,
			}
		}
	}
	return nil
}

func containsConstraint(constraints []string, constraint string) bool {
	for _, c := range constraints {
		if c == constraint {
			return true
		}
	}
	return false
}
