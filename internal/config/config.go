// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input            string `json:"input,omitempty"`             // Path to the table input (CSV or JSON document)
	Schema           string `json:"schema,omitempty"`            // Path to the YAML table schema
	Referenced       string `json:"referenced,omitempty"`        // Path to the referenced table input (for foreign-key checks)
	ReferencedSchema string `json:"referenced_schema,omitempty"` // Path to the referenced table's YAML schema
	Output           string `json:"output,omitempty"`            // Path for the SQL dump (defaults to stdout)

	// Table naming
	Table string `json:"table,omitempty"` // Table name override (defaults to the input file name)

	// Behavior
	MaxCombinations int  `json:"max_combinations,omitempty"` // Cap on primary-key combinatorial enumeration
	Verbose         bool `json:"verbose,omitempty"`          // Print detailed summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxCombinations < 0 {
		return fmt.Errorf("config error: 'max_combinations' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}
	if c.Referenced != "" {
		if _, err := os.Stat(c.Referenced); os.IsNotExist(err) {
			return fmt.Errorf("config error: referenced table file not found: %s", c.Referenced)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Referenced == "" {
		result.Referenced = defaults.Referenced
	}
	if result.ReferencedSchema == "" {
		result.ReferencedSchema = defaults.ReferencedSchema
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Table == "" {
		result.Table = defaults.Table
	}

	// Int fields: use default if zero
	if result.MaxCombinations == 0 {
		result.MaxCombinations = defaults.MaxCombinations
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
