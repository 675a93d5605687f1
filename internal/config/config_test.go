package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"input": "users.csv",
		"schema": "users.yaml",
		"table": "users",
		"max_combinations": 50,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "users.csv", cfg.Input)
	assert.Equal(t, "users.yaml", cfg.Schema)
	assert.Equal(t, "users", cfg.Table)
	assert.Equal(t, 50, cfg.MaxCombinations)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidateRejectsNegativeMaxCombinations(t *testing.T) {
	cfg := &Config{MaxCombinations: -1}
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingInput(t *testing.T) {
	cfg := &Config{Input: "/no/such/input.csv"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidateAcceptsExistingPaths(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "t.csv")
	require.NoError(t, os.WriteFile(input, []byte("a\n1\n"), 0644))

	cfg := &Config{Input: input, MaxCombinations: 10}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	flags := Config{Input: "flag.csv", Verbose: true}
	defaults := Config{
		Input:           "default.csv",
		Schema:          "default.yaml",
		MaxCombinations: 25,
	}

	merged := flags.MergeWithDefaults(defaults)

	assert.Equal(t, "flag.csv", merged.Input, "flag value wins")
	assert.Equal(t, "default.yaml", merged.Schema, "empty fields fill from defaults")
	assert.Equal(t, 25, merged.MaxCombinations)
	assert.True(t, merged.Verbose)
}
