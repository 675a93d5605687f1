// Package types provides type definitions for structured data used throughout the tablemend system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strings"
)

// candidateSuffixPattern recognizes the suffixes the repair generator
// appends to a table name when naming a candidate. Kept in sync with the
// CandidateName call sites in internal/repair.
var candidateSuffixPattern = regexp.MustCompile(`(?i)_(repair_\d+|keep_first|keep_last|partial_\d+|custom|fk_delete|fk_custom)$`)

// CandidateName builds the name of a candidate repair from its source table
// and a strategy suffix, e.g. CandidateName("users", "repair_1") ->
// "users_repair_1".
func CandidateName(table, suffix string) string {
	return fmt.Sprintf("%s_%s", table, suffix)
}

// CandidateBaseTable strips a recognized repair-name suffix from a
// candidate name, returning the table the candidate was derived from. A
// name without a recognized suffix is returned unchanged.
func CandidateBaseTable(name string) string {
	return candidateSuffixPattern.ReplaceAllString(name, "")
}

// CandidateMatchesTable reports whether a candidate corresponds to the
// given table, either by exact (case-insensitive) name match or after
// stripping a recognized repair-name suffix.
func CandidateMatchesTable(candidateName, table string) bool {
	if strings.EqualFold(candidateName, table) {
		return true
	}
	return strings.EqualFold(CandidateBaseTable(candidateName), table)
}
