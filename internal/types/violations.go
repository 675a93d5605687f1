// Package types provides type definitions for structured data used throughout the tablemend system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ViolationKind identifies which constraint a violation belongs to. The
// values match the labels shown to users.
type ViolationKind string

// Violation kinds.
const (
	ViolationPrimaryKey   ViolationKind = "PRIMARY KEY"
	ViolationUnique       ViolationKind = "UNIQUE"
	ViolationNotNull      ViolationKind = "NOT NULL"
	ViolationTypeMismatch ViolationKind = "TYPE MISMATCH"
	ViolationForeignKey   ViolationKind = "FOREIGN KEY"
)

// Violation represents a single constraint failure at a specific row and
// column. Row is 1-based and valid against the exact row sequence the
// violation was computed from.
type Violation struct {
	Kind    ViolationKind `json:"type"`
	Row     int           `json:"row"`
	Column  string        `json:"col"`
	Message string        `json:"msg"`
	Value   string        `json:"value,omitempty"`
}

// IsNullViolation reports whether the violation flags a null/empty value
// (a NOT NULL failure, or a null primary-key value).
func (v Violation) IsNullViolation() bool {
	return v.Kind == ViolationNotNull || v.Message == MsgNullEmpty
}

// IsDuplicateViolation reports whether the violation flags a duplicate
// value in a primary or unique column.
func (v Violation) IsDuplicateViolation() bool {
	return (v.Kind == ViolationPrimaryKey || v.Kind == ViolationUnique) && v.Message == MsgDuplicate
}

// Canonical violation messages shared between detection and repair.
const (
	MsgNullEmpty = "Null/empty value"
	MsgDuplicate = "Duplicate value"
)
