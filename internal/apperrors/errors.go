// Package apperrors defines the typed errors raised by the report pipeline.
//
// Two error classes are fatal and abort a run: SchemaError (a required column
// is missing from an input table) and CardinalityError (duplicate menu keys
// break the many-to-one join guarantee). Cell-level parse problems are not
// errors at all; the loader coerces them to documented defaults.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorType classifies pipeline errors.
type ErrorType string

const (
	ErrTypeSchema      ErrorType = "SCHEMA"
	ErrTypeCardinality ErrorType = "CARDINALITY"
)

// SchemaError reports required columns missing from an input table.
// Missing is always sorted so the message is deterministic.
type SchemaError struct {
	Table   string
	Missing []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("[%s] %s missing columns: %v", ErrTypeSchema, e.Table, e.Missing)
}

// NewSchemaError creates a schema error for the given table, sorting the
// missing column set.
func NewSchemaError(table string, missing []string) *SchemaError {
	sorted := make([]string, len(missing))
	copy(sorted, missing)
	sort.Strings(sorted)
	return &SchemaError{Table: table, Missing: sorted}
}

// CardinalityError reports duplicate item_id values in the menu table.
// Duplicates is sorted and contains each offending key once.
type CardinalityError struct {
	Duplicates []string
}

// Error implements the error interface.
func (e *CardinalityError) Error() string {
	return fmt.Sprintf("[%s] menu contains duplicate item_id values: %v", ErrTypeCardinality, e.Duplicates)
}

// NewCardinalityError creates a cardinality error from the duplicate key set.
func NewCardinalityError(duplicates []string) *CardinalityError {
	sorted := make([]string, len(duplicates))
	copy(sorted, duplicates)
	sort.Strings(sorted)
	return &CardinalityError{Duplicates: sorted}
}

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsCardinalityError reports whether err wraps a CardinalityError.
func IsCardinalityError(err error) bool {
	var ce *CardinalityError
	return errors.As(err, &ce)
}
