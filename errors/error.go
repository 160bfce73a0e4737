package errors

import (
	"fmt"
)

// ColumnNotFoundError occurs when a named column does not exist in a Schema
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a column is created with a name that already exists in a Schema
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// RaggedColumnError occurs when a column's length does not match the number of rows in a Frame
type RaggedColumnError struct {
	Name     string
	Expected int
	Actual   int
}

// Error returns a textual representation of this RaggedColumnError
func (e RaggedColumnError) Error() string {
	return fmt.Sprintf("Column %s has %d values but the frame has %d rows", e.Name, e.Actual, e.Expected)
}

// IncompatibleValueError occurs when a value cannot be coerced to a column's type
type IncompatibleValueError struct {
	Name  string
	Cause error
}

// Error returns a textual representation of this IncompatibleValueError
func (e IncompatibleValueError) Error() string {
	return fmt.Sprintf("Value for column %s is incompatible with its type: %v", e.Name, e.Cause)
}

// NilValueError occurs when a value in a Row is missing and a typed accessor is used
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// IncompatibleRowError occurs when an appended row's width does not match an expected Schema
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// SchemaMismatchError occurs when two Frames are combined but their Schemas are not equivalent
type SchemaMismatchError struct{ Cause error }

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("Frame schemas are not equivalent: %v", e.Cause)
}

// NoKeyColumnsError occurs when a join is requested without any key columns
type NoKeyColumnsError struct{}

// Error returns a textual representation of this NoKeyColumnsError
func (e NoKeyColumnsError) Error() string {
	return "Join requires at least one key column"
}

// BucketCountError occurs when rows are assigned to a non-positive number of buckets
type BucketCountError struct{ N int }

// Error returns a textual representation of this BucketCountError
func (e BucketCountError) Error() string {
	return fmt.Sprintf("Cannot assign rows to %d buckets", e.N)
}

// EmptyCaseError occurs when a conditional value is constructed without any branches
type EmptyCaseError struct{}

// Error returns a textual representation of this EmptyCaseError
func (e EmptyCaseError) Error() string {
	return "Conditional value construction requires at least one branch"
}

// RowNamesLengthError occurs when assigned row names do not match the number of rows in a Frame
type RowNamesLengthError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this RowNamesLengthError
func (e RowNamesLengthError) Error() string {
	return fmt.Sprintf("Got %d row names for a frame with %d rows", e.Actual, e.Expected)
}

// DuplicateRowNameError occurs when a column with repeated values is converted into row names
type DuplicateRowNameError struct{ Name string }

// Error returns a textual representation of this DuplicateRowNameError
func (e DuplicateRowNameError) Error() string {
	return fmt.Sprintf("Row name %s occurs more than once", e.Name)
}
