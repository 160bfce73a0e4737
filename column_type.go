package wrangling

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnType describes how values stored within a single column of a Frame
// are validated and rendered. A nil cell always represents a missing value
// and is accepted by every column type.
type ColumnType interface {
	Coerce(v interface{}) (interface{}, error) // Coerce converts a raw value into this type's canonical representation, or fails
	ToString(v interface{}) string             // ToString produces a string representation of a value of this type
}

// IsNumericType returns true iff the given ColumnType stores numeric values
func IsNumericType(t ColumnType) bool {
	switch t.(type) {
	case *Int64ColumnType, *Float64ColumnType:
		return true
	default:
		return false
	}
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Coerce converts a raw value into a bool
func (b *BoolColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	bval, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("value %#v is not a boolean", v)
	}
	return bval, nil
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Coerce converts a raw integer value into an int64
func (b *Int64ColumnType) Coerce(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	default:
		return nil, fmt.Errorf("value %#v is not an integer", v)
	}
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Coerce converts a raw numeric value into a float64
func (b *Float64ColumnType) Coerce(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return nil, fmt.Errorf("value %#v is not a number", v)
	}
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// TimeColumnType is a column type which stores a time.Time value
type TimeColumnType struct {
	Format string // layout used when parsing and rendering values. Defaults to DefaultTimeFormat.
}

// DefaultTimeFormat is the layout assumed by TimeColumnType when none is configured
const DefaultTimeFormat = "2006-01-02"

// GetFormat returns the configured layout for this TimeColumnType, or the default
func (b *TimeColumnType) GetFormat() string {
	if b.Format == "" {
		return DefaultTimeFormat
	}
	return b.Format
}

// Coerce converts a raw value into a time.Time, parsing strings with this type's layout
func (b *TimeColumnType) Coerce(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return t, nil
	case string:
		tval, err := time.Parse(b.GetFormat(), t)
		if err != nil {
			return nil, fmt.Errorf("value %#v could not be parsed as a datetime with format %s", v, b.GetFormat())
		}
		return tval, nil
	default:
		return nil, fmt.Errorf("value %#v is not a datetime", v)
	}
}

// ToString produces a string representation of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return v.(time.Time).Format(b.GetFormat())
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Coerce converts a raw value into a string
func (b *VarStringColumnType) Coerce(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	sval, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("value %#v is not a string", v)
	}
	return sval, nil
}

// ToString produces a string representation of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// AsFloat64 converts a numeric cell value to a float64, for use in ranking
// and aggregation. Missing values are rejected.
func AsFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("value %#v is not numeric", v)
	}
}
