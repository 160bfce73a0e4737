package wrangling

import (
	"fmt"
	"strings"
	"time"

	"github.com/jaejungca/advanced-wrangling/errors"
)

// Row is a view over a single row of a Frame, along with a reference
// to the Schema for that row. In practice, users of Row will call its
// getter and setter methods to retrieve, manipulate and store data
type Row struct {
	frame *Frame
	idx   int
}

// Schema returns the schema for this row. The result must not be modified.
func (r Row) Schema() *Schema {
	return r.frame.schema
}

// Index returns the position of this row within its Frame
func (r Row) Index() int {
	return r.idx
}

// Name returns the row label for this row
func (r Row) Name() string {
	if r.frame.rowNames != nil {
		return r.frame.rowNames[r.idx]
	}
	return fmt.Sprintf("%d", r.idx+1)
}

// IsNil returns true iff the given column value is missing in this row.
// If an error occurs, this function will return false.
func (r Row) IsNil(colName string) bool {
	v, err := r.Get(colName)
	return err == nil && v == nil
}

// SetNil sets the given column value to missing within this row
func (r Row) SetNil(colName string) error {
	col, err := r.frame.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	r.frame.columns[col.Index()][r.idx] = nil
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r Row) Get(colName string) (interface{}, error) {
	col, err := r.frame.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return r.frame.columns[col.Index()][r.idx], nil
}

// GetBool retrieves a single bool from the column with the given name
func (r Row) GetBool(colName string) (bool, error) {
	v, err := r.Get(colName)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, errors.NilValueError{Name: colName}
	}
	bval, ok := v.(bool)
	if !ok {
		return false, errors.IncompatibleValueError{Name: colName, Cause: fmt.Errorf("value %#v is not a boolean", v)}
	}
	return bval, nil
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r Row) GetInt64(colName string) (int64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, errors.NilValueError{Name: colName}
	}
	nval, ok := v.(int64)
	if !ok {
		return 0, errors.IncompatibleValueError{Name: colName, Cause: fmt.Errorf("value %#v is not an integer", v)}
	}
	return nval, nil
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r Row) GetFloat64(colName string) (float64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, errors.NilValueError{Name: colName}
	}
	nval, ok := v.(float64)
	if !ok {
		return 0, errors.IncompatibleValueError{Name: colName, Cause: fmt.Errorf("value %#v is not a float", v)}
	}
	return nval, nil
}

// GetTime retrieves a single time.Time from the column with the given name
func (r Row) GetTime(colName string) (time.Time, error) {
	v, err := r.Get(colName)
	if err != nil {
		return time.Time{}, err
	}
	if v == nil {
		return time.Time{}, errors.NilValueError{Name: colName}
	}
	tval, ok := v.(time.Time)
	if !ok {
		return time.Time{}, errors.IncompatibleValueError{Name: colName, Cause: fmt.Errorf("value %#v is not a datetime", v)}
	}
	return tval, nil
}

// GetVarString retrieves a single string from the column with the given name
func (r Row) GetVarString(colName string) (string, error) {
	v, err := r.Get(colName)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", errors.NilValueError{Name: colName}
	}
	sval, ok := v.(string)
	if !ok {
		return "", errors.IncompatibleValueError{Name: colName, Cause: fmt.Errorf("value %#v is not a string", v)}
	}
	return sval, nil
}

// Set stores a value in the column with the given name, coercing it to the column's type
func (r Row) Set(colName string, value interface{}) error {
	col, err := r.frame.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	cv, err := col.Type().Coerce(value)
	if err != nil {
		return errors.IncompatibleValueError{Name: colName, Cause: err}
	}
	r.frame.columns[col.Index()][r.idx] = cv
	return nil
}

// ToString returns a string representation of this row
func (r Row) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	first := true
	r.frame.schema.ForEachColumn(func(name string, col *Column) error {
		if !first {
			fmt.Fprint(&res, ", ")
		}
		first = false
		v := r.frame.columns[col.Index()][r.idx]
		if v == nil {
			fmt.Fprintf(&res, "%s: NA", name)
		} else {
			fmt.Fprintf(&res, "%s: %s", name, col.Type().ToString(v))
		}
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}
